package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"listing-directory/internal/listing"
)

// processFiltersReq binds the filter body.
func (h *handler) processFiltersReq(c *gin.Context) (filtersReq, error) {
	var req filtersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDraftReq binds the draft edit body.
func (h *handler) processDraftReq(c *gin.Context) (draftReq, error) {
	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam reads the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", listing.ErrEmptyID
	}
	return id, nil
}
