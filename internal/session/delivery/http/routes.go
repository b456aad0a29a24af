package http

import (
	"github.com/gin-gonic/gin"

	"listing-directory/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Routes that reach the directory service are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", h.Get)
	rg.GET("/stream", h.Stream)

	rg.PUT("/filters", mw.RateLimit(), h.SetFilters)
	rg.POST("/refresh", mw.RateLimit(), h.Refresh)

	draft := rg.Group("/draft")
	{
		draft.PATCH("", h.UpdateDraft)
		draft.DELETE("", h.ResetDraft)
		draft.POST("/submit", mw.RateLimit(), h.Submit)
	}

	listings := rg.Group("/listings")
	{
		listings.GET("/:id", h.Detail)
		listings.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
