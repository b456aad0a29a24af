package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"listing-directory/internal/listing"
	"listing-directory/pkg/response"
)

// Get godoc
// @Summary     Get session state
// @Description Returns the listings, both request statuses, the filters and the draft.
// @Tags        Session
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/session [GET]
func (h *handler) Get(c *gin.Context) {
	response.OK(c, newSnapshotResp(h.session.Snapshot()))
}

// SetFilters godoc
// @Summary     Set filters
// @Description Replaces the filter criteria. Empty fields are unconstrained. A change starts a refresh.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body filtersReq true "Raw filter input"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/session/filters [PUT]
func (h *handler) SetFilters(c *gin.Context) {
	req, err := h.processFiltersReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newSnapshotResp(h.session.SetFilters(req.toInput())))
}

// UpdateDraft godoc
// @Summary     Edit draft fields
// @Description Applies raw field edits. Non-numeric price input becomes 0.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body object true "Field name to raw value"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Unknown field"
// @Router      /api/v1/session/draft [PATCH]
func (h *handler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDraftReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.session.UpdateDraft(req.toFields()); err != nil {
		h.l.Warnf(ctx, "session.UpdateDraft: %v", err)
		response.Error(c, h.mapError(err, h.session.Snapshot().ActionStatus), nil)
		return
	}

	response.OK(c, newSnapshotResp(h.session.Snapshot()))
}

// ResetDraft godoc
// @Summary     Reset draft
// @Tags        Session
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/session/draft [DELETE]
func (h *handler) ResetDraft(c *gin.Context) {
	h.session.ResetDraft()
	response.OK(c, newSnapshotResp(h.session.Snapshot()))
}

// Submit godoc
// @Summary     Submit draft
// @Description Creates a listing from the draft. The draft is reset on success and kept on failure.
// @Tags        Session
// @Produce     json
// @Success     200 {object} submitResp
// @Failure     422 {object} response.Resp "Invalid draft"
// @Failure     502 {object} response.Resp "Directory service rejected or unreachable"
// @Router      /api/v1/session/draft/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	created, err := h.session.Submit(ctx)
	if err != nil {
		var vErr *listing.ValidationError
		if errors.As(err, &vErr) {
			response.ValidationError(c, vErr.Error(), vErr.Fields)
			return
		}
		h.l.Errorf(ctx, "session.Submit: %v", err)
		response.Error(c, h.mapError(err, h.session.Snapshot().ActionStatus), nil)
		return
	}

	response.OK(c, submitResp{
		Listing:  newListingResp(created),
		Snapshot: newSnapshotResp(h.session.Snapshot()),
	})
}

// Refresh godoc
// @Summary     Reload listings
// @Description Refetches with the current filters and waits for the result.
// @Tags        Session
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     502 {object} response.Resp "Directory service unreachable"
// @Router      /api/v1/session/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.session.Reload(ctx); err != nil && !errors.Is(err, listing.ErrSuperseded) {
		h.l.Errorf(ctx, "session.Reload: %v", err)
		response.Error(c, h.mapError(err, h.session.Snapshot().ReadStatus), nil)
		return
	}

	response.OK(c, newSnapshotResp(h.session.Snapshot()))
}

// Detail godoc
// @Summary     Get listing detail
// @Tags        Session
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} listingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/session/listings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err, h.session.Snapshot().ReadStatus), nil)
		return
	}

	l, err := h.session.Detail(ctx, id)
	if err != nil {
		if !errors.Is(err, listing.ErrNotFound) {
			h.l.Errorf(ctx, "session.Detail: %v", err)
		}
		response.Error(c, h.mapError(err, h.session.Snapshot().ReadStatus), nil)
		return
	}

	response.OK(c, newListingResp(l))
}

// Delete godoc
// @Summary     Remove a listing
// @Description Deletes the listing remotely, then drops it from the collection.
// @Tags        Session
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} snapshotResp
// @Failure     502 {object} response.Resp "Directory service rejected or unreachable"
// @Router      /api/v1/session/listings/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err, h.session.Snapshot().ActionStatus), nil)
		return
	}

	if err := h.session.Remove(ctx, id); err != nil {
		h.l.Errorf(ctx, "session.Remove: %v", err)
		response.Error(c, h.mapError(err, h.session.Snapshot().ActionStatus), nil)
		return
	}

	response.OK(c, newSnapshotResp(h.session.Snapshot()))
}
