package http

import (
	"errors"
	"net/http"

	"listing-directory/internal/draft"
	"listing-directory/internal/listing"
	"listing-directory/internal/listing/repository"
	"listing-directory/internal/model"
	pkgErrors "listing-directory/pkg/errors"
)

// mapError translates domain errors into HTTP errors. Remote failures carry
// the user-safe message from the channel status instead of the raw error.
func (h *handler) mapError(err error, status model.RequestStatus) error {
	switch {
	case errors.Is(err, listing.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "listing not found")
	case errors.Is(err, listing.ErrEmptyID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "listing id is required")
	case errors.Is(err, draft.ErrUnknownField):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrService), errors.Is(err, repository.ErrTransport):
		msg := status.Message
		if msg == "" {
			msg = "directory service unavailable"
		}
		return pkgErrors.NewHTTPError(http.StatusBadGateway, msg)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
