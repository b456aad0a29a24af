package listing

import (
	"context"

	"listing-directory/internal/model"
)

// UseCase is the listing directory client: the local collection of listings
// kept in sync with the remote directory service.
type UseCase interface {
	// Refresh replaces the collection with the listings matching criteria.
	// Returns ErrSuperseded when a newer refresh was issued before this one completed.
	Refresh(ctx context.Context, criteria model.FilterCriteria) (RefreshOutput, error)

	// Create submits a draft and appends the created listing on success.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Remove deletes a listing remotely and then drops it from the collection.
	Remove(ctx context.Context, id string) error

	// Detail fetches a single listing without touching the collection.
	Detail(ctx context.Context, id string) (model.Listing, error)

	// State returns a copy of the collection and both request channels.
	State() State

	// OnChange registers fn to be called after every state transition.
	OnChange(fn func())
}
