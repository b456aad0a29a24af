package repository

import (
	"context"

	"listing-directory/internal/model"
)

// Repository is the data access interface for the remote directory service.
type Repository interface {
	ListListings(ctx context.Context, opt ListListingsOptions) ([]model.Listing, error)
	CreateListing(ctx context.Context, opt CreateListingOptions) (model.Listing, error)
	GetListing(ctx context.Context, id string) (model.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}
