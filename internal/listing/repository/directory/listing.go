package directory

import (
	"context"

	"listing-directory/internal/listing/repository"
	"listing-directory/internal/model"
	pkgLog "listing-directory/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new directory repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListListings(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
	items, err := r.client.ListListings(ctx, ListQuery{
		City:     opt.City,
		MinPrice: opt.MinPrice,
		MaxPrice: opt.MaxPrice,
	})
	if err != nil {
		r.l.Errorf(ctx, "directory repository: failed to list listings: %v", err)
		return nil, err
	}

	listings := make([]model.Listing, 0, len(items))
	for _, item := range items {
		listings = append(listings, toModel(item))
	}
	return listings, nil
}

func (r *implRepository) CreateListing(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
	created, err := r.client.CreateListing(ctx, CreateListingRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Price:       opt.Price,
		Location:    opt.Location,
		City:        opt.City,
	})
	if err != nil {
		r.l.Errorf(ctx, "directory repository: failed to create listing: %v", err)
		return model.Listing{}, err
	}
	return toModel(*created), nil
}

func (r *implRepository) GetListing(ctx context.Context, id string) (model.Listing, error) {
	item, err := r.client.GetListing(ctx, id)
	if err != nil {
		if !repository.IsNotFound(err) {
			r.l.Errorf(ctx, "directory repository: failed to get listing %s: %v", id, err)
		}
		return model.Listing{}, err
	}
	return toModel(*item), nil
}

func (r *implRepository) DeleteListing(ctx context.Context, id string) error {
	if err := r.client.DeleteListing(ctx, id); err != nil {
		r.l.Errorf(ctx, "directory repository: failed to delete listing %s: %v", id, err)
		return err
	}
	return nil
}

func toModel(l Listing) model.Listing {
	return model.Listing{
		ID:          string(l.ID),
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Location:    l.Location,
		City:        l.City,
	}
}
