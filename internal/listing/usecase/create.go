package usecase

import (
	"context"

	"listing-directory/internal/listing"
	"listing-directory/internal/listing/repository"
	"listing-directory/internal/model"
)

// Create validates the draft locally, submits it, and appends the listing the
// service returns. A validation failure never reaches the network or the status.
func (uc *implUseCase) Create(ctx context.Context, input listing.CreateInput) (listing.CreateOutput, error) {
	d := input.Draft
	if invalid := d.Validate(); len(invalid) > 0 {
		return listing.CreateOutput{}, &listing.ValidationError{Fields: invalid}
	}

	seq := uc.beginAction()

	created, err := uc.repo.CreateListing(ctx, repository.CreateListingOptions{
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Location:    d.Location,
		City:        d.City,
	})
	if err != nil {
		msg := listing.MsgCreateFailed
		if detail := repository.Detail(err); detail != "" {
			msg = detail
		}
		uc.endAction(seq, model.Failed(msg), nil)
		uc.l.Errorf(ctx, "listing.usecase.Create.repo.CreateListing: %v", err)
		return listing.CreateOutput{}, err
	}

	uc.endAction(seq, model.Idle(), func() {
		uc.listings = upsertListing(uc.listings, created)
	})
	uc.detailCache.Add(created.ID, created)

	return listing.CreateOutput{Listing: created}, nil
}
