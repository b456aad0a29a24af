package usecase

import (
	"context"
	"strings"

	"listing-directory/internal/listing"
	"listing-directory/internal/listing/repository"
	"listing-directory/internal/model"
)

// Refresh replaces the collection with the listings matching criteria.
// Issuing a refresh cancels the one in flight; only the most recently issued
// refresh may touch the collection or the read status.
func (uc *implUseCase) Refresh(ctx context.Context, criteria model.FilterCriteria) (listing.RefreshOutput, error) {
	criteria = criteria.Clone()
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	uc.mu.Lock()
	uc.readSeq++
	seq := uc.readSeq
	if uc.cancelRead != nil {
		uc.cancelRead()
	}
	uc.cancelRead = cancel
	uc.readStatus = model.Loading()
	uc.mu.Unlock()
	uc.notify()

	listings, err := uc.repo.ListListings(reqCtx, repository.ListListingsOptions{
		City:     strings.TrimSpace(criteria.City),
		MinPrice: criteria.MinPrice,
		MaxPrice: criteria.MaxPrice,
	})

	uc.mu.Lock()
	if seq != uc.readSeq {
		uc.mu.Unlock()
		uc.l.Debugf(ctx, "listing.usecase.Refresh: discarding response of superseded refresh %d", seq)
		return listing.RefreshOutput{}, listing.ErrSuperseded
	}
	uc.cancelRead = nil

	if err != nil {
		uc.readStatus = model.Failed(listing.MsgFetchFailed)
		uc.mu.Unlock()
		uc.notify()
		uc.l.Errorf(ctx, "listing.usecase.Refresh.repo.ListListings: %v", err)
		return listing.RefreshOutput{}, err
	}

	uc.listings = cloneListings(listings)
	uc.readStatus = model.Idle()
	out := cloneListings(listings)
	uc.mu.Unlock()
	uc.notify()

	return listing.RefreshOutput{Listings: out}, nil
}
