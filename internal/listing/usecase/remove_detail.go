package usecase

import (
	"context"
	"fmt"
	"strings"

	"listing-directory/internal/listing"
	"listing-directory/internal/listing/repository"
	"listing-directory/internal/model"
)

// Remove deletes the listing remotely, then drops it locally. An id that is
// not in the collection is a silent no-op once the service confirms.
func (uc *implUseCase) Remove(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return listing.ErrEmptyID
	}

	seq := uc.beginAction()

	if err := uc.repo.DeleteListing(ctx, id); err != nil {
		uc.endAction(seq, model.Failed(listing.MsgDeleteFailed), nil)
		uc.l.Errorf(ctx, "listing.usecase.Remove.repo.DeleteListing: %v", err)
		return err
	}

	uc.endAction(seq, model.Idle(), func() {
		uc.listings = removeListing(uc.listings, id)
	})
	uc.detailCache.Remove(id)

	return nil
}

// Detail returns a single listing, preferring the detail cache.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return model.Listing{}, listing.ErrEmptyID
	}

	if cached, ok := uc.detailCache.Get(id); ok {
		return cached, nil
	}

	l, err := uc.repo.GetListing(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return model.Listing{}, fmt.Errorf("%w: %s", listing.ErrNotFound, id)
		}
		uc.l.Errorf(ctx, "listing.usecase.Detail.repo.GetListing: %v", err)
		return model.Listing{}, err
	}

	uc.detailCache.Add(l.ID, l)
	return l, nil
}
