package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"listing-directory/internal/listing"
	"listing-directory/internal/listing/repository"
	"listing-directory/internal/listing/usecase"
	"listing-directory/internal/model"
)

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Collection And Passes Criteria", func(t *testing.T) {
		minP := 100.0
		repo := &mockRepo{
			listFunc: func(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
				return seedListings(), nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{})

		out, err := uc.Refresh(ctx, model.FilterCriteria{City: " Austin ", MinPrice: &minP})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Listings) != 3 {
			t.Errorf("expected 3 listings, got %d", len(out.Listings))
		}

		opt := repo.listCalls[0]
		if opt.City != "Austin" || opt.MinPrice == nil || *opt.MinPrice != 100 || opt.MaxPrice != nil {
			t.Errorf("unexpected options: %+v", opt)
		}

		st := uc.State()
		if !st.ReadStatus.IsIdle() {
			t.Errorf("expected idle read status, got %v", st.ReadStatus)
		}
		if st.Listings[0].ID != "first" || st.Listings[2].ID != "last" {
			t.Errorf("expected server order preserved, got %+v", st.Listings)
		}
	})

	t.Run("Failure Keeps Collection", func(t *testing.T) {
		fail := false
		repo := &mockRepo{
			listFunc: func(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
				if fail {
					return nil, errors.New("dial tcp: connection refused")
				}
				return seedListings(), nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{})
		if _, err := uc.Refresh(ctx, model.FilterCriteria{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		fail = true
		if _, err := uc.Refresh(ctx, model.FilterCriteria{}); err == nil {
			t.Fatalf("expected error")
		}

		st := uc.State()
		if len(st.Listings) != 3 {
			t.Errorf("expected collection untouched, got %d", len(st.Listings))
		}
		if st.ReadStatus != model.Failed(listing.MsgFetchFailed) {
			t.Errorf("expected user-safe failure, got %v", st.ReadStatus)
		}

		fail = false
		if _, err := uc.Refresh(ctx, model.FilterCriteria{}); err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
		if !uc.State().ReadStatus.IsIdle() {
			t.Errorf("expected retry to clear failure")
		}
	})

	t.Run("Loading While In Flight", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		repo := &mockRepo{
			listFunc: func(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
				close(started)
				<-release
				return nil, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{})

		done := make(chan struct{})
		go func() {
			uc.Refresh(ctx, model.FilterCriteria{})
			close(done)
		}()

		<-started
		if !uc.State().ReadStatus.IsLoading() {
			t.Errorf("expected loading while request is in flight")
		}
		close(release)
		<-done
		if st := uc.State(); !st.ReadStatus.IsIdle() || st.Listings == nil || len(st.Listings) != 0 {
			t.Errorf("expected idle empty collection, got %+v", st)
		}
	})
}

func TestRefreshStaleResponse(t *testing.T) {
	ctx := context.Background()

	resultA := []model.Listing{{ID: "a", City: "A"}}
	resultB := []model.Listing{{ID: "b", City: "B"}}

	t.Run("Late A Does Not Overwrite B", func(t *testing.T) {
		startedA := make(chan struct{})
		releaseA := make(chan struct{})
		repo := &mockRepo{
			listFunc: func(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
				if opt.City == "A" {
					close(startedA)
					<-releaseA // ignores cancellation on purpose
					return resultA, nil
				}
				return resultB, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{})

		errA := make(chan error, 1)
		go func() {
			_, err := uc.Refresh(ctx, model.FilterCriteria{City: "A"})
			errA <- err
		}()
		<-startedA

		if _, err := uc.Refresh(ctx, model.FilterCriteria{City: "B"}); err != nil {
			t.Fatalf("unexpected error for B: %v", err)
		}

		close(releaseA)
		if err := <-errA; !errors.Is(err, listing.ErrSuperseded) {
			t.Errorf("expected ErrSuperseded for A, got %v", err)
		}

		st := uc.State()
		if len(st.Listings) != 1 || st.Listings[0].ID != "b" {
			t.Errorf("expected B's result, got %+v", st.Listings)
		}
		if !st.ReadStatus.IsIdle() {
			t.Errorf("expected idle status, got %v", st.ReadStatus)
		}
	})

	t.Run("Superseded Request Is Cancelled", func(t *testing.T) {
		startedA := make(chan struct{})
		repo := &mockRepo{
			listFunc: func(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
				if opt.City == "A" {
					close(startedA)
					<-ctx.Done()
					return nil, ctx.Err()
				}
				return resultB, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{})

		errA := make(chan error, 1)
		go func() {
			_, err := uc.Refresh(ctx, model.FilterCriteria{City: "A"})
			errA <- err
		}()
		<-startedA

		if _, err := uc.Refresh(ctx, model.FilterCriteria{City: "B"}); err != nil {
			t.Fatalf("unexpected error for B: %v", err)
		}

		select {
		case err := <-errA:
			if !errors.Is(err, listing.ErrSuperseded) {
				t.Errorf("expected ErrSuperseded, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("superseded refresh was not cancelled")
		}

		if st := uc.State(); st.ReadStatus.IsFailed() || st.Listings[0].ID != "b" {
			t.Errorf("cancelled stale request leaked into state: %+v", st)
		}
	})

	t.Run("Late B Still Wins Over Earlier A", func(t *testing.T) {
		startedB := make(chan struct{})
		releaseB := make(chan struct{})
		repo := &mockRepo{
			listFunc: func(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
				if opt.City == "B" {
					close(startedB)
					<-releaseB
					return resultB, nil
				}
				return resultA, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{})

		// B is issued first here but is the older intent once A follows.
		errB := make(chan error, 1)
		go func() {
			_, err := uc.Refresh(ctx, model.FilterCriteria{City: "B"})
			errB <- err
		}()
		<-startedB

		if _, err := uc.Refresh(ctx, model.FilterCriteria{City: "A"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		close(releaseB)
		<-errB

		if st := uc.State(); st.Listings[0].ID != "a" {
			t.Errorf("expected most recent intent to win, got %+v", st.Listings)
		}
	})
}

func TestOnChange(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{}, usecase.Config{})

	var statuses []model.StatusKind
	uc.OnChange(func() {
		statuses = append(statuses, uc.State().ReadStatus.Kind)
	})
	uc.OnChange(nil)

	if _, err := uc.Refresh(context.Background(), model.FilterCriteria{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(statuses) != 2 || statuses[0] != model.StatusLoading || statuses[1] != model.StatusIdle {
		t.Errorf("expected loading then idle notifications, got %v", statuses)
	}
}
