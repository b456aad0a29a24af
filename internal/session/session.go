package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"listing-directory/internal/draft"
	"listing-directory/internal/filter"
	"listing-directory/internal/listing"
	"listing-directory/internal/model"
	pkgLog "listing-directory/pkg/log"
)

// Session owns the directory client, the filter state and the draft form,
// and fans out a Snapshot to subscribers after every change.
type Session struct {
	l       pkgLog.Logger
	uc      listing.UseCase
	filters *filter.State
	form    *draft.Form

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	readyOnce sync.Once
	readyCh   chan struct{}

	mu      sync.Mutex
	version uint64
	subs    map[string]chan Snapshot
	closed  bool
}

// New wires a session around uc. Call Start to run the initial fetch.
func New(l pkgLog.Logger, uc listing.UseCase, opts Options) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		l:       l,
		uc:      uc,
		ctx:     ctx,
		cancel:  cancel,
		readyCh: make(chan struct{}),
		subs:    make(map[string]chan Snapshot),
	}
	s.filters = filter.New(opts.FilterDebounce, s.refreshAsync)
	s.form = draft.New(s.publish)
	uc.OnChange(s.publish)
	return s
}

// Start performs the initial unfiltered fetch. A failure is reported but leaves the session usable.
func (s *Session) Start(ctx context.Context) error {
	defer s.readyOnce.Do(func() { close(s.readyCh) })

	_, err := s.uc.Refresh(ctx, s.filters.Criteria())
	if err != nil && !errors.Is(err, listing.ErrSuperseded) {
		return err
	}
	return nil
}

// Ready reports whether the initial fetch has completed, successfully or not.
func (s *Session) Ready() bool {
	select {
	case <-s.readyCh:
		return true
	default:
		return false
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildLocked()
}

// SetFilters replaces the filter criteria from raw input.
// A change starts a background refresh.
func (s *Session) SetFilters(in FilterInput) Snapshot {
	changed := s.filters.Replace(model.FilterCriteria{
		City:     in.City,
		MinPrice: filter.ParseBound(in.MinPrice),
		MaxPrice: filter.ParseBound(in.MaxPrice),
	})
	if changed {
		s.publish()
	}
	return s.Snapshot()
}

// UpdateDraft applies raw field edits to the draft.
func (s *Session) UpdateDraft(fields map[string]string) error {
	return s.form.Update(fields)
}

// ResetDraft clears the draft.
func (s *Session) ResetDraft() {
	s.form.Reset()
}

// Submit creates a listing from the draft. On success the draft is reset;
// on failure it is kept so the user can retry.
func (s *Session) Submit(ctx context.Context) (model.Listing, error) {
	out, err := s.uc.Create(ctx, listing.CreateInput{Draft: s.form.Draft()})
	if err != nil {
		return model.Listing{}, err
	}
	s.form.Reset()
	return out.Listing, nil
}

// Remove deletes a listing.
func (s *Session) Remove(ctx context.Context, id string) error {
	return s.uc.Remove(ctx, id)
}

// Reload refreshes with the current filters and waits for the result.
func (s *Session) Reload(ctx context.Context) error {
	_, err := s.uc.Refresh(ctx, s.filters.Criteria())
	return err
}

// Detail fetches one listing.
func (s *Session) Detail(ctx context.Context, id string) (model.Listing, error) {
	return s.uc.Detail(ctx, id)
}

// Wait blocks until the background refreshes started so far have finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Subscribe returns a channel that always holds the latest snapshot, primed
// with the current one. Slow readers skip intermediate versions.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := uuid.NewString()
	s.subs[id] = ch
	ch <- s.buildLocked()
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close stops pending filter triggers, waits for background refreshes and
// closes every subscriber channel.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.filters.Stop()
	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *Session) refreshAsync(criteria model.FilterCriteria) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		_, err := s.uc.Refresh(s.ctx, criteria)
		switch {
		case err == nil, errors.Is(err, listing.ErrSuperseded), errors.Is(err, context.Canceled):
		default:
			s.l.Warnf(s.ctx, "session.refreshAsync: %v", err)
		}
	}()
}

func (s *Session) publish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.version++
	snap := s.buildLocked()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Session) buildLocked() Snapshot {
	st := s.uc.State()
	return Snapshot{
		Version:      s.version,
		Listings:     st.Listings,
		ReadStatus:   st.ReadStatus,
		ActionStatus: st.ActionStatus,
		Filters:      s.filters.Criteria(),
		Draft:        s.form.Draft(),
	}
}
