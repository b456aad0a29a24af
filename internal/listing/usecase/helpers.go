package usecase

import (
	"listing-directory/internal/listing"
	"listing-directory/internal/model"
)

// State returns a copy of the collection and both request channels.
func (uc *implUseCase) State() listing.State {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return listing.State{
		Listings:     cloneListings(uc.listings),
		ReadStatus:   uc.readStatus,
		ActionStatus: uc.actionStatus,
	}
}

// OnChange registers fn to run after every state transition, outside the state lock.
func (uc *implUseCase) OnChange(fn func()) {
	if fn == nil {
		return
	}
	uc.hookMu.Lock()
	uc.hooks = append(uc.hooks, fn)
	uc.hookMu.Unlock()
}

func (uc *implUseCase) notify() {
	uc.hookMu.RLock()
	hooks := make([]func(), len(uc.hooks))
	copy(hooks, uc.hooks)
	uc.hookMu.RUnlock()

	for _, fn := range hooks {
		fn()
	}
}

// beginAction moves the action channel to Loading and returns the token of this action.
func (uc *implUseCase) beginAction() uint64 {
	uc.mu.Lock()
	uc.actionSeq++
	seq := uc.actionSeq
	uc.actionStatus = model.Loading()
	uc.mu.Unlock()
	uc.notify()
	return seq
}

// endAction applies a confirmed mutation. Only the latest action sets the channel's terminal status.
func (uc *implUseCase) endAction(seq uint64, status model.RequestStatus, apply func()) {
	uc.mu.Lock()
	if apply != nil {
		apply()
	}
	if seq == uc.actionSeq {
		uc.actionStatus = status
	}
	uc.mu.Unlock()
	uc.notify()
}

func cloneListings(in []model.Listing) []model.Listing {
	out := make([]model.Listing, len(in))
	copy(out, in)
	return out
}

// upsertListing appends l, or replaces an entry that already carries its id.
func upsertListing(in []model.Listing, l model.Listing) []model.Listing {
	for i := range in {
		if in[i].ID == l.ID {
			out := cloneListings(in)
			out[i] = l
			return out
		}
	}
	out := make([]model.Listing, len(in), len(in)+1)
	copy(out, in)
	return append(out, l)
}

// removeListing drops every entry with id, keeping the order of the rest.
func removeListing(in []model.Listing, id string) []model.Listing {
	out := make([]model.Listing, 0, len(in))
	for _, l := range in {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}
