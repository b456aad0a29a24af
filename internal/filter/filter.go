package filter

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"listing-directory/internal/model"
)

// Trigger receives the criteria a refresh should run with.
type Trigger func(criteria model.FilterCriteria)

// State holds the active filter criteria. Every change fires the trigger once,
// or once per quiet period when debounced.
type State struct {
	mu       sync.Mutex
	criteria model.FilterCriteria
	debounce time.Duration
	trigger  Trigger
	timer    *time.Timer
	gen      uint64
	stopped  bool
}

// New creates an unconstrained filter state. A zero debounce fires synchronously.
func New(debounce time.Duration, trigger Trigger) *State {
	if trigger == nil {
		trigger = func(model.FilterCriteria) {}
	}
	return &State{
		debounce: debounce,
		trigger:  trigger,
	}
}

// Criteria returns a copy of the current criteria.
func (s *State) Criteria() model.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria.Clone()
}

// SetCity sets the city filter. Reports whether the criteria changed.
func (s *State) SetCity(raw string) bool {
	return s.update(func(c *model.FilterCriteria) { c.City = raw })
}

// SetMinPrice sets the lower bound from raw input; blank or unparsable clears it.
func (s *State) SetMinPrice(raw string) bool {
	return s.update(func(c *model.FilterCriteria) { c.MinPrice = ParseBound(raw) })
}

// SetMaxPrice sets the upper bound from raw input; blank or unparsable clears it.
func (s *State) SetMaxPrice(raw string) bool {
	return s.update(func(c *model.FilterCriteria) { c.MaxPrice = ParseBound(raw) })
}

// Replace swaps all criteria at once, firing at most one trigger.
func (s *State) Replace(next model.FilterCriteria) bool {
	next = next.Clone()
	return s.update(func(c *model.FilterCriteria) { *c = next })
}

// Stop cancels a pending debounced trigger and ignores later changes' triggers.
func (s *State) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *State) update(mutate func(c *model.FilterCriteria)) bool {
	s.mu.Lock()
	next := s.criteria.Clone()
	mutate(&next)
	if next.Equal(s.criteria) {
		s.mu.Unlock()
		return false
	}
	s.criteria = next

	if s.stopped {
		s.mu.Unlock()
		return true
	}

	if s.debounce <= 0 {
		c := next.Clone()
		s.mu.Unlock()
		s.trigger(c)
		return true
	}

	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.fire(gen) })
	s.mu.Unlock()
	return true
}

func (s *State) fire(gen uint64) {
	s.mu.Lock()
	if s.stopped || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	c := s.criteria.Clone()
	s.mu.Unlock()
	s.trigger(c)
}

// ParseBound parses a price bound. Blank, unparsable and non-finite input is unconstrained.
func ParseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
