package session

import (
	"time"

	"listing-directory/internal/model"
)

// Snapshot is everything a presentation layer renders.
type Snapshot struct {
	Version      uint64               `json:"version"`
	Listings     []model.Listing      `json:"listings"`
	ReadStatus   model.RequestStatus  `json:"read_status"`
	ActionStatus model.RequestStatus  `json:"action_status"`
	Filters      model.FilterCriteria `json:"filters"`
	Draft        model.DraftListing   `json:"draft"`
}

// Options configures a Session.
type Options struct {
	FilterDebounce time.Duration
}

// FilterInput is raw filter input as typed by the user.
type FilterInput struct {
	City     string
	MinPrice string
	MaxPrice string
}
