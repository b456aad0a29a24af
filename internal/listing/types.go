package listing

import "listing-directory/internal/model"

// State is a point-in-time copy of the directory client.
type State struct {
	Listings     []model.Listing     `json:"listings"`
	ReadStatus   model.RequestStatus `json:"read_status"`
	ActionStatus model.RequestStatus `json:"action_status"`
}

// Input/output types for UseCase operations.

// RefreshOutput is the collection applied by a refresh.
type RefreshOutput struct {
	Listings []model.Listing
}

// CreateInput is the draft to submit.
type CreateInput struct {
	Draft model.DraftListing
}

// CreateOutput is the listing as assigned by the directory service.
type CreateOutput struct {
	Listing model.Listing
}
