package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"listing-directory/internal/model"
	"listing-directory/internal/session"
)

// --- Request DTOs ---

// rawValue accepts a JSON string, number or null as raw form input.
type rawValue string

func (v *rawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = rawValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number: %w", err)
		}
		*v = rawValue(n.String())
	}
	return nil
}

type filtersReq struct {
	City     rawValue `json:"city"`
	MinPrice rawValue `json:"min_price"`
	MaxPrice rawValue `json:"max_price"`
}

func (r filtersReq) toInput() session.FilterInput {
	return session.FilterInput{
		City:     string(r.City),
		MinPrice: string(r.MinPrice),
		MaxPrice: string(r.MaxPrice),
	}
}

type draftReq map[string]rawValue

func (r draftReq) toFields() map[string]string {
	fields := make(map[string]string, len(r))
	for k, v := range r {
		fields[k] = string(v)
	}
	return fields
}

// --- Response DTOs ---

type listingResp struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	City        string  `json:"city"`
}

func newListingResp(l model.Listing) listingResp {
	return listingResp{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Location:    l.Location,
		City:        l.City,
	}
}

type statusResp struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

func newStatusResp(s model.RequestStatus) statusResp {
	state := string(s.Kind)
	if state == "" {
		state = string(model.StatusIdle)
	}
	return statusResp{State: state, Message: s.Message}
}

type filtersResp struct {
	City     string `json:"city"`
	MinPrice string `json:"min_price"`
	MaxPrice string `json:"max_price"`
}

func newFiltersResp(f model.FilterCriteria) filtersResp {
	return filtersResp{
		City:     f.City,
		MinPrice: formatBound(f.MinPrice),
		MaxPrice: formatBound(f.MaxPrice),
	}
}

func formatBound(b *float64) string {
	if b == nil {
		return ""
	}
	return strconv.FormatFloat(*b, 'f', -1, 64)
}

type draftResp struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	City        string  `json:"city"`
}

type snapshotResp struct {
	Version      uint64        `json:"version"`
	Listings     []listingResp `json:"listings"`
	ReadStatus   statusResp    `json:"read_status"`
	ActionStatus statusResp    `json:"action_status"`
	Filters      filtersResp   `json:"filters"`
	Draft        draftResp     `json:"draft"`
}

func newSnapshotResp(s session.Snapshot) snapshotResp {
	listings := make([]listingResp, len(s.Listings))
	for i, l := range s.Listings {
		listings[i] = newListingResp(l)
	}
	return snapshotResp{
		Version:      s.Version,
		Listings:     listings,
		ReadStatus:   newStatusResp(s.ReadStatus),
		ActionStatus: newStatusResp(s.ActionStatus),
		Filters:      newFiltersResp(s.Filters),
		Draft: draftResp{
			Title:       s.Draft.Title,
			Description: s.Draft.Description,
			Price:       s.Draft.Price,
			Location:    s.Draft.Location,
			City:        s.Draft.City,
		},
	}
}

type submitResp struct {
	Listing  listingResp  `json:"listing"`
	Snapshot snapshotResp `json:"snapshot"`
}
