package model

import "strings"

// Listing is a directory entry as stored by the remote directory service.
type Listing struct {
	ID          string  `json:"id"` // assigned by the directory service, never by the client
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	City        string  `json:"city"`
}

// FilterCriteria scopes a listing read. Nil bounds and an empty city are unconstrained.
type FilterCriteria struct {
	City     string   `json:"city"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
}

// IsZero reports whether no field constrains the read.
func (f FilterCriteria) IsZero() bool {
	return strings.TrimSpace(f.City) == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// Equal compares criteria by value.
func (f FilterCriteria) Equal(o FilterCriteria) bool {
	return strings.TrimSpace(f.City) == strings.TrimSpace(o.City) &&
		equalBound(f.MinPrice, o.MinPrice) &&
		equalBound(f.MaxPrice, o.MaxPrice)
}

// Clone returns a copy that shares no pointers with f.
func (f FilterCriteria) Clone() FilterCriteria {
	out := FilterCriteria{City: f.City}
	if f.MinPrice != nil {
		v := *f.MinPrice
		out.MinPrice = &v
	}
	if f.MaxPrice != nil {
		v := *f.MaxPrice
		out.MaxPrice = &v
	}
	return out
}

func equalBound(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// DraftListing holds an unsubmitted listing.
type DraftListing struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	City        string  `json:"city"`
}

// Draft field names, shared by the form state and the delivery layer.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldLocation    = "location"
	FieldCity        = "city"
)

// Validate returns the names of the fields that block submission, in form order.
func (d DraftListing) Validate() []string {
	var invalid []string
	if strings.TrimSpace(d.Title) == "" {
		invalid = append(invalid, FieldTitle)
	}
	if strings.TrimSpace(d.Description) == "" {
		invalid = append(invalid, FieldDescription)
	}
	if d.Price < 0 {
		invalid = append(invalid, FieldPrice)
	}
	if strings.TrimSpace(d.Location) == "" {
		invalid = append(invalid, FieldLocation)
	}
	if strings.TrimSpace(d.City) == "" {
		invalid = append(invalid, FieldCity)
	}
	return invalid
}

// IsZero reports whether the draft is at its empty defaults.
func (d DraftListing) IsZero() bool {
	return d == DraftListing{}
}
