package repository

// ListListingsOptions scopes a listing read.
// Empty City and nil bounds are left out of the outgoing query.
type ListListingsOptions struct {
	City     string
	MinPrice *float64
	MaxPrice *float64
}

// CreateListingOptions holds the fields of a new listing.
type CreateListingOptions struct {
	Title       string
	Description string
	Price       float64
	Location    string
	City        string
}
