package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ID is an opaque listing identifier. Services that emit numeric ids decode the same as string ids.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("listing id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Listing is the directory service listing object.
type Listing struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	City        string  `json:"city"`
}

// CreateListingRequest is the body for POST /listings/.
type CreateListingRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	City        string  `json:"city"`
}

// ListQuery is the query for GET /listings/.
type ListQuery struct {
	City     string
	MinPrice *float64
	MaxPrice *float64
}

// Values encodes only the constrained fields.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if city := strings.TrimSpace(q.City); city != "" {
		v.Set("city", city)
	}
	if q.MinPrice != nil {
		v.Set("min_price", formatPrice(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		v.Set("max_price", formatPrice(*q.MaxPrice))
	}
	return v
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// errorResponse is the optional body of a non-2xx response.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// parseDetail extracts a human-readable explanation from an error body.
// Accepts {"detail": "..."} and {"detail": [{"msg": "..."}]}.
func parseDetail(raw []byte) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err != nil || len(er.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(er.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var issues []validationIssue
	if err := json.Unmarshal(er.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, is := range issues {
			if m := strings.TrimSpace(is.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
