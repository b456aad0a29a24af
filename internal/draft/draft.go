package draft

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"listing-directory/internal/model"
)

var ErrUnknownField = errors.New("unknown draft field")

// Form holds the in-progress listing. Edits are local and never fail on value content.
type Form struct {
	mu       sync.Mutex
	draft    model.DraftListing
	onChange func()
}

// New creates an empty form. onChange may be nil.
func New(onChange func()) *Form {
	if onChange == nil {
		onChange = func() {}
	}
	return &Form{onChange: onChange}
}

// Draft returns the current field values.
func (f *Form) Draft() model.DraftListing {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetField assigns raw input to the named field.
func (f *Form) SetField(name, raw string) error {
	f.mu.Lock()
	if err := set(&f.draft, name, raw); err != nil {
		f.mu.Unlock()
		return err
	}
	f.mu.Unlock()
	f.onChange()
	return nil
}

// Update applies several edits atomically; nothing is applied if any name is unknown.
func (f *Form) Update(fields map[string]string) error {
	f.mu.Lock()
	next := f.draft
	for name, raw := range fields {
		if err := set(&next, name, raw); err != nil {
			f.mu.Unlock()
			return err
		}
	}
	f.draft = next
	f.mu.Unlock()
	f.onChange()
	return nil
}

// Reset returns every field to its empty default.
func (f *Form) Reset() {
	f.mu.Lock()
	f.draft = model.DraftListing{}
	f.mu.Unlock()
	f.onChange()
}

func set(d *model.DraftListing, name, raw string) error {
	switch name {
	case model.FieldTitle:
		d.Title = raw
	case model.FieldDescription:
		d.Description = raw
	case model.FieldPrice:
		d.Price = ParsePrice(raw)
	case model.FieldLocation:
		d.Location = raw
	case model.FieldCity:
		d.City = raw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// ParsePrice coerces raw input to a price. Anything that is not a finite number becomes 0.
func ParsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
