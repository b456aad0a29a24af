package listing

import (
	"errors"
	"strings"
)

// Domain-specific errors for the listing package.
var (
	ErrValidation = errors.New("listing draft is invalid")
	ErrSuperseded = errors.New("refresh superseded by a newer request")
	ErrNotFound   = errors.New("listing not found")
	ErrEmptyID    = errors.New("listing id is empty")
)

// User-safe messages carried by Failed statuses.
const (
	MsgFetchFailed  = "Failed to fetch listings. Please try again later."
	MsgCreateFailed = "Failed to create listing. Please try again."
	MsgDeleteFailed = "Failed to delete listing. Please try again."
)

// ValidationError lists the draft fields that block submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "listing draft is invalid: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
