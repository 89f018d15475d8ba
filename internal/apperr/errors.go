package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrValidation      = errors.New("validation error")
	ErrStoreCorrupt    = errors.New("store corrupt")

	// The following are validation errors: errors.Is(err, ErrValidation) holds.
	ErrInvalidRange  = &ValidationError{Field: "range", Reason: "end time is before start time"}
	ErrInvalidRating = &ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	ErrNotBooked     = &ValidationError{Field: "slot", Reason: "slot is not booked"}
)

// ValidationError reports a single rejected field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid creates a new ValidationError for field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFound wraps ErrNotFound with the kind and id that were looked up.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
