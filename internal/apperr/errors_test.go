package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsMatchErrValidation(t *testing.T) {
	for _, err := range []error{ErrInvalidRange, ErrInvalidRating, ErrNotBooked, Invalid("name", "required")} {
		assert.ErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, ErrNotFound)
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("booking: %w", ErrInvalidRating)
	assert.ErrorIs(t, err, ErrInvalidRating)
	assert.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "rating", verr.Field)
}

func TestNotFound(t *testing.T) {
	err := NotFound("session", "abc")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, `session "abc": not found`, err.Error())
}
