package slots

import (
	"github.com/google/uuid"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/models"
)

// DefaultStep is the slot granularity in minutes.
const DefaultStep = 15

// Generate returns start, start+step, ... up to the last point not after end.
func Generate(start, end models.TimeOfDay, step int) ([]models.TimeOfDay, error) {
	if step <= 0 {
		return nil, apperr.Invalid("step", "must be a positive number of minutes")
	}
	if !start.Valid() || !end.Valid() {
		return nil, apperr.Invalid("time", "must be within one day")
	}
	if end < start {
		return nil, apperr.ErrInvalidRange
	}

	times := make([]models.TimeOfDay, 0, int(end-start)/step+1)
	for t := start; ; t = t.Add(step) {
		times = append(times, t)
		// Compared as a remaining span so huge steps never overflow t
		if int(end-t) < step {
			break
		}
	}
	return times, nil
}

// NewSlots wraps each time into an unbooked slot with a fresh id.
func NewSlots(times []models.TimeOfDay) []models.Slot {
	out := make([]models.Slot, len(times))
	for i, t := range times {
		out[i] = models.Slot{
			ID:   uuid.NewString(),
			Time: t,
		}
	}
	return out
}

// Build generates the times for a range and wraps them into slots.
func Build(start, end models.TimeOfDay, step int) ([]models.Slot, error) {
	times, err := Generate(start, end, step)
	if err != nil {
		return nil, err
	}
	return NewSlots(times), nil
}
