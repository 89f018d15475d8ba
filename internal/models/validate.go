package models

import (
	"fmt"
	"strings"

	"github.com/emilianohg/slotbook/internal/apperr"
)

const (
	MinRating = 0
	MaxRating = 5
)

type State int

const (
	StateAvailable State = iota
	StateBooked
	StateConfirmed
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateAvailable:
		return "Available"
	case StateBooked:
		return "Booked"
	case StateConfirmed:
		return "Confirmed"
	case StateCompleted:
		return "Completed"
	}
	return "Unknown"
}

func invalid(field, reason string) error {
	return apperr.Invalid(field, reason)
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return apperr.ErrInvalidRating
	}
	return nil
}

// Normalize trims the intake fields and canonicalizes the position.
func (in Intake) Normalize() (Intake, error) {
	out := Intake{
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
	}
	if out.Name == "" {
		return Intake{}, invalid("name", "required")
	}
	if out.Phone == "" {
		return Intake{}, invalid("phone", "required")
	}
	if strings.TrimSpace(string(in.Position)) == "" {
		return Intake{}, invalid("position", "required")
	}
	p, err := ParsePosition(string(in.Position))
	if err != nil {
		return Intake{}, err
	}
	out.Position = p
	return out, nil
}

func (s Slot) State() State {
	if !s.IsBooked || s.Interviewee == nil {
		return StateAvailable
	}
	switch {
	case s.Interviewee.InterviewCompleted:
		return StateCompleted
	case s.Interviewee.Confirmed:
		return StateConfirmed
	}
	return StateBooked
}

// Validate checks the booking invariant of a single slot.
func (s Slot) Validate() error {
	if s.IsBooked != (s.Interviewee != nil) {
		return invalid("slot", fmt.Sprintf("%s: booked flag disagrees with interviewee", s.ID))
	}
	if !s.Time.Valid() {
		return invalid("slot", fmt.Sprintf("%s: time out of range", s.ID))
	}
	if a := s.Interviewee; a != nil {
		if a.InterviewCompleted && a.InterviewData == nil {
			return invalid("slot", fmt.Sprintf("%s: completed interview without record", s.ID))
		}
		if a.Rating != nil {
			if err := ValidateRating(*a.Rating); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks the session invariants: a well ordered range and slots in
// strictly increasing time order.
func (s *Session) Validate() error {
	if s.ID == "" {
		return invalid("session", "missing id")
	}
	if s.EndTime < s.StartTime {
		return apperr.ErrInvalidRange
	}
	ids := make(map[string]bool, len(s.Slots))
	for i, slot := range s.Slots {
		if err := slot.Validate(); err != nil {
			return err
		}
		if ids[slot.ID] {
			return invalid("session", fmt.Sprintf("duplicate slot id %s", slot.ID))
		}
		ids[slot.ID] = true
		if i > 0 && slot.Time <= s.Slots[i-1].Time {
			return invalid("session", fmt.Sprintf("slot %s out of order", slot.Time))
		}
	}
	return nil
}

func (s *Session) SlotByID(id string) (int, bool) {
	for i, slot := range s.Slots {
		if slot.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Session) SlotByTime(t TimeOfDay) (int, bool) {
	for i, slot := range s.Slots {
		if slot.Time == t {
			return i, true
		}
	}
	return -1, false
}

func (s *Session) BookedCount() int {
	n := 0
	for _, slot := range s.Slots {
		if slot.IsBooked {
			n++
		}
	}
	return n
}

// Clone returns a deep copy, including applicants and their records.
func (s Session) Clone() Session {
	c := s
	c.Slots = make([]Slot, len(s.Slots))
	for i, slot := range s.Slots {
		c.Slots[i] = slot.Clone()
	}
	return c
}

func (s Slot) Clone() Slot {
	if s.Interviewee != nil {
		a := s.Interviewee.Clone()
		s.Interviewee = &a
	}
	return s
}

func (a Applicant) Clone() Applicant {
	a.InterviewData = a.InterviewData.Clone()
	if a.Rating != nil {
		v := *a.Rating
		a.Rating = &v
	}
	return a
}
