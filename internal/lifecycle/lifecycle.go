// Package lifecycle moves a slot through Available, Booked, Confirmed and
// Completed. The functions here are pure: they take a slot value and return
// the next one, or an error and no change.
package lifecycle

import (
	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/models"
)

func Book(slot models.Slot, intake models.Intake) (models.Slot, error) {
	if slot.IsBooked {
		return slot, apperr.ErrSlotUnavailable
	}
	in, err := intake.Normalize()
	if err != nil {
		return slot, err
	}

	slot.IsBooked = true
	slot.Interviewee = &models.Applicant{
		Name:     in.Name,
		Phone:    in.Phone,
		Position: in.Position,
	}
	return slot, nil
}

func ConfirmAttendance(slot models.Slot) (models.Slot, error) {
	return withApplicant(slot, func(a *models.Applicant) error {
		a.Confirmed = true
		return nil
	})
}

func CancelAttendance(slot models.Slot) (models.Slot, error) {
	return withApplicant(slot, func(a *models.Applicant) error {
		a.Confirmed = false
		return nil
	})
}

// CompleteInterview stores the record and copies its rating and start rate
// onto the applicant. Completing again replaces the previous record.
func CompleteInterview(slot models.Slot, record models.InterviewRecord) (models.Slot, error) {
	if err := record.Validate(); err != nil {
		return slot, err
	}
	return withApplicant(slot, func(a *models.Applicant) error {
		a.InterviewCompleted = true
		a.InterviewData = record.Clone()
		a.Rating = nil
		if record.Rating != nil {
			r := *record.Rating
			a.Rating = &r
		}
		a.StartRate = record.StartRate
		return nil
	})
}

// DeleteBooking vacates the slot. The applicant and its history are dropped.
func DeleteBooking(slot models.Slot) (models.Slot, error) {
	if !slot.IsBooked {
		return slot, apperr.ErrNotBooked
	}
	slot.IsBooked = false
	slot.Interviewee = nil
	return slot, nil
}

// EditBooking updates the identity of the applicant booked in slotID and, when
// newTime names another slot, moves the booking there. Progress (confirmation,
// completion, record, rating) travels with the applicant. It returns the slots
// that changed.
func EditBooking(session models.Session, slotID string, newTime models.TimeOfDay, identity models.Intake) ([]models.Slot, error) {
	i, ok := session.SlotByID(slotID)
	if !ok {
		return nil, apperr.NotFound("slot", slotID)
	}
	original := session.Slots[i].Clone()
	if !original.IsBooked {
		return nil, apperr.ErrNotBooked
	}
	in, err := identity.Normalize()
	if err != nil {
		return nil, err
	}

	applicant := *original.Interviewee
	applicant.Name = in.Name
	applicant.Phone = in.Phone
	applicant.Position = in.Position

	if newTime == original.Time {
		original.Interviewee = &applicant
		return []models.Slot{original}, nil
	}

	j, ok := session.SlotByTime(newTime)
	if !ok {
		return nil, apperr.NotFound("slot at", newTime.String())
	}
	target := session.Slots[j].Clone()
	if target.IsBooked {
		return nil, apperr.ErrSlotUnavailable
	}

	target.IsBooked = true
	target.Interviewee = &applicant
	original.IsBooked = false
	original.Interviewee = nil
	return []models.Slot{original, target}, nil
}

// StartInterview returns the record to fill in for the booked applicant: the
// saved one when re-editing, otherwise one prefilled from the booking.
func StartInterview(session models.Session, slot models.Slot) (*models.InterviewRecord, error) {
	if !slot.IsBooked || slot.Interviewee == nil {
		return nil, apperr.ErrNotBooked
	}
	a := slot.Interviewee
	if a.InterviewData != nil {
		return a.InterviewData.Clone(), nil
	}
	return &models.InterviewRecord{
		Date:             string(session.Date),
		Name:             a.Name,
		Phone:            a.Phone,
		Position:         a.Position,
		Bilingual:        models.No,
		Transportation:   models.TransportNone,
		HasTools:         models.No,
		OKWithPayroll:    models.No,
		FelonyConviction: models.No,
		OKWithWeekends:   models.No,
		FiredBefore:      models.No,
	}, nil
}

func withApplicant(slot models.Slot, fn func(a *models.Applicant) error) (models.Slot, error) {
	if !slot.IsBooked || slot.Interviewee == nil {
		return slot, apperr.ErrNotBooked
	}
	slot = slot.Clone()
	if err := fn(slot.Interviewee); err != nil {
		return slot, err
	}
	return slot, nil
}
