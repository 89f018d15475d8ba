package lifecycle

import (
	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/models"
)

// Repository is the part of the session repository the lifecycle writes through.
type Repository interface {
	GetSession(id string) (*models.Session, error)
	ReplaceSlots(sessionID string, slots ...models.Slot) (*models.Session, error)
}

// Service loads the session, applies one transition, and writes the result.
// Each call reloads so the next operation never works on a stale copy.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Book(sessionID, slotID string, intake models.Intake) (*models.Session, error) {
	return s.apply(sessionID, slotID, func(slot models.Slot) (models.Slot, error) {
		return Book(slot, intake)
	})
}

func (s *Service) ConfirmAttendance(sessionID, slotID string) (*models.Session, error) {
	return s.apply(sessionID, slotID, ConfirmAttendance)
}

func (s *Service) CancelAttendance(sessionID, slotID string) (*models.Session, error) {
	return s.apply(sessionID, slotID, CancelAttendance)
}

func (s *Service) CompleteInterview(sessionID, slotID string, record models.InterviewRecord) (*models.Session, error) {
	return s.apply(sessionID, slotID, func(slot models.Slot) (models.Slot, error) {
		return CompleteInterview(slot, record)
	})
}

func (s *Service) DeleteBooking(sessionID, slotID string) (*models.Session, error) {
	return s.apply(sessionID, slotID, DeleteBooking)
}

func (s *Service) EditBooking(sessionID, slotID string, newTime models.TimeOfDay, identity models.Intake) (*models.Session, error) {
	session, err := s.repo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	changed, err := EditBooking(*session, slotID, newTime, identity)
	if err != nil {
		return nil, err
	}
	return s.repo.ReplaceSlots(sessionID, changed...)
}

func (s *Service) StartInterview(sessionID, slotID string) (*models.InterviewRecord, error) {
	session, slot, err := s.find(sessionID, slotID)
	if err != nil {
		return nil, err
	}
	return StartInterview(*session, slot)
}

func (s *Service) find(sessionID, slotID string) (*models.Session, models.Slot, error) {
	session, err := s.repo.GetSession(sessionID)
	if err != nil {
		return nil, models.Slot{}, err
	}
	i, ok := session.SlotByID(slotID)
	if !ok {
		return nil, models.Slot{}, apperr.NotFound("slot", slotID)
	}
	return session, session.Slots[i], nil
}

func (s *Service) apply(sessionID, slotID string, transition func(models.Slot) (models.Slot, error)) (*models.Session, error) {
	_, slot, err := s.find(sessionID, slotID)
	if err != nil {
		return nil, err
	}
	next, err := transition(slot)
	if err != nil {
		return nil, err
	}
	return s.repo.ReplaceSlots(sessionID, next)
}
