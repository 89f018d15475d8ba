package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/lifecycle"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/repository"
	"github.com/emilianohg/slotbook/internal/store"
)

func setup(t *testing.T) (*lifecycle.Service, *repository.SessionRepo, *store.Memory, *models.Session) {
	t.Helper()
	mem := store.NewMemory()
	repo := repository.NewSessionRepo(mem)
	session, err := repo.CreateSession("2024-06-01", models.MustTime("09:00"), models.MustTime("09:30"), 15)
	require.NoError(t, err)
	return lifecycle.NewService(repo), repo, mem, session
}

func checkInvariant(t *testing.T, s *models.Session) {
	t.Helper()
	for _, slot := range s.Slots {
		assert.Equal(t, slot.IsBooked, slot.Interviewee != nil, "slot %s", slot.Time)
	}
}

func TestScenario(t *testing.T) {
	svc, repo, _, session := setup(t)
	require.Len(t, session.Slots, 3)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, []string{
		session.Slots[0].Time.String(), session.Slots[1].Time.String(), session.Slots[2].Time.String(),
	})
	slotID := session.Slots[1].ID

	s, err := svc.Book(session.ID, slotID, models.Intake{Name: "Alice", Phone: "555-0001", Position: models.PositionPainter})
	require.NoError(t, err)
	checkInvariant(t, s)
	assert.True(t, s.Slots[1].IsBooked)
	assert.False(t, s.Slots[1].Interviewee.Confirmed)

	s, err = svc.ConfirmAttendance(session.ID, slotID)
	require.NoError(t, err)
	assert.True(t, s.Slots[1].Interviewee.Confirmed)

	record, err := svc.StartInterview(session.ID, slotID)
	require.NoError(t, err)
	rating := 5
	record.Rating = &rating
	record.StartRate = "$20"

	s, err = svc.CompleteInterview(session.ID, slotID, *record)
	require.NoError(t, err)
	checkInvariant(t, s)

	reloaded, err := repo.GetSession(session.ID)
	require.NoError(t, err)
	a := reloaded.Slots[1].Interviewee
	assert.True(t, a.InterviewCompleted)
	require.NotNil(t, a.Rating)
	assert.Equal(t, 5, *a.Rating)
	assert.Equal(t, "$20", a.StartRate)
	assert.Equal(t, "Alice", a.InterviewData.Name)
}

func TestRejectedTransitionsDoNotWrite(t *testing.T) {
	svc, _, mem, session := setup(t)
	_, err := svc.Book(session.ID, session.Slots[0].ID, models.Intake{Name: "A", Phone: "1", Position: models.PositionHelper})
	require.NoError(t, err)
	before, _, _ := mem.Get(repository.SessionsKey)

	_, err = svc.Book(session.ID, session.Slots[0].ID, models.Intake{Name: "B", Phone: "2", Position: models.PositionHelper})
	assert.ErrorIs(t, err, apperr.ErrSlotUnavailable)

	_, err = svc.CompleteInterview(session.ID, session.Slots[1].ID, models.InterviewRecord{})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	bad := 9
	_, err = svc.CompleteInterview(session.ID, session.Slots[0].ID, models.InterviewRecord{Rating: &bad})
	assert.ErrorIs(t, err, apperr.ErrInvalidRating)

	_, err = svc.ConfirmAttendance("nope", session.Slots[0].ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.ConfirmAttendance(session.ID, "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.DeleteBooking(session.ID, session.Slots[2].ID)
	assert.ErrorIs(t, err, apperr.ErrNotBooked)

	_, err = svc.StartInterview(session.ID, session.Slots[2].ID)
	assert.ErrorIs(t, err, apperr.ErrNotBooked)

	after, _, _ := mem.Get(repository.SessionsKey)
	assert.Equal(t, before, after)
}

func TestServiceEditBookingMoves(t *testing.T) {
	svc, repo, _, session := setup(t)
	from, to := session.Slots[0], session.Slots[2]

	_, err := svc.Book(session.ID, from.ID, models.Intake{Name: "A", Phone: "1", Position: models.PositionHelper})
	require.NoError(t, err)
	_, err = svc.ConfirmAttendance(session.ID, from.ID)
	require.NoError(t, err)

	s, err := svc.EditBooking(session.ID, from.ID, to.Time, models.Intake{Name: "Ann", Phone: "1", Position: models.PositionHelper})
	require.NoError(t, err)
	checkInvariant(t, s)

	reloaded, err := repo.GetSession(session.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Slots[0].IsBooked)
	require.True(t, reloaded.Slots[2].IsBooked)
	assert.Equal(t, "Ann", reloaded.Slots[2].Interviewee.Name)
	assert.True(t, reloaded.Slots[2].Interviewee.Confirmed)
	assert.Equal(t, to.ID, reloaded.Slots[2].ID, "slot ids are stable")
	assert.Equal(t, from.ID, reloaded.Slots[0].ID)
}

func TestServiceBookThenDelete(t *testing.T) {
	svc, repo, _, session := setup(t)
	slot := session.Slots[1]

	_, err := svc.Book(session.ID, slot.ID, models.Intake{Name: "A", Phone: "1", Position: models.PositionHelper})
	require.NoError(t, err)
	_, err = svc.DeleteBooking(session.ID, slot.ID)
	require.NoError(t, err)

	reloaded, err := repo.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, slot, reloaded.Slots[1])
}
