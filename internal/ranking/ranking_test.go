package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/slotbook/internal/models"
)

func completed(name string, rating int) models.Slot {
	return models.Slot{
		ID:       name,
		IsBooked: true,
		Interviewee: &models.Applicant{
			Name:               name,
			Phone:              "555-" + name,
			Position:           models.PositionHelper,
			InterviewCompleted: true,
			InterviewData:      &models.InterviewRecord{Rating: &rating},
			Rating:             &rating,
			StartRate:          "$" + name,
		},
	}
}

func TestTopCandidatesOrdering(t *testing.T) {
	sessions := []models.Session{
		{ID: "1", Date: "2024-01-01", Slots: []models.Slot{completed("r3", 3)}},
		{ID: "2", Date: "2024-02-01", Slots: []models.Slot{completed("r5-old", 5)}},
		{ID: "3", Date: "2024-03-01", Slots: []models.Slot{completed("r4", 4)}},
		{ID: "4", Date: "2024-04-01", Slots: []models.Slot{completed("r5-new", 5)}},
	}

	got := TopCandidates(sessions, DefaultMinRating)
	require.Len(t, got, 3)
	assert.Equal(t, []int{5, 5, 4}, []int{got[0].Rating, got[1].Rating, got[2].Rating})
	assert.Equal(t, "r5-new", got[0].Name)
	assert.Equal(t, "r5-old", got[1].Name)
	assert.Equal(t, models.Date("2024-04-01"), got[0].InterviewDate)
	assert.Equal(t, "4", got[0].SessionID)
	assert.Equal(t, "$r5-new", got[0].StartRate)
}

func TestTopCandidatesStableOnTies(t *testing.T) {
	sessions := []models.Session{
		{ID: "1", Date: "2024-01-01", Slots: []models.Slot{completed("first", 4), completed("second", 4)}},
		{ID: "2", Date: "2024-01-01", Slots: []models.Slot{completed("third", 4)}},
	}
	got := TopCandidates(sessions, 4)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestTopCandidatesSkipsIncomplete(t *testing.T) {
	rating := 5
	notCompleted := models.Slot{ID: "x", IsBooked: true, Interviewee: &models.Applicant{Name: "x", Rating: &rating}}
	noRating := completed("nr", 5)
	noRating.Interviewee.Rating = nil
	free := models.Slot{ID: "free"}

	sessions := []models.Session{{ID: "1", Date: "2024-01-01", Slots: []models.Slot{notCompleted, noRating, free}}}
	assert.Empty(t, TopCandidates(sessions, 0))
	assert.NotNil(t, TopCandidates(nil, 4))
}

func TestTopCandidatesMinRating(t *testing.T) {
	sessions := []models.Session{{ID: "1", Date: "2024-01-01", Slots: []models.Slot{
		completed("zero", 0), completed("three", 3), completed("five", 5),
	}}}
	assert.Len(t, TopCandidates(sessions, 0), 3)
	assert.Len(t, TopCandidates(sessions, 3), 2)
	assert.Len(t, TopCandidates(sessions, 6), 0)
}
