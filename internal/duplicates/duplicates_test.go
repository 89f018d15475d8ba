package duplicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/slotbook/internal/models"
)

func sessionWith(id string, applicants ...models.Applicant) models.Session {
	s := models.Session{ID: id, Date: "2024-06-01"}
	for i, a := range applicants {
		s.Slots = append(s.Slots, models.Slot{
			ID:          id + "-" + string(rune('a'+i)),
			Time:        models.TimeOfDay(540 + 15*i),
			IsBooked:    true,
			Interviewee: &a,
		})
	}
	return s
}

func flags(s models.Session) []bool {
	var out []bool
	for _, slot := range s.Slots {
		if slot.Interviewee != nil {
			out = append(out, slot.Interviewee.IsDuplicate)
		}
	}
	return out
}

func TestAnnotateByNameAndPhone(t *testing.T) {
	a := sessionWith("A",
		models.Applicant{Name: "John Smith", Phone: "555-9999"},
		models.Applicant{Name: "Jane Roe", Phone: "555-1234"},
		models.Applicant{Name: "Nobody", Phone: "555-0000"},
	)
	b := sessionWith("B",
		models.Applicant{Name: "JOHN SMITH ", Phone: "555-1111"},
		models.Applicant{Name: "Someone Else", Phone: "555-1234"},
	)

	got := Annotate(a, []models.Session{a, b})
	assert.Equal(t, []bool{true, true, false}, flags(got))
	assert.Equal(t, []bool{false, false, false}, flags(a), "input must not be mutated")
}

func TestAnnotateAgainstItselfNeverFlags(t *testing.T) {
	a := sessionWith("A",
		models.Applicant{Name: "Same", Phone: "1"},
		models.Applicant{Name: "same", Phone: "1"},
	)
	assert.Equal(t, []bool{false, false}, flags(Annotate(a, []models.Session{a})))
	assert.Equal(t, []bool{false, false}, flags(Annotate(a, nil)))
}

func TestAnnotateRecomputesStaleFlags(t *testing.T) {
	a := sessionWith("A", models.Applicant{Name: "X", Phone: "1", IsDuplicate: true})
	b := sessionWith("B", models.Applicant{Name: "Y", Phone: "2"})
	assert.Equal(t, []bool{false}, flags(Annotate(a, []models.Session{a, b})))
}

func TestAnnotateIgnoresUnbookedAndEmpty(t *testing.T) {
	a := sessionWith("A", models.Applicant{Name: "", Phone: ""})
	a.Slots = append(a.Slots, models.Slot{ID: "free", Time: 900})
	b := sessionWith("B", models.Applicant{Name: "", Phone: ""})
	got := Annotate(a, []models.Session{a, b})
	assert.Equal(t, []bool{false}, flags(got))
	assert.Nil(t, got.Slots[1].Interviewee)
}

func TestAnnotateMatchesPhoneExactly(t *testing.T) {
	a := sessionWith("A", models.Applicant{Name: "P", Phone: "555-1234"})
	b := sessionWith("B", models.Applicant{Name: "Q", Phone: "5551234"})
	assert.Equal(t, []bool{false}, flags(Annotate(a, []models.Session{a, b})))
}

func TestAnnotateAllMatchesAnnotate(t *testing.T) {
	a := sessionWith("A", models.Applicant{Name: "Ann", Phone: "1"}, models.Applicant{Name: "Bo", Phone: "2"})
	b := sessionWith("B", models.Applicant{Name: "ann", Phone: "9"})
	c := sessionWith("C", models.Applicant{Name: "Cy", Phone: "2"}, models.Applicant{Name: "Di", Phone: "4"})
	archived := sessionWith("OLD", models.Applicant{Name: "Di", Phone: "7"})

	active := []models.Session{a, b, c}
	corpus := append(append([]models.Session{}, active...), archived)

	got := AnnotateAll(active, corpus)
	require.Len(t, got, 3)
	for i, s := range active {
		assert.Equal(t, flags(Annotate(s, corpus)), flags(got[i]), s.ID)
	}
	assert.Equal(t, []bool{true, true}, flags(got[0]))
	assert.Equal(t, []bool{true}, flags(got[1]))
	assert.Equal(t, []bool{true, true}, flags(got[2]))
}
