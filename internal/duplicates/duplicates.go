package duplicates

import (
	"strings"

	"github.com/emilianohg/slotbook/internal/models"
)

type index struct {
	names  map[string]int
	phones map[string]int
}

// newIndex counts booked applicants per key, so AnnotateAll can subtract a
// session's own entries before matching.
func newIndex(all []models.Session) *index {
	idx := &index{names: map[string]int{}, phones: map[string]int{}}
	for _, s := range all {
		idx.add(s, 1)
	}
	return idx
}

func (idx *index) add(s models.Session, delta int) {
	for _, slot := range s.Slots {
		a := slot.Interviewee
		if !slot.IsBooked || a == nil {
			continue
		}
		if k := nameKey(a.Name); k != "" {
			idx.names[k] += delta
		}
		if a.Phone != "" {
			idx.phones[a.Phone] += delta
		}
	}
}

func (idx *index) matches(a *models.Applicant) bool {
	if k := nameKey(a.Name); k != "" && idx.names[k] > 0 {
		return true
	}
	return a.Phone != "" && idx.phones[a.Phone] > 0
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Annotate returns a copy of session with IsDuplicate set on every booked
// applicant that also appears in another session of all, by case insensitive
// name or exact phone. Sessions are told apart by id; every entry of all
// sharing session's id is skipped.
func Annotate(session models.Session, all []models.Session) models.Session {
	var others []models.Session
	for _, s := range all {
		if s.ID != session.ID {
			others = append(others, s)
		}
	}
	return annotate(session, newIndex(others))
}

// AnnotateAll annotates each session of sessions against corpus.
func AnnotateAll(sessions, corpus []models.Session) []models.Session {
	idx := newIndex(corpus)
	out := make([]models.Session, len(sessions))
	for i, s := range sessions {
		var self []models.Session
		for _, c := range corpus {
			if c.ID == s.ID {
				self = append(self, c)
			}
		}
		for _, c := range self {
			idx.add(c, -1)
		}
		out[i] = annotate(s, idx)
		for _, c := range self {
			idx.add(c, 1)
		}
	}
	return out
}

func annotate(session models.Session, idx *index) models.Session {
	out := session.Clone()
	for i := range out.Slots {
		slot := &out.Slots[i]
		if !slot.IsBooked || slot.Interviewee == nil {
			continue
		}
		slot.Interviewee.IsDuplicate = idx.matches(slot.Interviewee)
	}
	return out
}
