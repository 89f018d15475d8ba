package ranking

import (
	"sort"

	"github.com/emilianohg/slotbook/internal/models"
)

// DefaultMinRating is the lowest rating that makes the shortlist.
const DefaultMinRating = 4

// TopCandidates lists every completed interview rated at least minRating,
// best rating first, then most recent session. Entries that tie on both keep
// the order they were found in.
func TopCandidates(all []models.Session, minRating int) []models.ShortlistEntry {
	entries := []models.ShortlistEntry{}
	for _, s := range all {
		for _, slot := range s.Slots {
			a := slot.Interviewee
			if !slot.IsBooked || a == nil || !a.InterviewCompleted || a.Rating == nil {
				continue
			}
			if *a.Rating < minRating {
				continue
			}
			entries = append(entries, models.ShortlistEntry{
				Name:          a.Name,
				Phone:         a.Phone,
				Position:      a.Position,
				StartRate:     a.StartRate,
				Rating:        *a.Rating,
				InterviewDate: s.Date,
				SessionID:     s.ID,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[j].InterviewDate.Before(entries[i].InterviewDate)
	})
	return entries
}
