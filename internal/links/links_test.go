package links_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/lifecycle"
	"github.com/emilianohg/slotbook/internal/links"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/repository"
	"github.com/emilianohg/slotbook/internal/store"
)

func TestBuildAndParse(t *testing.T) {
	reserve := links.ReservationURL("https://jobs.example.com/", "abc-123")
	assert.Equal(t, "https://jobs.example.com/reserve?date=abc-123", reserve)

	link, err := links.Parse(reserve)
	require.NoError(t, err)
	assert.Equal(t, links.Link{Kind: links.KindReserve, SessionID: "abc-123"}, link)

	listing := links.ListingURL("http://localhost:3000/admin", "x y")
	link, err = links.Parse(listing)
	require.NoError(t, err)
	assert.Equal(t, links.Link{Kind: links.KindListing, SessionID: "x y"}, link)
}

func TestParseRejects(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/reserve",
		"https://example.com/other?date=1",
		"://bad",
	} {
		_, err := links.Parse(raw)
		assert.ErrorIs(t, err, apperr.ErrValidation, raw)
	}
}

func TestResolve(t *testing.T) {
	repo := repository.NewSessionRepo(store.NewMemory())
	svc := lifecycle.NewService(repo)

	first, err := repo.CreateSession("2024-06-01", models.MustTime("09:00"), models.MustTime("09:30"), 15)
	require.NoError(t, err)
	second, err := repo.CreateSession("2024-06-08", models.MustTime("09:00"), models.MustTime("09:00"), 15)
	require.NoError(t, err)

	_, err = svc.Book(first.ID, first.Slots[0].ID, models.Intake{Name: "Ann", Phone: "1", Position: models.PositionHelper})
	require.NoError(t, err)
	_, err = svc.Book(second.ID, second.Slots[0].ID, models.Intake{Name: "ann", Phone: "2", Position: models.PositionHelper})
	require.NoError(t, err)

	resolver := links.NewResolver(repo)

	view, err := resolver.ResolveURL(links.ReservationURL("https://x", first.ID))
	require.NoError(t, err)
	require.Len(t, view.Session.Slots, 2)
	for _, slot := range view.Session.Slots {
		assert.False(t, slot.IsBooked)
	}

	view, err = resolver.Resolve(links.Link{Kind: links.KindListing, SessionID: first.ID})
	require.NoError(t, err)
	require.Len(t, view.Session.Slots, 3)
	assert.True(t, view.Session.Slots[0].Interviewee.IsDuplicate)

	_, err = resolver.ResolveURL(links.ReservationURL("https://x", "unknown"))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
