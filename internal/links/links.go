package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/duplicates"
	"github.com/emilianohg/slotbook/internal/models"
)

type Kind string

const (
	KindReserve Kind = "reserve"
	KindListing Kind = "interviewees"
)

type Link struct {
	Kind      Kind
	SessionID string
}

func build(base string, kind Kind, id string) string {
	return fmt.Sprintf("%s/%s?date=%s", strings.TrimRight(base, "/"), kind, url.QueryEscape(id))
}

// ReservationURL is the public self-service booking link for a session.
func ReservationURL(base, sessionID string) string {
	return build(base, KindReserve, sessionID)
}

// ListingURL is the admin link that opens a session's interviewees.
func ListingURL(base, sessionID string) string {
	return build(base, KindListing, sessionID)
}

// Parse recognizes reservation and listing links by their last path segment.
func Parse(raw string) (Link, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Link{}, apperr.Invalid("link", err.Error())
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	kind := Kind(segments[len(segments)-1])
	if kind != KindReserve && kind != KindListing {
		return Link{}, apperr.Invalid("link", fmt.Sprintf("unknown entry point %q", u.Path))
	}

	id := u.Query().Get("date")
	if id == "" {
		return Link{}, apperr.Invalid("link", "missing date parameter")
	}
	return Link{Kind: kind, SessionID: id}, nil
}

// Repository is what the resolver reads sessions from.
type Repository interface {
	GetSession(id string) (*models.Session, error)
	ListAll() ([]models.Session, error)
}

type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// View is what an entry point presents.
type View struct {
	Link    Link
	Session models.Session
}

// Resolve looks up the session a link names. Reservation links only expose the
// slots still open for booking; listing links expose every slot with
// duplicate flags computed against all known sessions.
func (r *Resolver) Resolve(link Link) (*View, error) {
	session, err := r.repo.GetSession(link.SessionID)
	if err != nil {
		return nil, err
	}

	view := &View{Link: link}
	switch link.Kind {
	case KindReserve:
		view.Session = openSlots(*session)
	case KindListing:
		all, err := r.repo.ListAll()
		if err != nil {
			return nil, err
		}
		view.Session = duplicates.Annotate(*session, all)
	default:
		return nil, apperr.Invalid("link", fmt.Sprintf("unknown entry point %q", link.Kind))
	}
	return view, nil
}

// ResolveURL parses raw and resolves it.
func (r *Resolver) ResolveURL(raw string) (*View, error) {
	link, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return r.Resolve(link)
}

func openSlots(s models.Session) models.Session {
	out := s
	out.Slots = nil
	for _, slot := range s.Slots {
		if !slot.IsBooked {
			out.Slots = append(out.Slots, slot)
		}
	}
	return out
}
