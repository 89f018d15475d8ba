package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/slots"
	"github.com/emilianohg/slotbook/internal/store"
)

const (
	SessionsKey = "interviewDates"
	// ArchiveKey holds sessions from the previous history screen. Read only.
	ArchiveKey = "interviewHistory"
)

// SessionRepo reads and writes the whole session collection on every call.
// There is no locking and no cache: two writers that interleave lose updates.
type SessionRepo struct {
	store store.Store

	// Warn receives non fatal problems found while loading, such as a
	// corrupt collection. Defaults to the standard logger.
	Warn func(err error)
}

func NewSessionRepo(s store.Store) *SessionRepo {
	return &SessionRepo{
		store: s,
		Warn: func(err error) {
			log.Printf("warning: %v", err)
		},
	}
}

func (r *SessionRepo) warn(err error) {
	if r.Warn != nil {
		r.Warn(err)
	}
}

func (r *SessionRepo) load(key string) ([]models.Session, error) {
	raw, ok, err := r.store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.Session{}, nil
	}

	var sessions []models.Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		r.warn(fmt.Errorf("%w: %s treated as empty: %v", apperr.ErrStoreCorrupt, key, err))
		return []models.Session{}, nil
	}
	if sessions == nil {
		sessions = []models.Session{}
	}

	for i := range sessions {
		r.repair(key, &sessions[i])
	}
	return sessions, nil
}

// repair makes the booked flag agree with the stored interviewee. The
// interviewee is the data; the flag only mirrors it.
func (r *SessionRepo) repair(key string, s *models.Session) {
	for i := range s.Slots {
		slot := &s.Slots[i]
		booked := slot.Interviewee != nil
		if slot.IsBooked != booked {
			r.warn(fmt.Errorf("%s: session %s slot %s: booked flag did not match interviewee, fixed", key, s.ID, slot.ID))
			slot.IsBooked = booked
		}
	}
}

func (r *SessionRepo) save(sessions []models.Session) error {
	if sessions == nil {
		sessions = []models.Session{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}
	if err := r.store.Set(SessionsKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", SessionsKey, err)
	}
	return nil
}

// CreateSession generates the slots for the window and appends a new session.
func (r *SessionRepo) CreateSession(date models.Date, start, end models.TimeOfDay, step int) (*models.Session, error) {
	if _, err := models.ParseDate(string(date)); err != nil {
		return nil, err
	}
	if step == 0 {
		step = slots.DefaultStep
	}
	generated, err := slots.Build(start, end, step)
	if err != nil {
		return nil, err
	}

	session := models.Session{
		ID:        uuid.NewString(),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Slots:     generated,
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	sessions, err := r.load(SessionsKey)
	if err != nil {
		return nil, err
	}
	if err := r.save(append(sessions, session)); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepo) GetSession(id string) (*models.Session, error) {
	sessions, err := r.load(SessionsKey)
	if err != nil {
		return nil, err
	}
	i := indexOf(sessions, id)
	if i < 0 {
		return nil, apperr.NotFound("session", id)
	}
	return &sessions[i], nil
}

// ListSessions returns the active sessions in insertion order.
func (r *SessionRepo) ListSessions() ([]models.Session, error) {
	return r.load(SessionsKey)
}

func (r *SessionRepo) ListArchived() ([]models.Session, error) {
	return r.load(ArchiveKey)
}

// ListAll returns the active sessions followed by the archived ones.
func (r *SessionRepo) ListAll() ([]models.Session, error) {
	active, err := r.load(SessionsKey)
	if err != nil {
		return nil, err
	}
	archived, err := r.load(ArchiveKey)
	if err != nil {
		return nil, err
	}
	return append(active, archived...), nil
}

// ReplaceSlot swaps one slot, matched by id, and writes the collection back.
func (r *SessionRepo) ReplaceSlot(sessionID string, slot models.Slot) (*models.Session, error) {
	return r.ReplaceSlots(sessionID, slot)
}

// ReplaceSlots swaps several slots of one session in a single write. Nothing
// is written if any slot is unknown or the result breaks a session invariant.
func (r *SessionRepo) ReplaceSlots(sessionID string, replacements ...models.Slot) (*models.Session, error) {
	sessions, err := r.load(SessionsKey)
	if err != nil {
		return nil, err
	}
	i := indexOf(sessions, sessionID)
	if i < 0 {
		return nil, apperr.NotFound("session", sessionID)
	}

	updated := sessions[i].Clone()
	for _, slot := range replacements {
		j, ok := updated.SlotByID(slot.ID)
		if !ok {
			return nil, apperr.NotFound("slot", slot.ID)
		}
		slot = slot.Clone()
		if slot.Interviewee != nil {
			slot.Interviewee.IsDuplicate = false
		}
		updated.Slots[j] = slot
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	sessions[i] = updated
	if err := r.save(sessions); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *SessionRepo) DeleteSession(id string) error {
	sessions, err := r.load(SessionsKey)
	if err != nil {
		return err
	}
	i := indexOf(sessions, id)
	if i < 0 {
		return apperr.NotFound("session", id)
	}
	return r.save(append(sessions[:i], sessions[i+1:]...))
}

// SortByDateDesc orders sessions most recent first, keeping insertion order
// for equal dates.
func SortByDateDesc(sessions []models.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[j].Date.Before(sessions[i].Date)
	})
}

// Past returns the sessions dated strictly before today, most recent first.
func Past(sessions []models.Session, today models.Date) []models.Session {
	var past []models.Session
	for _, s := range sessions {
		if s.Date.Before(today) {
			past = append(past, s)
		}
	}
	SortByDateDesc(past)
	return past
}

func indexOf(sessions []models.Session, id string) int {
	for i, s := range sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}
