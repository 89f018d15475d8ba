package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/slotbook/internal/config"
	"github.com/emilianohg/slotbook/internal/links"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/repository"
)

type sessionsMode int

const (
	sessionsModeList sessionsMode = iota
	sessionsModeAdd
	sessionsModeDelete
)

type Sessions struct {
	repo   *repository.SessionRepo
	cfg    *config.Config
	width  int
	height int

	sessions []models.Session
	cursor   int
	mode     sessionsMode
	form     *form
	loading  bool
	err      error
	message  string
}

func NewSessions(repo *repository.SessionRepo, cfg *config.Config) *Sessions {
	return &Sessions{
		repo: repo,
		cfg:  cfg,
		form: newForm(
			[]string{"Interview date", "Start time", "End time"},
			[]string{"YYYY-MM-DD", "09:00", "12:00"},
		),
	}
}

func (s *Sessions) SetSize(width, height int) {
	s.width = width
	s.height = height
}

type sessionsDataMsg struct {
	sessions []models.Session
	err      error
}

func (s *Sessions) Init() tea.Cmd {
	s.loading = true
	s.mode = sessionsModeList
	return s.loadData
}

func (s *Sessions) loadData() tea.Msg {
	sessions, err := s.repo.ListSessions()
	if err == nil {
		repository.SortByDateDesc(sessions)
	}
	return sessionsDataMsg{sessions: sessions, err: err}
}

func (s *Sessions) Update(msg tea.Msg) tea.Cmd {
	if s.mode == sessionsModeAdd {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				return s.create()
			case "esc":
				s.mode = sessionsModeList
				s.form.Close()
				return nil
			}
		}
		return s.form.Update(msg)
	}

	switch msg := msg.(type) {
	case sessionsDataMsg:
		s.loading = false
		s.err = msg.err
		s.sessions = msg.sessions
		if s.cursor >= len(s.sessions) {
			s.cursor = max(0, len(s.sessions)-1)
		}
		return nil

	case RefreshMsg:
		return s.Init()

	case tea.KeyMsg:
		s.err = nil
		if s.mode == sessionsModeDelete {
			return s.handleDeleteKey(msg)
		}
		return s.handleListKey(msg)
	}

	return nil
}

func (s *Sessions) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.sessions)-1 {
			s.cursor++
		}
	case "a":
		s.mode = sessionsModeAdd
		s.message = ""
		return s.form.Open(string(models.Today()), "09:00", "12:00")
	case "d":
		if len(s.sessions) > 0 {
			s.mode = sessionsModeDelete
		}
	case "enter":
		if len(s.sessions) > 0 {
			return NavigateWithSession("slots", s.sessions[s.cursor].ID)
		}
	case "s":
		return Navigate("shortlist")
	}
	return nil
}

func (s *Sessions) create() tea.Cmd {
	s.mode = sessionsModeList
	s.form.Close()

	date, err := models.ParseDate(s.form.Value(0))
	if err != nil {
		s.err = err
		return nil
	}
	start, err := models.ParseTimeOfDay(s.form.Value(1))
	if err != nil {
		s.err = err
		return nil
	}
	end, err := models.ParseTimeOfDay(s.form.Value(2))
	if err != nil {
		s.err = err
		return nil
	}

	session, err := s.repo.CreateSession(date, start, end, s.cfg.StepMinutes)
	if err != nil {
		s.err = err
		return nil
	}
	s.message = fmt.Sprintf("Created %s with %d slots", session.Date.Format(), len(session.Slots))
	return s.loadData
}

func (s *Sessions) handleDeleteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		session := s.sessions[s.cursor]
		if err := s.repo.DeleteSession(session.ID); err != nil {
			s.err = err
		} else {
			s.message = fmt.Sprintf("Deleted session %s", session.Date.Format())
		}
		s.mode = sessionsModeList
		return s.loadData

	case "n", "N", "esc":
		s.mode = sessionsModeList
	}
	return nil
}

func (s *Sessions) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("SLOTBOOK"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Interview sessions"))
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	writeStatus(&b, s.err, s.message)

	if s.mode == sessionsModeAdd {
		b.WriteString("New interview session:\n\n")
		b.WriteString(s.form.View())
		return b.String()
	}

	if s.mode == sessionsModeDelete && len(s.sessions) > 0 {
		session := s.sessions[s.cursor]
		b.WriteString(WarningStyle.Render(fmt.Sprintf(
			"Delete the session on %s and its %d bookings? (y/n)",
			session.Date.Format(), session.BookedCount(),
		)))
		b.WriteString("\n")
		return b.String()
	}

	if len(s.sessions) == 0 {
		b.WriteString(DimStyle.Render("No interview sessions yet. Press 'a' to create one."))
		b.WriteString("\n\n")
	} else {
		today := models.Today()
		for i, session := range s.sessions {
			cursor, style := rowStyle(i, s.cursor, session.Date.Before(today))

			line := fmt.Sprintf("%s%s  %s-%s  %d/%d booked",
				cursor,
				session.Date.Format(),
				session.StartTime,
				session.EndTime,
				session.BookedCount(),
				len(session.Slots),
			)
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}

		selected := s.sessions[s.cursor]
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render("Reservation link:\n" + links.ReservationURL(s.cfg.BaseURL, selected.ID)))
		b.WriteString("\n")
	}

	help := "[a] Add  [d] Delete  [enter] View slots  [s] Shortlist  [q] Quit"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

// Editing reports whether a form has the keyboard.
func (s *Sessions) Editing() bool {
	return s.mode == sessionsModeAdd
}
