package screens

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/slotbook/internal/config"
	"github.com/emilianohg/slotbook/internal/duplicates"
	"github.com/emilianohg/slotbook/internal/lifecycle"
	"github.com/emilianohg/slotbook/internal/links"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/repository"
)

type slotsMode int

const (
	slotsModeList slotsMode = iota
	slotsModeBook
	slotsModeEdit
	slotsModeRate
	slotsModeUnbook
	slotsModeLinks
)

type Slots struct {
	repo   *repository.SessionRepo
	svc    *lifecycle.Service
	cfg    *config.Config
	width  int
	height int

	sessionID string
	session   *models.Session
	cursor    int
	mode      slotsMode

	bookForm *form
	editForm *form
	rateForm *form

	loading bool
	err     error
	message string
}

func NewSlots(repo *repository.SessionRepo, svc *lifecycle.Service, cfg *config.Config) *Slots {
	return &Slots{
		repo: repo,
		svc:  svc,
		cfg:  cfg,
		bookForm: newForm(
			[]string{"Name", "Phone", "Position"},
			[]string{"Full name", "555-0100", "Helper, Painter or Foreman"},
		),
		editForm: newForm(
			[]string{"Time", "Name", "Phone", "Position"},
			[]string{"HH:MM", "Full name", "555-0100", "Helper, Painter or Foreman"},
		),
		rateForm: newForm(
			[]string{"Rating (0-5)", "Start rate"},
			[]string{"4", "$20/hr"},
		),
	}
}

func (s *Slots) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Slots) SetSession(id string) {
	s.sessionID = id
	s.cursor = 0
	s.message = ""
}

type slotsDataMsg struct {
	session *models.Session
	err     error
}

func (s *Slots) Init() tea.Cmd {
	s.loading = true
	s.mode = slotsModeList
	return s.loadData
}

func (s *Slots) loadData() tea.Msg {
	session, err := s.repo.GetSession(s.sessionID)
	if err != nil {
		return slotsDataMsg{err: err}
	}
	all, err := s.repo.ListAll()
	if err != nil {
		return slotsDataMsg{err: err}
	}
	annotated := duplicates.Annotate(*session, all)
	return slotsDataMsg{session: &annotated}
}

func (s *Slots) current() (models.Slot, bool) {
	if s.session == nil || len(s.session.Slots) == 0 {
		return models.Slot{}, false
	}
	return s.session.Slots[s.cursor], true
}

func (s *Slots) Update(msg tea.Msg) tea.Cmd {
	if f := s.activeForm(); f != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				return s.submit()
			case "esc":
				f.Close()
				s.mode = slotsModeList
				return nil
			}
		}
		return f.Update(msg)
	}

	switch msg := msg.(type) {
	case slotsDataMsg:
		s.loading = false
		s.err = msg.err
		s.session = msg.session
		if s.session != nil && s.cursor >= len(s.session.Slots) {
			s.cursor = max(0, len(s.session.Slots)-1)
		}
		return nil

	case RefreshMsg:
		return s.Init()

	case tea.KeyMsg:
		s.err = nil
		switch s.mode {
		case slotsModeUnbook:
			return s.handleUnbookKey(msg)
		case slotsModeLinks:
			s.mode = slotsModeList
			return nil
		}
		return s.handleListKey(msg)
	}

	return nil
}

func (s *Slots) activeForm() *form {
	switch s.mode {
	case slotsModeBook:
		return s.bookForm
	case slotsModeEdit:
		return s.editForm
	case slotsModeRate:
		return s.rateForm
	}
	return nil
}

// Editing reports whether a form has the keyboard.
func (s *Slots) Editing() bool {
	return s.activeForm() != nil
}

func (s *Slots) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		return Navigate("sessions")
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return nil
	case "down", "j":
		if s.session != nil && s.cursor < len(s.session.Slots)-1 {
			s.cursor++
		}
		return nil
	case "l":
		if s.session != nil {
			s.mode = slotsModeLinks
		}
		return nil
	}

	slot, ok := s.current()
	if !ok {
		return nil
	}
	s.message = ""

	switch msg.String() {
	case "b":
		if slot.IsBooked {
			s.message = "Slot is already booked"
			return nil
		}
		s.mode = slotsModeBook
		return s.bookForm.Open()
	case "c":
		return s.run("Attendance confirmed", func() (*models.Session, error) {
			return s.svc.ConfirmAttendance(s.sessionID, slot.ID)
		})
	case "x":
		return s.run("Attendance cancelled", func() (*models.Session, error) {
			return s.svc.CancelAttendance(s.sessionID, slot.ID)
		})
	case "e":
		if !slot.IsBooked || slot.Interviewee == nil {
			s.message = "Slot is not booked"
			return nil
		}
		a := slot.Interviewee
		s.mode = slotsModeEdit
		return s.editForm.Open(slot.Time.String(), a.Name, a.Phone, string(a.Position))
	case "r":
		if !slot.IsBooked || slot.Interviewee == nil {
			s.message = "Slot is not booked"
			return nil
		}
		rating, startRate := "", slot.Interviewee.StartRate
		if slot.Interviewee.Rating != nil {
			rating = strconv.Itoa(*slot.Interviewee.Rating)
		}
		s.mode = slotsModeRate
		return s.rateForm.Open(rating, startRate)
	case "u":
		if slot.IsBooked {
			s.mode = slotsModeUnbook
		}
	}
	return nil
}

func (s *Slots) submit() tea.Cmd {
	slot, ok := s.current()
	mode := s.mode
	s.activeForm().Close()
	s.mode = slotsModeList
	if !ok {
		return nil
	}

	switch mode {
	case slotsModeBook:
		intake := models.Intake{
			Name:     s.bookForm.Value(0),
			Phone:    s.bookForm.Value(1),
			Position: models.Position(s.bookForm.Value(2)),
		}
		return s.run("Slot booked", func() (*models.Session, error) {
			return s.svc.Book(s.sessionID, slot.ID, intake)
		})

	case slotsModeEdit:
		newTime, err := models.ParseTimeOfDay(s.editForm.Value(0))
		if err != nil {
			s.err = err
			return nil
		}
		identity := models.Intake{
			Name:     s.editForm.Value(1),
			Phone:    s.editForm.Value(2),
			Position: models.Position(s.editForm.Value(3)),
		}
		return s.run("Booking updated", func() (*models.Session, error) {
			return s.svc.EditBooking(s.sessionID, slot.ID, newTime, identity)
		})

	case slotsModeRate:
		rating, err := strconv.Atoi(s.rateForm.Value(0))
		if err != nil {
			s.err = fmt.Errorf("rating must be a number from %d to %d", models.MinRating, models.MaxRating)
			return nil
		}
		startRate := s.rateForm.Value(1)
		return s.run("Interview completed", func() (*models.Session, error) {
			record, err := s.svc.StartInterview(s.sessionID, slot.ID)
			if err != nil {
				return nil, err
			}
			record.Rating = &rating
			record.StartRate = startRate
			if record.Location == "" && len(s.cfg.Locations) > 0 {
				record.Location = s.cfg.Locations[0]
			}
			return s.svc.CompleteInterview(s.sessionID, slot.ID, *record)
		})
	}
	return nil
}

func (s *Slots) handleUnbookKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		slot, ok := s.current()
		s.mode = slotsModeList
		if !ok {
			return nil
		}
		return s.run("Booking removed", func() (*models.Session, error) {
			return s.svc.DeleteBooking(s.sessionID, slot.ID)
		})
	case "n", "N", "esc":
		s.mode = slotsModeList
	}
	return nil
}

// run applies a transition and reloads on success.
func (s *Slots) run(success string, fn func() (*models.Session, error)) tea.Cmd {
	if _, err := fn(); err != nil {
		s.err = err
		return nil
	}
	s.message = success
	return s.loadData
}

func (s *Slots) View() string {
	var b strings.Builder

	if s.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if s.session == nil {
		if s.err != nil {
			b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", s.err)))
			b.WriteString("\n")
		}
		b.WriteString(HelpStyle.Render("[esc] Back"))
		return b.String()
	}

	b.WriteString(TitleStyle.Render(s.session.Date.Format()))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s-%s  %d/%d booked",
		s.session.StartTime, s.session.EndTime, s.session.BookedCount(), len(s.session.Slots))))
	b.WriteString("\n\n")

	writeStatus(&b, s.err, s.message)

	switch s.mode {
	case slotsModeBook:
		b.WriteString("Book this slot:\n\n")
		b.WriteString(s.bookForm.View())
		return b.String()
	case slotsModeEdit:
		b.WriteString("Edit booking:\n\n")
		b.WriteString(s.editForm.View())
		return b.String()
	case slotsModeRate:
		b.WriteString("Complete interview:\n\n")
		b.WriteString(s.rateForm.View())
		return b.String()
	case slotsModeLinks:
		b.WriteString(BoxStyle.Render(fmt.Sprintf("Reservation:\n%s\n\nInterviewees:\n%s",
			links.ReservationURL(s.cfg.BaseURL, s.session.ID),
			links.ListingURL(s.cfg.BaseURL, s.session.ID))))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Press any key to go back"))
		return b.String()
	case slotsModeUnbook:
		if slot, ok := s.current(); ok && slot.Interviewee != nil {
			b.WriteString(WarningStyle.Render(fmt.Sprintf(
				"Remove the booking of %s at %s? (y/n)", slot.Interviewee.Name, slot.Time)))
			b.WriteString("\n")
			return b.String()
		}
	}

	for i, slot := range s.session.Slots {
		cursor, style := rowStyle(i, s.cursor, !slot.IsBooked)

		line := fmt.Sprintf("%s%s  %-10s", cursor, slot.Time, slot.State())
		if a := slot.Interviewee; a != nil {
			line += fmt.Sprintf("  %s  %s  %s", a.Name, a.Phone, a.Position)
			if a.Rating != nil {
				line += fmt.Sprintf("  rated %d", *a.Rating)
			}
		}
		b.WriteString(style.Render(line))
		if a := slot.Interviewee; a != nil && a.IsDuplicate {
			b.WriteString(" ")
			b.WriteString(DuplicateStyle.Render("[duplicate]"))
		}
		b.WriteString("\n")
	}

	help := "[b] Book  [c] Confirm  [x] Cancel  [e] Edit  [r] Rate  [u] Unbook  [l] Links  [esc] Back"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}
