package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/slotbook/internal/config"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/ranking"
	"github.com/emilianohg/slotbook/internal/repository"
)

type Shortlist struct {
	repo   *repository.SessionRepo
	cfg    *config.Config
	width  int
	height int

	entries []models.ShortlistEntry
	cursor  int
	loading bool
	err     error
}

func NewShortlist(repo *repository.SessionRepo, cfg *config.Config) *Shortlist {
	return &Shortlist{repo: repo, cfg: cfg}
}

func (s *Shortlist) SetSize(width, height int) {
	s.width = width
	s.height = height
}

type shortlistDataMsg struct {
	entries []models.ShortlistEntry
	err     error
}

func (s *Shortlist) Init() tea.Cmd {
	s.loading = true
	s.cursor = 0
	return s.loadData
}

func (s *Shortlist) loadData() tea.Msg {
	all, err := s.repo.ListAll()
	if err != nil {
		return shortlistDataMsg{err: err}
	}
	return shortlistDataMsg{entries: ranking.TopCandidates(all, s.cfg.MinRating)}
}

func (s *Shortlist) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case shortlistDataMsg:
		s.loading = false
		s.err = msg.err
		s.entries = msg.entries
		return nil

	case RefreshMsg:
		return s.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return Navigate("sessions")
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.entries)-1 {
				s.cursor++
			}
		case "enter":
			if len(s.entries) > 0 {
				return NavigateWithSession("slots", s.entries[s.cursor].SessionID)
			}
		}
	}
	return nil
}

func (s *Shortlist) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("TOP CANDIDATES"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Rated %d or higher", s.cfg.MinRating)))
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	writeStatus(&b, s.err, "")

	if len(s.entries) == 0 {
		b.WriteString(DimStyle.Render("No candidates meet the minimum rating yet."))
		b.WriteString("\n")
	}

	for i, e := range s.entries {
		cursor, style := rowStyle(i, s.cursor, false)
		startRate := e.StartRate
		if startRate == "" {
			startRate = "Not specified"
		}
		line := fmt.Sprintf("%s%d  %-24s %-14s %-8s %-14s %s",
			cursor, e.Rating, e.Name, e.Phone, e.Position, startRate, e.InterviewDate.Format())
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	help := "[enter] Open session  [esc] Back"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}
