package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilianohg/slotbook/internal/config"
	"github.com/emilianohg/slotbook/internal/lifecycle"
	"github.com/emilianohg/slotbook/internal/repository"
	"github.com/emilianohg/slotbook/internal/tui/screens"
)

type Screen int

const (
	ScreenSessions Screen = iota
	ScreenSlots
	ScreenShortlist
)

type App struct {
	repo          *repository.SessionRepo
	svc           *lifecycle.Service
	cfg           *config.Config
	currentScreen Screen
	width         int
	height        int

	// Screen models
	sessions  *screens.Sessions
	slots     *screens.Slots
	shortlist *screens.Shortlist
}

func NewApp(repo *repository.SessionRepo, svc *lifecycle.Service, cfg *config.Config) *App {
	return &App{
		repo:          repo,
		svc:           svc,
		cfg:           cfg,
		currentScreen: ScreenSessions,
	}
}

func (a *App) Init() tea.Cmd {
	a.sessions = screens.NewSessions(a.repo, a.cfg)
	a.slots = screens.NewSlots(a.repo, a.svc, a.cfg)
	a.shortlist = screens.NewShortlist(a.repo, a.cfg)

	return a.sessions.Init()
}

func (a *App) editing() bool {
	switch a.currentScreen {
	case ScreenSessions:
		return a.sessions.Editing()
	case ScreenSlots:
		return a.slots.Editing()
	}
	return false
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.currentScreen == ScreenSessions && !a.editing() {
				return a, tea.Quit
			}
			// Let individual screens handle 'q' for going back
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sessions.SetSize(msg.Width, msg.Height)
		a.slots.SetSize(msg.Width, msg.Height)
		a.shortlist.SetSize(msg.Width, msg.Height)

	case screens.NavigateMsg:
		return a.handleNavigation(msg)
	}

	// Update current screen
	var cmd tea.Cmd
	switch a.currentScreen {
	case ScreenSessions:
		cmd = a.sessions.Update(msg)
	case ScreenSlots:
		cmd = a.slots.Update(msg)
	case ScreenShortlist:
		cmd = a.shortlist.Update(msg)
	}

	return a, cmd
}

func (a *App) handleNavigation(msg screens.NavigateMsg) (tea.Model, tea.Cmd) {
	switch msg.Screen {
	case "sessions":
		a.currentScreen = ScreenSessions
		return a, a.sessions.Init()
	case "slots":
		a.currentScreen = ScreenSlots
		a.slots.SetSession(msg.SessionID)
		return a, a.slots.Init()
	case "shortlist":
		a.currentScreen = ScreenShortlist
		return a, a.shortlist.Init()
	}
	return a, nil
}

func (a *App) View() string {
	var content string

	switch a.currentScreen {
	case ScreenSessions:
		content = a.sessions.View()
	case ScreenSlots:
		content = a.slots.View()
	case ScreenShortlist:
		content = a.shortlist.View()
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Render(content)
}

func Run(repo *repository.SessionRepo, svc *lifecycle.Service, cfg *config.Config) error {
	app := NewApp(repo, svc, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
