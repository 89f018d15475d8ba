package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NavigateMsg is sent when navigation to another screen is requested
type NavigateMsg struct {
	Screen    string
	SessionID string
}

func Navigate(screen string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen}
	}
}

func NavigateWithSession(screen string, sessionID string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen, SessionID: sessionID}
	}
}

// RefreshMsg is sent when data should be refreshed
type RefreshMsg struct{}

func Refresh() tea.Cmd {
	return func() tea.Msg {
		return RefreshMsg{}
	}
}

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	DuplicateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

// writeStatus renders the last error and the last success message, if any.
func writeStatus(b *strings.Builder, err error, message string) {
	if err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		b.WriteString("\n\n")
	}
	if message != "" {
		b.WriteString(SuccessStyle.Render(message))
		b.WriteString("\n\n")
	}
}

// rowStyle returns the cursor prefix and style of list row i.
func rowStyle(i, cursor int, dim bool) (string, lipgloss.Style) {
	switch {
	case i == cursor:
		return "> ", SelectedStyle
	case dim:
		return "  ", DimStyle
	}
	return "  ", NormalStyle
}
