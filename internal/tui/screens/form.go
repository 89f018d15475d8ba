package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a column of labelled text inputs. Tab and shift+tab move focus.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(labels, placeholders []string) *form {
	f := &form{labels: labels}
	for i := range labels {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 100
		ti.Width = 40
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// Open clears or prefills the inputs and focuses the first one.
func (f *form) Open(values ...string) tea.Cmd {
	for i := range f.inputs {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		f.inputs[i].SetValue(v)
		f.inputs[i].Blur()
	}
	f.focus = 0
	return f.inputs[0].Focus()
}

func (f *form) Close() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *form) Value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return f.move(1)
		case "shift+tab", "up":
			return f.move(-1)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *form) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			label = SelectedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(HelpStyle.Render("[tab] Next field  [enter] Save  [esc] Cancel"))
	return b.String()
}
