// Package views provides TUI view components for the guessing game.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/guessnumber/guessnumber/internal/tui"
)

// maxGuessWidth is the maximum width for the guess box.
const maxGuessWidth = 60

// GuessModel is the input screen: description, text field and status.
type GuessModel struct {
	title       string
	description string
	status      string
	warning     string
	input       textinput.Model
	width       int
	height      int
}

// NewGuessModel creates the input screen.
func NewGuessModel(title, description, placeholder string, width, height int) GuessModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 12
	ti.Width = maxGuessWidth - 12
	ti.Prompt = "> "
	ti.Focus()

	return GuessModel{
		title:       title,
		description: description,
		input:       ti,
		width:       width,
		height:      height,
	}
}

// Init starts the cursor blinking.
func (m GuessModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input screen.
// Enter emits a tui.SubmitMsg with the raw input text.
func (m GuessModel) Update(msg tea.Msg) (GuessModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, tui.DefaultKeyMap.Submit):
			text := m.input.Value()
			return m, func() tea.Msg {
				return tui.SubmitMsg{Text: text}
			}
		case key.Matches(msg, tui.DefaultKeyMap.Quit):
			return m, func() tea.Msg {
				return tui.QuitMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the current input text.
func (m GuessModel) Value() string {
	return m.input.Value()
}

// Clear empties the input field.
func (m *GuessModel) Clear() {
	m.input.Reset()
}

// Focus gives the input field keyboard focus.
func (m *GuessModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus from the input field.
func (m *GuessModel) Blur() {
	m.input.Blur()
}

// SetStatus sets the line rendered below the input.
func (m *GuessModel) SetStatus(status string) {
	m.status = status
}

// SetWarning sets a persistent warning, e.g. a failing event log.
func (m *GuessModel) SetWarning(warning string) {
	m.warning = warning
}

// View renders the input screen.
func (m GuessModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.description)
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render(m.status))
	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render(m.warning))
	}

	boxWidth := min(maxGuessWidth, max(m.width-4, 20))
	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
