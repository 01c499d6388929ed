package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/guessnumber/guessnumber/internal/tui"
)

// PopupModel is the modal dialog that reports a submission result.
type PopupModel struct {
	result tui.Result
	hint   string
}

// NewPopupModel creates a popup for result. hint is shown under the message.
func NewPopupModel(result tui.Result, hint string) PopupModel {
	return PopupModel{result: result, hint: hint}
}

// Result returns the result the popup displays.
func (m PopupModel) Result() tui.Result {
	return m.result
}

// Update emits tui.DismissMsg when a dismiss key is pressed.
func (m PopupModel) Update(msg tea.Msg) (PopupModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, tui.DefaultKeyMap.Dismiss) {
		return m, func() tea.Msg {
			return tui.DismissMsg{}
		}
	}
	return m, nil
}

// View renders the popup.
func (m PopupModel) View() string {
	body := m.result.Message
	switch m.result.Kind {
	case tui.ResultCorrect:
		body = tui.SuccessStyle.Render(body)
	case tui.ResultRejected:
		body = tui.ErrorStyle.Render(body)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		tui.TitleStyle.Render(m.result.Title),
		"",
		body,
		"",
		tui.DimStyle.Render(m.hint),
	)
	return tui.PopupStyle.BorderForeground(tui.PopupBorder(m.result.Kind)).Render(content)
}
