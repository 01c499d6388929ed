// Package app provides the main TUI application that wires the views together.
package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/guessnumber/guessnumber/internal/locale"
	"github.com/guessnumber/guessnumber/internal/tui"
	"github.com/guessnumber/guessnumber/internal/tui/views"
)

// ViewState represents the current state of the TUI.
type ViewState int

const (
	StatePlaying ViewState = iota // waiting for a guess
	StatePopup                    // showing a result
)

// App is the main TUI application.
type App struct {
	model *tui.Model

	state        ViewState
	guessView    views.GuessModel
	popupView    views.PopupModel
	help         help.Model
	ctrlCPending bool
	width        int
	height       int
}

// New creates an App around model and records the game start.
func New(model *tui.Model) *App {
	p := model.Printer
	a := &App{
		model:  model,
		state:  StatePlaying,
		help:   help.New(),
		width:  80,
		height: 24,
	}
	a.guessView = views.NewGuessModel(
		p.Sprintf(locale.KeyTitle),
		model.Description(),
		p.Sprintf(locale.KeyPlaceholder),
		a.width, a.height,
	)
	model.Start(tui.ModeTUI)
	a.refreshStatus()
	return a
}

// State returns the current view state.
func (a *App) State() ViewState {
	return a.state
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return a.guessView.Init()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		var cmd tea.Cmd
		a.guessView, cmd = a.guessView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.ctrlCPending {
				return a.quit()
			}
			a.ctrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

	case tui.CtrlCResetMsg:
		a.ctrlCPending = false
		return a, nil

	case tui.SubmitMsg:
		return a.submit(msg.Text)

	case tui.DismissMsg:
		return a.dismiss()

	case tui.QuitMsg:
		return a.quit()
	}

	var cmd tea.Cmd
	switch a.state {
	case StatePlaying:
		a.guessView, cmd = a.guessView.Update(msg)
	case StatePopup:
		a.popupView, cmd = a.popupView.Update(msg)
	}
	return a, cmd
}

func (a *App) submit(text string) (tea.Model, tea.Cmd) {
	if a.state != StatePlaying {
		return a, nil
	}
	res := a.model.Submit(text)
	a.popupView = views.NewPopupModel(res, a.model.Printer.Sprintf(locale.KeyDismiss))
	a.state = StatePopup
	a.guessView.Blur()
	a.refreshStatus()
	return a, nil
}

func (a *App) dismiss() (tea.Model, tea.Cmd) {
	if a.state != StatePopup {
		return a, nil
	}
	if a.popupView.Result().Kind == tui.ResultCorrect {
		a.guessView.Clear()
	}
	a.state = StatePlaying
	return a, a.guessView.Focus()
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.model.End()
	return a, tea.Quit
}

func (a *App) refreshStatus() {
	a.guessView.SetStatus(a.model.StatusLine())
	if err := a.model.LogErr(); err != nil {
		a.guessView.SetWarning(a.model.Printer.Sprintf(locale.KeyLogDisabled, err))
	}
}

// View renders the current application state.
func (a *App) View() string {
	var content string
	switch a.state {
	case StatePopup:
		content = a.popupView.View()
	default:
		content = a.guessView.View()
	}

	var footer string
	if a.ctrlCPending {
		footer = tui.WarningStyle.Render(a.model.Printer.Sprintf(locale.KeyCtrlCAgain))
	} else {
		footer = a.help.View(tui.DefaultKeyMap)
	}

	body := views.Center(content, a.width, max(a.height-1, 1))
	return strings.Join([]string{body, tui.StatusBarStyle.Render(footer)}, "\n")
}
