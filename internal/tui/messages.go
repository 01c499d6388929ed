// Package tui implements the terminal user interface using Bubble Tea.
package tui

// SubmitMsg carries the raw text the user submitted as a guess.
type SubmitMsg struct {
	Text string
}

// DismissMsg closes the result popup.
type DismissMsg struct{}

// QuitMsg asks the app to end the game.
type QuitMsg struct{}

// CtrlCResetMsg clears the pending Ctrl+C confirmation.
type CtrlCResetMsg struct{}
