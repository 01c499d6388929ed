// Package tui implements the terminal user interface using Bubble Tea.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	Submit  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
	CtrlC   key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys(KeyEnter),
		key.WithHelp("enter", "submit guess"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys(KeyEnter, KeyEsc, KeySpace),
		key.WithHelp("enter", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys(KeyEsc),
		key.WithHelp("esc", "quit"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys(KeyCtrlC),
		key.WithHelp("ctrl+c", "exit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Dismiss}, {k.Quit, k.CtrlC}}
}
