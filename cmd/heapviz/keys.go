package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts. Numeric input keys are translated into controller
// events; everything else is handled by the program itself.
type KeyMap struct {
	// Numeric input
	Digit     key.Binding
	Backspace key.Binding
	Confirm   key.Binding
	Cancel    key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "enter bytes"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", " "),
			key.WithHelp("backspace", "delete digit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/close menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings listed in the help line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.Backspace, k.Confirm, k.Cancel, k.Quit}
}
