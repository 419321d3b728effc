package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Assistant key.Binding
	Contacts  key.Binding
	Birthdays key.Binding

	// Actions
	Select key.Binding
	New    key.Binding
	Delete key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Assistant: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "assistant")),
	Contacts:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contacts")),
	Birthdays: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "birthdays")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
