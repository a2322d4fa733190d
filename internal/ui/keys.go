package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding the screens react to.
type KeyMap struct {
	Down      key.Binding
	Up        key.Binding
	HalfDown  key.Binding
	HalfUp    key.Binding
	Enter     key.Binding
	Back      key.Binding
	Cancel    key.Binding
	Quit      key.Binding
	Refresh   key.Binding
	LoadMore  key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		HalfDown:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		HalfUp:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:      key.NewBinding(key.WithKeys("h", "left", "esc"), key.WithHelp("h/esc", "back")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		LoadMore:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "load more")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
