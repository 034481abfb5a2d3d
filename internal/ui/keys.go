package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the grid's direct key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	First    key.Binding
	Last     key.Binding
	Add      key.Binding
	Remove   key.Binding
	Wider    key.Binding
	Narrower key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns arrow and vi-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first tile"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last tile"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add tile"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove tile"),
		),
		Wider: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more columns"),
		),
		Narrower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer columns"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp returns bindings grouped by columns for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.First, k.Last, k.Add, k.Remove},
		{k.Wider, k.Narrower, k.Help, k.Quit},
	}
}
