package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the golf key bindings. It implements help.KeyMap.
type KeyMap struct {
	Swing      key.Binding
	AimLeft    key.Binding
	AimRight   key.Binding
	AimUp      key.Binding
	AimDown    key.Binding
	Centre     key.Binding
	ButtonB    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default golf key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Swing: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "charge/swing"),
		),
		AimLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "aim left"),
		),
		AimRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "aim right"),
		),
		AimUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "aim up"),
		),
		AimDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "aim down"),
		),
		Centre: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "centre stick"),
		),
		ButtonB: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "B button"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Swing, k.AimLeft, k.AimRight, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Swing, k.ButtonB},
		{k.AimLeft, k.AimRight, k.AimUp, k.AimDown, k.Centre},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// MenuKeyMap holds the course picker bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the default course picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
