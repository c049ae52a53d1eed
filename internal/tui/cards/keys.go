package cards

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	All        key.Binding
	Active     key.Binding
	Inactive   key.Binding
	Toggle     key.Binding
	Remove     key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev filter"),
		),
		All: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		Active: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "active"),
		),
		Inactive: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "inactive"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Remove, k.NextFilter, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Remove},
		{k.NextFilter, k.PrevFilter, k.All, k.Active, k.Inactive},
		{k.Theme, k.Help, k.Quit},
	}
}
