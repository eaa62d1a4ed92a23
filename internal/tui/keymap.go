package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the list screen.
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	TabAll  key.Binding
	TabIn   key.Binding
	TabOut  key.Binding

	// Actions
	CashIn  key.Binding
	CashOut key.Binding
	Edit    key.Binding
	Dismiss key.Binding

	// View modes
	ToggleStats key.Binding
	ToggleHelp  key.Binding

	// Application
	Quit        key.Binding
	ForceQuit   key.Binding
	Refresh     key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous tab"),
		),
		TabAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		TabIn: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "income"),
		),
		TabOut: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "expense"),
		),

		CashIn: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "cash in"),
		),
		CashOut: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "cash out"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "edit entry"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss notice"),
		),

		ToggleStats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle summary"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "refresh"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CashIn, k.CashOut, k.NextTab, k.Edit, k.ToggleHelp, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.TabAll, k.TabIn, k.TabOut},
		{k.CashIn, k.CashOut, k.Edit, k.Dismiss},
		{k.ToggleStats, k.Refresh, k.ClearScreen},
		{k.ToggleHelp, k.Quit, k.ForceQuit},
	}
}
