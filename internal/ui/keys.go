package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	CycleLayout key.Binding

	// Inspection
	RXDetails key.Binding
	WXDetails key.Binding
	Dismiss   key.Binding

	// Views
	FullView key.Binding
	Logs     key.Binding

	// Log overlay scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		CycleLayout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Cycle layout"),
		),

		RXDetails: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Receiver details"),
		),
		WXDetails: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Weather details"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter", "x"),
			key.WithHelp("esc", "Close overlay"),
		),

		FullView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Spectrum full view (alpha)"),
		),
		Logs: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Dashboard log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d", " "),
			key.WithHelp("pgdown", "Page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RXDetails, k.WXDetails, k.CycleLayout, k.CycleTheme, k.Logs, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RXDetails, k.WXDetails, k.Dismiss},
		{k.FullView, k.CycleLayout, k.CycleTheme, k.Logs},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Help, k.Quit},
	}
}
