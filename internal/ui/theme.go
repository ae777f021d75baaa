package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/signet-rx/internal/logtail"
	"github.com/five82/signet-rx/internal/spectrum"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Panels
	Border     string
	BorderHot  string // Focused or alerting panels

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// LED stack colors
	Grid  string
	Unlit string
	Low   string
	Mid   string
	High  string
	Peak  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Readout: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Low)).
			Bold(true),

		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Logo    lipgloss.Style
	Readout lipgloss.Style
	Banner  lipgloss.Style
}

// Panel returns the bordered box style for a panel; hot panels use the
// highlight border.
func (t Theme) Panel(hot bool) lipgloss.Style {
	border := t.Border
	if hot {
		border = t.BorderHot
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border))
}

// Palette converts the theme's LED colors for the spectrum renderer.
func (t Theme) Palette() spectrum.Palette {
	p := spectrum.DefaultPalette()
	p = p.WithBackground(t.Background)
	p.Grid = hexOr(t.Grid, p.Grid)
	p.Unlit = hexOr(t.Unlit, p.Unlit)
	p.Low = hexOr(t.Low, p.Low)
	p.Mid = hexOr(t.Mid, p.Mid)
	p.High = hexOr(t.High, p.High)
	p.Peak = hexOr(t.Peak, p.Peak)
	return p
}

func hexOr(hex string, fallback colorful.Color) colorful.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	return fallback
}

// LogStyles are the log overlay highlight styles.
func (t Theme) LogStyles() logtail.Styles {
	return logtail.Styles{
		Time:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Levels: map[string]lipgloss.Style{
			"debug":   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)).Bold(true),
			"info":    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
			"warning": lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)).Bold(true),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
			"fatal":   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		},
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Phosphor": phosphorTheme(),
	"Amber":    amberTheme(),
	"Ice":      iceTheme(),
}

var themeOrder = []string{"Phosphor", "Amber", "Ice"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return phosphorTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func phosphorTheme() Theme {
	// Retro hi-fi LED faceplate
	return Theme{
		Name: "Phosphor",

		Background: "#0b0f14",
		Surface:    "#111821",
		Border:     "#1b2430",
		BorderHot:  "#5bff89",

		Text:    "#d7e3dc",
		Muted:   "#7d8f86",
		Faint:   "#3d4b44",
		Accent:  "#32d4ff",
		Success: "#5bff89",
		Warning: "#ffc857",
		Danger:  "#ff5c5c",
		Info:    "#32d4ff",

		Grid:  "#1b2430",
		Unlit: "#1a2a1f",
		Low:   "#5bff89",
		Mid:   "#32d4ff",
		High:  "#ffc857",
		Peak:  "#ffc857",
	}
}

func amberTheme() Theme {
	// Monochrome amber VFD
	return Theme{
		Name: "Amber",

		Background: "#120c05",
		Surface:    "#1c1308",
		Border:     "#3a2a12",
		BorderHot:  "#ffb000",

		Text:    "#ffd58a",
		Muted:   "#a27b3c",
		Faint:   "#5a4220",
		Accent:  "#ffb000",
		Success: "#ffc94d",
		Warning: "#ff8c00",
		Danger:  "#ff4d2e",
		Info:    "#ffe0a3",

		Grid:  "#2a1e0c",
		Unlit: "#2b1d08",
		Low:   "#ffb000",
		Mid:   "#ffc94d",
		High:  "#ff8c00",
		Peak:  "#ff4d2e",
	}
}

func iceTheme() Theme {
	// Cold blue instrument panel
	return Theme{
		Name: "Ice",

		Background: "#020617",
		Surface:    "#0f172a",
		Border:     "#334155",
		BorderHot:  "#38bdf8",

		Text:    "#f1f5f9",
		Muted:   "#94a3b8",
		Faint:   "#64748b",
		Accent:  "#38bdf8",
		Success: "#22c55e",
		Warning: "#f59e0b",
		Danger:  "#ef4444",
		Info:    "#06b6d4",

		Grid:  "#1e293b",
		Unlit: "#0c1a2b",
		Low:   "#38bdf8",
		Mid:   "#a78bfa",
		High:  "#f472b6",
		Peak:  "#f8fafc",
	}
}
