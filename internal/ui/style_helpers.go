package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BgStyle renders text over one background color. Lip Gloss resets styling
// between segments, so every segment and separator carries the background
// explicitly.
type BgStyle struct {
	bg    lipgloss.Color
	space string // cached styled space
}

// NewBgStyle creates a background style helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render renders text with style over the background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Background(b.bg).Render(text)
}

// Space returns a single styled space.
func (b BgStyle) Space() string {
	return b.space
}

// Join joins parts with sep rendered over the background.
func (b BgStyle) Join(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// led renders an indicator light with its label.
func led(label string, on bool, t Theme) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ternary(on, t.Success, t.Faint))).Bold(on)
	return style.Render(ternary(on, "●", "○") + " " + label)
}

// clipLines truncates every line of content to width display cells.
func clipLines(content string, width int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

// panel draws a rounded box of exactly r's size around body.
func panel(t Theme, r rect, title, body string, hot bool) string {
	if r.empty() {
		return ""
	}
	iw, ih := r.inner()
	content := body
	if title != "" {
		heading := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true).Render(title)
		if body == "" {
			content = heading
		} else {
			content = heading + "\n" + body
		}
	}
	content = fitLines(clipLines(content, iw), ih)
	return t.Panel(hot).
		Width(iw).
		Height(ih).
		MaxWidth(r.W).
		MaxHeight(r.H).
		Render(content)
}
