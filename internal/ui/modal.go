package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/signet-rx/internal/view"
)

// overlay identifies the modal drawn over the dashboard, if any.
type overlay int

const (
	overlayNone overlay = iota
	overlayDetail
	overlayHelp
	overlayLogs
)

const (
	detailMinWidth = 36
	detailMaxWidth = 64
)

// centered returns a w×h box centered on a width×height screen, shrunk to
// fit when the screen is smaller.
func centered(width, height, w, h int) rect {
	w = min(w, width)
	h = min(h, height)
	return rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}

// placeAt draws content at box on an otherwise blank width×height screen.
func placeAt(width, height int, box rect, content string) string {
	rows := strings.Split(content, "\n")
	lines := make([]string, height)
	pad := strings.Repeat(" ", max(box.X, 0))
	for y := range lines {
		i := y - box.Y
		if i >= 0 && i < len(rows) && i < box.H {
			lines[y] = pad + rows[i]
		}
	}
	return strings.Join(lines, "\n")
}

// detailBox sizes the detail overlay for d.
func (m Model) detailBox(d view.Detail) rect {
	longest := lipgloss.Width(d.Title)
	for _, line := range d.Lines {
		longest = max(longest, lipgloss.Width(line))
	}
	w := min(max(longest+6, detailMinWidth), detailMaxWidth)
	h := len(d.Lines) + 6
	return centered(m.width, m.height, w, h)
}

// renderDetail renders the read-only inspection overlay. It always reflects
// the latest frame's state.
func (m Model) renderDetail() string {
	d := view.Details(m.detailBlock, m.frame.state, m.layout.ExtendedDetails())
	box := m.detailBox(d)
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(d.Title))
	b.WriteString("\n\n")
	for _, line := range d.Lines {
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc/enter/x or click outside to close"))

	content := m.theme.Panel(true).
		Padding(0, 2).
		Width(max(box.W-2, 0)).
		Height(max(box.H-2, 0)).
		MaxWidth(box.W).
		MaxHeight(box.H).
		Render(clipLines(b.String(), max(box.W-6, 1)))
	return placeAt(m.width, m.height, box, content)
}
