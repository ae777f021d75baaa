package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/signet-rx/internal/anim"
)

// Meter glyphs.
const (
	meterLit  = '█'
	meterOff  = '░'
	meterPeak = '┃'
)

// s9Frac is where S9 sits on the meter travel.
var s9Frac = anim.SMeterToFrac(9, 0)

// meterMarks are the scale labels drawn under a meter.
var meterMarks = []struct {
	label string
	frac  float64
}{
	{"1", anim.SMeterToFrac(1, 0)},
	{"3", anim.SMeterToFrac(3, 0)},
	{"5", anim.SMeterToFrac(5, 0)},
	{"7", anim.SMeterToFrac(7, 0)},
	{"9", anim.SMeterToFrac(9, 0)},
	{"+10", anim.SMeterToFrac(9, 10)},
	{"+20", anim.SMeterToFrac(9, 20)},
	{"+30", anim.SMeterToFrac(9, 30)},
}

// meterGlyphs lays out a meter of width cells: lit cells up to level, then
// unlit cells, with the peak-hold marker drawn over either.
func meterGlyphs(level, peak float64, width int) []rune {
	if width <= 0 {
		return nil
	}
	lit := int(level * float64(width))
	mark := min(width-1, int(peak*float64(width)))
	out := make([]rune, width)
	for i := range out {
		switch {
		case i == mark && peak > 0:
			out[i] = meterPeak
		case i < lit:
			out[i] = meterLit
		default:
			out[i] = meterOff
		}
	}
	return out
}

// meterBar renders a meter with the theme colors. Lit cells past S9 use the
// danger color.
func meterBar(m anim.Meter, width int, t Theme) string {
	glyphs := meterGlyphs(m.Level, m.Peak, width)
	over := int(s9Frac * float64(width))

	low := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	hot := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	peak := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)).Bold(true)

	var b strings.Builder
	for i, g := range glyphs {
		switch {
		case g == meterPeak:
			b.WriteString(peak.Render(string(g)))
		case g == meterLit && i >= over:
			b.WriteString(hot.Render(string(g)))
		case g == meterLit:
			b.WriteString(low.Render(string(g)))
		default:
			b.WriteString(off.Render(string(g)))
		}
	}
	return b.String()
}

// meterScale places the scale labels under a meter of width cells, dropping
// any label that would collide with its left neighbor.
func meterScale(width int) string {
	if width <= 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", width))
	free := 0
	for _, mark := range meterMarks {
		n := len(mark.label)
		start := int(mark.frac * float64(width-1))
		if start+n > width {
			start = width - n
		}
		if start < free || start < 0 {
			continue
		}
		copy(line[start:], []rune(mark.label))
		free = start + n + 1
	}
	return strings.TrimRight(string(line), " ")
}
