package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/signet-rx/internal/state"
)

// staleAfter is how long a live stream may go quiet before the header shows
// the age of the last delivery.
const staleAfter = 5 * time.Second

// renderHeader renders the status bar: logo, receiver mode, link status and
// the clock.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < compactWidth
	d := m.frame.display

	parts := []string{
		bg.Render("SIGNET-RX", styles.Logo),
		bg.Render(strings.ToUpper(m.layout.Name()), styles.FaintText),
		bg.Render(d.Mode, styles.AccentText),
		bg.Render(strings.ToUpper(m.frame.mode.String()), styles.InfoText),
	}
	if !compact {
		parts = append(parts,
			bg.Render("OUT", styles.MutedText)+bg.Space()+bg.Render(d.Output, styles.Text),
			bg.Render("VOL", styles.MutedText)+bg.Space()+bg.Render(d.Volume, styles.Text),
		)
	}
	parts = append(parts, m.renderLink(bg, styles))
	left := bg.Join(parts, "  ")

	clock := m.frame.now.Format("15:04:05")
	if !compact {
		clock = strings.ToUpper(m.frame.now.Format("Mon Jan 2")) + "  " + clock
	}
	right := bg.Render(clock, styles.Text)

	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line += bg.Render(strings.Repeat(" ", gap), styles.Text) + right
	}
	return styles.Header.Width(m.width).MaxWidth(m.width).Render(line)
}

// renderLink shows the push channel status.
func (m Model) renderLink(bg BgStyle, styles Styles) string {
	l := m.frame.link
	var out string
	switch classifyLink(l) {
	case linkLive:
		out = bg.Render("● LIVE", styles.SuccessText)
	case linkReconnecting:
		out = bg.Render("● RECONNECTING", styles.WarningText.Bold(true))
	default:
		out = bg.Render("○ WAITING", styles.MutedText)
	}
	if l.Connected && !l.LastDelivery.IsZero() && l.IsStale(m.frame.now, staleAfter) {
		age := m.frame.now.Sub(l.LastDelivery).Round(time.Second)
		out += bg.Space() + bg.Render(fmt.Sprintf("quiet %s", age), styles.MutedText)
	}
	if l.Rejected > 0 {
		out += bg.Space() + bg.Render(fmt.Sprintf("dropped %d", l.Rejected), styles.WarningText)
	}
	return out
}

type linkState int

const (
	linkWaiting linkState = iota
	linkLive
	linkReconnecting
)

// classifyLink is live while subscribed, reconnecting after a drop, and
// waiting before the stream has ever been up.
func classifyLink(l state.Link) linkState {
	switch {
	case l.Connected:
		return linkLive
	case l.Deliveries > 0 || l.Reconnects > 0:
		return linkReconnecting
	default:
		return linkWaiting
	}
}
