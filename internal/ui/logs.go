package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/signet-rx/internal/logtail"
)

// logTailLimit is how many lines of the dashboard log the overlay loads.
const logTailLimit = 400

// logState holds the log overlay content.
type logState struct {
	path  string
	lines []string
	err   error
}

type logLoadedMsg struct {
	lines []string
	err   error
}

// loadLogCmd reads the tail of the dashboard log off the update loop.
func loadLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLoadedMsg{}
		}
		lines, err := logtail.Read(path, logTailLimit)
		return logLoadedMsg{lines: lines, err: err}
	}
}

// logBox is the log overlay frame.
func (m Model) logBox() rect {
	return centered(m.width, m.height, m.width-4, m.height-2)
}

// resizeLogViewport fits the viewport inside the log overlay frame:
// border plus a title line and a hint line.
func (m *Model) resizeLogViewport() {
	box := m.logBox()
	iw, ih := box.inner()
	m.logViewport.Width = max(iw, 0)
	m.logViewport.Height = max(ih-2, 0)
}

func (m *Model) handleLogLoaded(msg logLoadedMsg) {
	m.logs.lines = msg.lines
	m.logs.err = msg.err
	m.resizeLogViewport()
	m.logViewport.SetContent(m.logContent())
	m.logViewport.GotoBottom()
}

func (m Model) logContent() string {
	styles := m.theme.Styles()
	switch {
	case m.logs.err != nil:
		return styles.DangerText.Render(m.logs.err.Error())
	case m.logs.path == "":
		return styles.MutedText.Render("Logging to a file is disabled.")
	case len(m.logs.lines) == 0:
		return styles.MutedText.Render("No log output yet.")
	}
	return strings.Join(logtail.HighlightLines(m.logs.lines, m.theme.LogStyles()), "\n")
}

// handleLogsKey scrolls the log overlay.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	}
	return m, nil
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	box := m.logBox()
	iw, _ := box.inner()

	title := styles.AccentText.Bold(true).Render("Dashboard log") + "  " +
		styles.FaintText.Render(truncateMiddle(m.logs.path, max(iw-16, 8)))
	hint := styles.FaintText.Render("j/k scroll  G bottom  g/esc close")

	body := title + "\n" + m.logViewport.View() + "\n" + hint
	return placeAt(m.width, m.height, box, panel(m.theme, box, "", body, true))
}
