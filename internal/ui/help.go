package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	groups := m.keys.FullHelp()
	sections := make([]helpSection, 0, len(groups))
	for i, bindings := range groups {
		sections = append(sections, helpSection{title: helpTitles[i], bindings: bindings})
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(14)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Themes: " + strings.Join(ThemeNames(), " · ")))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Click a block for details."))

	content := b.String()
	box := centered(m.width, m.height, 44, lipgloss.Height(content)+4)
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(max(box.W-2, 0)).
		MaxHeight(box.H).
		Render(content)
	return placeAt(m.width, m.height, box, modal)
}

// helpTitles name the FullHelp groups in order.
var helpTitles = []string{"Inspect", "View", "Log overlay", "General"}

type helpSection struct {
	title    string
	bindings []key.Binding
}
