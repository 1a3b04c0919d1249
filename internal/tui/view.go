package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathHighlightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
				Bold(true)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("240")) // Grey

	boxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m ChooserModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("pathman browse"))
	b.WriteString("\n\n")
	b.WriteString(pathHighlightStyle.Render(m.Dir))
	b.WriteString("\n\nchoose an action:\n\n")

	for i, a := range m.Actions {
		if i == m.Cursor {
			b.WriteString(selectedItemStyle.Render("> " + a.Label))
		} else {
			b.WriteString(unselectedItemStyle.Render(a.Label))
		}
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimSuffix(b.String(), "\n")) + "\n" + m.help.View(m.keys) + "\n"
}
