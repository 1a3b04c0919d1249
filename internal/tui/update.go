package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m ChooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Chosen = Action{Op: OpExit}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.Cursor < len(m.Actions)-1 {
				m.Cursor++
			}
		case key.Matches(msg, m.keys.Choose):
			if len(m.Actions) == 0 {
				return m, tea.Quit
			}
			m.Chosen = m.Actions[m.Cursor]
			m.Done = true
			return m, tea.Quit
		}
	}

	return m, nil
}
