package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathman/internal/model"
)

func press(t *testing.T, m ChooserModel, msg tea.KeyMsg) (ChooserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(ChooserModel)
	require.True(t, ok)
	return cm, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
)

func TestChooserMovesAndChooses(t *testing.T) {
	m := NewChooser(`C:\picked`)

	m, _ = press(t, m, keyUp)
	assert.Equal(t, 0, m.Cursor, "cursor stays at the top")

	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, keyJ)
	assert.Equal(t, 2, m.Cursor)

	m, cmd := press(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Done)
	assert.Equal(t, OpAdd, m.Chosen.Op)
	assert.Equal(t, model.BothScopes, m.Chosen.Scopes)
	assert.Equal(t, "add all", m.Chosen.Label)
}

func TestChooserStopsAtBottom(t *testing.T) {
	m := NewChooser(`C:\picked`)
	for i := 0; i < len(Actions)+3; i++ {
		m, _ = press(t, m, keyDown)
	}
	assert.Equal(t, len(Actions)-1, m.Cursor)

	m, _ = press(t, m, keyEnter)
	assert.Equal(t, OpExit, m.Chosen.Op)
}

func TestChooserQuit(t *testing.T) {
	m := NewChooser(`C:\picked`)
	m, cmd := press(t, m, keyQ)
	require.NotNil(t, cmd)
	assert.False(t, m.Done)
	assert.Equal(t, OpExit, m.Chosen.Op)
}

func TestChooserView(t *testing.T) {
	m := NewChooser(`C:\picked`)
	v := m.View()
	assert.Contains(t, v, `C:\picked`)
	for _, a := range Actions {
		assert.Contains(t, v, a.Label)
	}

	m, _ = press(t, m, keyEnter)
	assert.Empty(t, m.View())
}

func TestActionsCoverEveryScopeChoice(t *testing.T) {
	var adds, removes []model.ScopeSet
	for _, a := range Actions {
		switch a.Op {
		case OpAdd:
			adds = append(adds, a.Scopes)
		case OpRemove:
			removes = append(removes, a.Scopes)
		}
	}
	want := []model.ScopeSet{model.SystemScope, model.UserScope, model.BothScopes}
	assert.Equal(t, want, adds)
	assert.Equal(t, want, removes)
}
