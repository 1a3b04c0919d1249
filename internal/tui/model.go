package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pathman/internal/model"
)

// Op is what to do with the picked directory.
type Op int

const (
	OpExit Op = iota
	OpAdd
	OpRemove
)

// Action is one choice offered after a directory was picked.
type Action struct {
	Label  string
	Op     Op
	Scopes model.ScopeSet
}

// Actions lists the follow-up choices in display order.
var Actions = []Action{
	{"add system path", OpAdd, model.SystemScope},
	{"add user path", OpAdd, model.UserScope},
	{"add all", OpAdd, model.BothScopes},
	{"remove system path", OpRemove, model.SystemScope},
	{"remove user path", OpRemove, model.UserScope},
	{"remove all", OpRemove, model.BothScopes},
	{"exit", OpExit, 0},
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "choose"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "exit"),
	),
}

// ChooserModel holds the chooser state.
type ChooserModel struct {
	Dir     string
	Actions []Action

	Cursor int
	Chosen Action
	Done   bool

	keys keyMap
	help help.Model
}

// NewChooser returns a chooser for dir with the cursor on the first action.
func NewChooser(dir string) ChooserModel {
	return ChooserModel{
		Dir:     dir,
		Actions: Actions,
		keys:    keys,
		help:    help.New(),
	}
}

func (m ChooserModel) Init() tea.Cmd {
	return nil
}

// Choose runs the chooser until an action is picked. Quitting yields OpExit.
func Choose(dir string, opts ...tea.ProgramOption) (Action, error) {
	p := tea.NewProgram(NewChooser(dir), opts...)
	final, err := p.Run()
	if err != nil {
		return Action{Op: OpExit}, err
	}
	m, ok := final.(ChooserModel)
	if !ok || !m.Done {
		return Action{Op: OpExit}, nil
	}
	return m.Chosen, nil
}
