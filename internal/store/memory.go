package store

import (
	"fmt"

	"pathman/internal/model"
)

// MemoryBackend keeps both scopes in memory. Gets and Sets count storage
// round trips; GetErr and SetErr inject failures per scope.
type MemoryBackend struct {
	Values map[model.Scope]string
	GetErr map[model.Scope]error
	SetErr map[model.Scope]error

	Gets int
	Sets int
}

// NewMemoryBackend seeds the user and system values.
func NewMemoryBackend(user, system string) *MemoryBackend {
	return &MemoryBackend{
		Values: map[model.Scope]string{
			model.User:   user,
			model.System: system,
		},
		GetErr: map[model.Scope]error{},
		SetErr: map[model.Scope]error{},
	}
}

func (m *MemoryBackend) Get(scope model.Scope) (string, error) {
	m.Gets++
	if err := m.GetErr[scope]; err != nil {
		return "", err
	}
	v, ok := m.Values[scope]
	if !ok {
		return "", fmt.Errorf("no Path value for %s scope", scope)
	}
	return v, nil
}

func (m *MemoryBackend) Set(scope model.Scope, value string) error {
	m.Sets++
	if err := m.SetErr[scope]; err != nil {
		return err
	}
	m.Values[scope] = value
	return nil
}
