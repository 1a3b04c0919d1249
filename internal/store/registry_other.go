//go:build !windows

package store

import (
	perrors "pathman/internal/errors"
	"pathman/internal/model"
)

// RegistryBackend is unavailable off Windows; use a file store instead
// (--store-file or store.file in the config).
type RegistryBackend struct{}

func NewRegistryBackend() *RegistryBackend {
	return &RegistryBackend{}
}

func (RegistryBackend) Get(scope model.Scope) (string, error) {
	return "", unavailable(scope)
}

func (RegistryBackend) Set(scope model.Scope, _ string) error {
	return unavailable(scope)
}

func unavailable(scope model.Scope) error {
	return perrors.New(perrors.ErrStorageUnavailable, "the Windows registry is not available on this platform").
		WithDetail("scope", scope.String())
}
