//go:build windows

package store

import (
	"errors"

	"golang.org/x/sys/windows/registry"

	"pathman/internal/model"
)

const pathValueName = "Path"

type registryLocation struct {
	root registry.Key
	path string
}

var registryLocations = map[model.Scope]registryLocation{
	model.User:   {registry.CURRENT_USER, `Environment`},
	model.System: {registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`},
}

// RegistryBackend reads and writes the Path value under HKCU\Environment
// (user) and HKLM\...\Session Manager\Environment (system). Writing the
// system scope needs an elevated process.
type RegistryBackend struct{}

func NewRegistryBackend() *RegistryBackend {
	return &RegistryBackend{}
}

func (RegistryBackend) Get(scope model.Scope) (string, error) {
	loc := registryLocations[scope]
	k, err := registry.OpenKey(loc.root, loc.path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(pathValueName)
	if err != nil {
		return "", err
	}
	return v, nil
}

// Set keeps a REG_SZ value as REG_SZ; anything else is written as REG_EXPAND_SZ
// so %NAME% references keep expanding.
func (RegistryBackend) Set(scope model.Scope, value string) error {
	loc := registryLocations[scope]
	k, err := registry.OpenKey(loc.root, loc.path, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	_, valtype, err := k.GetStringValue(pathValueName)
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return err
	}
	if valtype == registry.SZ {
		return k.SetStringValue(pathValueName, value)
	}
	return k.SetExpandStringValue(pathValueName, value)
}
