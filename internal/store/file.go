package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"pathman/internal/model"
)

// FileBackend stores both scopes in a YAML document:
//
//	user: C:\A;C:\B
//	system: C:\Windows;%PATH%
//
// It stands in for the registry off Windows and in scripted setups.
// A missing file reads as two empty values.
type FileBackend struct {
	fs   afero.Fs
	path string
}

type fileDoc struct {
	User   string `yaml:"user"`
	System string `yaml:"system"`
}

func NewFileBackend(fsys afero.Fs, path string) *FileBackend {
	return &FileBackend{fs: fsys, path: path}
}

func (f *FileBackend) Get(scope model.Scope) (string, error) {
	doc, err := f.load()
	if err != nil {
		return "", err
	}
	if scope == model.System {
		return doc.System, nil
	}
	return doc.User, nil
}

func (f *FileBackend) Set(scope model.Scope, value string) error {
	doc, err := f.load()
	if err != nil {
		return err
	}
	if scope == model.System {
		doc.System = value
	} else {
		doc.User = value
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	if err := f.fs.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(f.fs, f.path, data, 0644)
}

func (f *FileBackend) load() (fileDoc, error) {
	var doc fileDoc
	data, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return doc, err
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}
