// Package picker asks the operator for a directory through the native folder dialog.
package picker

import (
	"errors"

	"github.com/sqweek/dialog"

	perrors "pathman/internal/errors"
)

// DirectoryPicker returns the chosen absolute directory, or ok=false when
// the operator cancelled.
type DirectoryPicker interface {
	PickDirectory(initialDir string) (dir string, ok bool, err error)
}

// Dialog shows the platform folder browser. It blocks until the dialog closes.
type Dialog struct {
	Title string
}

func NewDialog() *Dialog {
	return &Dialog{Title: "Please select a directory"}
}

func (d *Dialog) PickDirectory(initialDir string) (string, bool, error) {
	dir, err := dialog.Directory().Title(d.Title).SetStartDir(initialDir).Browse()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, perrors.Wrap(err, perrors.ErrPickerUnavailable, "open folder dialog")
	}
	if dir == "" {
		return "", false, nil
	}
	return dir, true, nil
}
