package resolve

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	perrors "pathman/internal/errors"
	"pathman/internal/logging"
)

// LookupFunc reads a process environment variable.
type LookupFunc func(name string) (string, bool)

// Resolver decides whether PATH entries point at something on disk.
type Resolver struct {
	fs     afero.Fs
	lookup LookupFunc
	log    zerolog.Logger
}

// New returns a Resolver. A nil lookup falls back to os.LookupEnv.
func New(fsys afero.Fs, lookup LookupFunc) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Resolver{
		fs:     fsys,
		lookup: lookup,
		log:    logging.GetLogger("resolve"),
	}
}

// Exists reports whether entry names an existing file or directory as written.
func (r *Resolver) Exists(entry string) bool {
	if entry == "" {
		return false
	}
	_, err := r.fs.Stat(entry)
	return err == nil
}

// Expand substitutes a leading %NAME% reference. The name is taken between
// the first and the last '%' of the entry, and the rest of the entry after
// that last '%' is appended to the variable's value. Entries that do not
// start with '%' and references to PATH are returned unchanged.
func (r *Resolver) Expand(entry string) (string, error) {
	if !strings.HasPrefix(entry, "%") {
		return entry, nil
	}
	end := strings.LastIndex(entry, "%")
	name := ""
	if end > 0 {
		name = strings.Trim(entry[1:end], "%")
	}
	if name == "PATH" {
		return entry, nil
	}
	value, ok := r.lookup(name)
	if !ok {
		return "", perrors.Newf(perrors.ErrUndefinedVariable, "%%%s%% is not set", name).
			WithDetail("entry", entry)
	}
	expanded := value + entry[end+1:]
	r.log.Trace().Str("variable", name).Str("entry", entry).Str("expanded", expanded).Msg("expanded")
	return expanded, nil
}

// ResolvedExists is true when the entry exists as written or once its
// leading reference is expanded. An undefined variable counts as missing.
func (r *Resolver) ResolvedExists(entry string) bool {
	if r.Exists(entry) {
		return true
	}
	expanded, err := r.Expand(entry)
	if err != nil {
		r.log.Debug().Err(err).Str("entry", entry).Msg("expansion failed")
		return false
	}
	if expanded == entry {
		return false
	}
	return r.Exists(expanded)
}
