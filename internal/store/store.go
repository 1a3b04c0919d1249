// Package store persists the user and system PATH lists.
//
// Each scope is one semicolon-delimited string held by a Backend. The Store
// splits and joins that string and applies idempotent mutations with one
// read-modify-write cycle per call. Nothing is cached between calls.
package store

import (
	"strings"

	"github.com/rs/zerolog"

	perrors "pathman/internal/errors"
	"pathman/internal/logging"
	"pathman/internal/model"
)

// Backend is the raw key-value storage for a scope's PATH string.
type Backend interface {
	Get(scope model.Scope) (string, error)
	Set(scope model.Scope, value string) error
}

// Store reads and mutates ScopeLists through a Backend.
type Store struct {
	backend Backend
	log     zerolog.Logger
}

func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		log:     logging.GetLogger("store"),
	}
}

// Split turns a persisted value into a ScopeList. An empty value is an
// empty list; every other value keeps its empty segments verbatim.
func Split(raw string) model.ScopeList {
	if raw == "" {
		return model.ScopeList{}
	}
	return model.ScopeList(strings.Split(raw, model.Separator))
}

// Join is the inverse of Split.
func Join(list model.ScopeList) string {
	return strings.Join(list, model.Separator)
}

// Read fetches the scope's list. The system scope drops %PATH% entries.
func (s *Store) Read(scope model.Scope) (model.ScopeList, error) {
	raw, err := s.backend.Get(scope)
	if err != nil {
		s.log.Error().Err(err).Stringer("scope", scope).Msg("read failed")
		return nil, storageErr(err, scope, "read")
	}
	list := Split(raw)
	if scope == model.System {
		list, _ = list.Without(model.SelfReference)
	}
	s.log.Debug().Stringer("scope", scope).Int("entries", len(list)).Msg("read")
	return list, nil
}

// Write persists the full list for the scope.
func (s *Store) Write(scope model.Scope, list model.ScopeList) error {
	if err := s.backend.Set(scope, Join(list)); err != nil {
		s.log.Error().Err(err).Stringer("scope", scope).Msg("write failed")
		return storageErr(err, scope, "write")
	}
	s.log.Debug().Stringer("scope", scope).Int("entries", len(list)).Msg("write")
	return nil
}

// Add appends entry unless an identical entry exists. It reports whether
// the list changed.
func (s *Store) Add(scope model.Scope, entry string) (bool, error) {
	if err := validateEntry(entry); err != nil {
		return false, err
	}
	list, err := s.Read(scope)
	if err != nil {
		return false, err
	}
	if list.Contains(entry) {
		return false, nil
	}
	if err := s.Write(scope, append(list, entry)); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes every exact match of entry and returns how many were
// dropped. An absent entry is not an error and causes no write.
func (s *Store) Remove(scope model.Scope, entry string) (int, error) {
	list, err := s.Read(scope)
	if err != nil {
		return 0, err
	}
	kept, removed := list.Without(entry)
	if removed == 0 {
		return 0, nil
	}
	if err := s.Write(scope, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// Has reports whether the scope holds entry.
func (s *Store) Has(scope model.Scope, entry string) (bool, error) {
	list, err := s.Read(scope)
	if err != nil {
		return false, err
	}
	return list.Contains(entry), nil
}

// Update runs fn over the scope's list inside a single read-modify-write.
// The list is written only when fn returns different content.
func (s *Store) Update(scope model.Scope, fn func(model.ScopeList) model.ScopeList) error {
	list, err := s.Read(scope)
	if err != nil {
		return err
	}
	before := Join(list)
	next := fn(append(model.ScopeList(nil), list...))
	if Join(next) == before {
		return nil
	}
	return s.Write(scope, next)
}

func validateEntry(entry string) error {
	if strings.Contains(entry, model.Separator) {
		return perrors.Newf(perrors.ErrInvalidInput, "entry %q contains %q", entry, model.Separator)
	}
	return nil
}

func storageErr(err error, scope model.Scope, op string) error {
	if perrors.IsErrorCode(err, perrors.ErrStorageUnavailable) {
		return err
	}
	return perrors.Wrapf(err, perrors.ErrStorageUnavailable, "%s %s PATH", op, scope).
		WithDetail("scope", scope.String())
}
