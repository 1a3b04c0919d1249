package reconcile

import (
	"errors"
	"strings"

	perrors "pathman/internal/errors"
	"pathman/internal/model"
)

// mutation applies one entry to an in-memory list.
type mutation func(list model.ScopeList, entry string) (model.ScopeList, model.Status, error)

func addTo(list model.ScopeList, entry string) (model.ScopeList, model.Status, error) {
	if strings.Contains(entry, model.Separator) {
		return list, model.StatusFailed, perrors.Newf(perrors.ErrInvalidInput, "entry %q contains %q", entry, model.Separator)
	}
	if list.Contains(entry) {
		return list, model.StatusAlreadyPresent, nil
	}
	return append(list, entry), model.StatusAdded, nil
}

func removeFrom(list model.ScopeList, entry string) (model.ScopeList, model.Status, error) {
	kept, n := list.Without(entry)
	if n == 0 {
		return list, model.StatusNotPresent, nil
	}
	return kept, model.StatusRemoved, nil
}

func (e *Engine) batch(paths []string, scopes model.ScopeSet, m mutation) ([]model.Outcome, error) {
	var outcomes []model.Outcome
	var errs []error
	for _, scope := range scopes.Scopes() {
		got, err := e.batchScope(scope, paths, m)
		if err != nil {
			errs = append(errs, err)
		}
		outcomes = append(outcomes, got...)
	}
	return outcomes, errors.Join(errs...)
}

// batchScope applies every entry to the scope in one read-modify-write.
// If the write fails no entry took effect and all are reported failed.
func (e *Engine) batchScope(scope model.Scope, entries []string, m mutation) ([]model.Outcome, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	var outcomes []model.Outcome
	err := e.store.Update(scope, func(list model.ScopeList) model.ScopeList {
		for _, entry := range entries {
			o := model.Outcome{Scope: scope, Entry: entry}
			list, o.Status, o.Err = m(list, entry)
			outcomes = append(outcomes, o)
		}
		return list
	})
	if err != nil {
		outcomes = outcomes[:0]
		for _, entry := range entries {
			outcomes = append(outcomes, model.Outcome{Scope: scope, Entry: entry, Status: model.StatusFailed, Err: err})
		}
	}

	for _, o := range outcomes {
		e.report(o)
	}
	if err != nil {
		return outcomes, err
	}

	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return outcomes, errors.Join(errs...)
}
