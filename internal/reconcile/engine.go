// Package reconcile applies add, remove, list, get, clean and audit across
// the user and system PATH scopes.
package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	perrors "pathman/internal/errors"
	"pathman/internal/logging"
	"pathman/internal/model"
	"pathman/internal/resolve"
	"pathman/internal/store"
)

// Options tune how the Engine touches storage and what it reports.
type Options struct {
	// Batch applies all of a command's changes to a scope in one
	// read-modify-write instead of one cycle per entry.
	Batch bool
	// ReportMissing prints [NOT FOUND] when remove targets an absent entry.
	ReportMissing bool
}

// Format selects the encoding used by Get.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Engine runs reconciliation commands. Every command keeps going after a
// per-item failure and returns the failures joined together.
type Engine struct {
	store    *store.Store
	resolver *resolve.Resolver
	printer  *Printer
	opts     Options
	log      zerolog.Logger
}

func NewEngine(st *store.Store, resolver *resolve.Resolver, printer *Printer, opts Options) *Engine {
	return &Engine{
		store:    st,
		resolver: resolver,
		printer:  printer,
		opts:     opts,
		log:      logging.GetLogger("reconcile"),
	}
}

// Add puts every path into every selected scope, skipping exact duplicates.
func (e *Engine) Add(paths []string, scopes model.ScopeSet) ([]model.Outcome, error) {
	e.log.Info().Strs("paths", paths).Msg("add")
	if e.opts.Batch {
		return e.batch(paths, scopes, addTo)
	}

	var outcomes []model.Outcome
	var errs []error
	for _, p := range paths {
		for _, scope := range scopes.Scopes() {
			o := model.Outcome{Scope: scope, Entry: p, Status: model.StatusAlreadyPresent}
			changed, err := e.store.Add(scope, p)
			switch {
			case err != nil:
				o.Status, o.Err = model.StatusFailed, err
				errs = append(errs, err)
			case changed:
				o.Status = model.StatusAdded
			}
			outcomes = append(outcomes, e.report(o))
		}
	}
	return outcomes, errors.Join(errs...)
}

// Remove drops every exact match of each path from every selected scope.
func (e *Engine) Remove(paths []string, scopes model.ScopeSet) ([]model.Outcome, error) {
	e.log.Info().Strs("paths", paths).Msg("remove")
	if e.opts.Batch {
		return e.batch(paths, scopes, removeFrom)
	}

	var outcomes []model.Outcome
	var errs []error
	for _, p := range paths {
		for _, scope := range scopes.Scopes() {
			o := model.Outcome{Scope: scope, Entry: p, Status: model.StatusNotPresent}
			n, err := e.store.Remove(scope, p)
			switch {
			case err != nil:
				o.Status, o.Err = model.StatusFailed, err
				errs = append(errs, err)
			case n > 0:
				o.Status = model.StatusRemoved
			}
			outcomes = append(outcomes, e.report(o))
		}
	}
	return outcomes, errors.Join(errs...)
}

// List prints each selected scope's entries under a header.
func (e *Engine) List(scopes model.ScopeSet) error {
	var errs []error
	for _, scope := range scopes.Scopes() {
		list, err := e.store.Read(scope)
		if err != nil {
			errs = append(errs, err)
			e.printer.Outcome(model.Outcome{Scope: scope, Status: model.StatusFailed, Err: err})
			continue
		}
		e.printer.Header(scope)
		for _, entry := range list {
			e.printer.Entry(entry)
		}
	}
	return errors.Join(errs...)
}

// Get writes each selected scope's list as one structured document.
func (e *Engine) Get(scopes model.ScopeSet, format Format) error {
	var errs []error
	for _, scope := range scopes.Scopes() {
		list, err := e.store.Read(scope)
		if err != nil {
			errs = append(errs, err)
			e.printer.Outcome(model.Outcome{Scope: scope, Status: model.StatusFailed, Err: err})
			continue
		}
		if err := e.encode(list, format); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) encode(list model.ScopeList, format Format) error {
	if list == nil {
		list = model.ScopeList{}
	}
	out := e.printer.Writer()
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal([]string(list))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, "---\n"+string(data))
		return err
	case FormatJSON, "":
		data, err := json.Marshal([]string(list))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return perrors.Newf(perrors.ErrInvalidInput, "unknown format %q (want json or yaml)", format)
}

// Clean removes every entry that exists neither as written nor expanded.
// The system scope is handled before the user scope.
func (e *Engine) Clean(scopes model.ScopeSet) ([]model.Outcome, error) {
	var outcomes []model.Outcome
	var errs []error
	for _, scope := range scopes.Scopes() {
		list, err := e.store.Read(scope)
		if err != nil {
			errs = append(errs, err)
			outcomes = append(outcomes, e.report(model.Outcome{Scope: scope, Status: model.StatusFailed, Err: err}))
			continue
		}

		missing := e.missing(list)
		e.log.Info().Stringer("scope", scope).Int("missing", len(missing)).Msg("clean")

		if e.opts.Batch {
			for _, entry := range missing {
				e.printer.Missing(scope, entry)
			}
			got, err := e.batchScope(scope, missing, removeFrom)
			if err != nil {
				errs = append(errs, err)
			}
			outcomes = append(outcomes, got...)
			continue
		}

		for _, entry := range missing {
			e.printer.Missing(scope, entry)
			o := model.Outcome{Scope: scope, Entry: entry, Status: model.StatusRemoved}
			if _, err := e.store.Remove(scope, entry); err != nil {
				o.Status, o.Err = model.StatusFailed, err
				errs = append(errs, err)
			}
			outcomes = append(outcomes, e.report(o))
		}
	}
	return outcomes, errors.Join(errs...)
}

// Audit reports VALID or BROKEN for every entry without changing anything.
func (e *Engine) Audit(scopes model.ScopeSet) ([]model.Outcome, error) {
	var outcomes []model.Outcome
	var errs []error
	for _, scope := range scopes.Scopes() {
		list, err := e.store.Read(scope)
		if err != nil {
			errs = append(errs, err)
			outcomes = append(outcomes, e.report(model.Outcome{Scope: scope, Status: model.StatusFailed, Err: err}))
			continue
		}
		for _, entry := range list {
			o := model.Outcome{Scope: scope, Entry: entry, Status: model.StatusBroken}
			if e.resolver.ResolvedExists(entry) {
				o.Status = model.StatusValid
			}
			outcomes = append(outcomes, e.report(o))
		}
	}
	return outcomes, errors.Join(errs...)
}

// missing returns the distinct entries of list that do not resolve, in order.
func (e *Engine) missing(list model.ScopeList) []string {
	seen := make(map[string]bool)
	var out []string
	for _, entry := range list {
		if seen[entry] {
			continue
		}
		seen[entry] = true
		if !e.resolver.ResolvedExists(entry) {
			out = append(out, entry)
		}
	}
	return out
}

func (e *Engine) report(o model.Outcome) model.Outcome {
	if o.Status == model.StatusNotPresent && !e.opts.ReportMissing {
		return o
	}
	e.printer.Outcome(o)
	return o
}
