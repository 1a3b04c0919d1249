package model

import "strings"

// Version is the pathman release, overridden via -ldflags at build time.
var Version = "0.3.0"

// Separator joins entries in the persisted form of a scope's PATH value.
const Separator = ";"

// SelfReference is the legacy placeholder filtered out of the system scope.
const SelfReference = "%PATH%"

// Scope identifies one of the two independently stored PATH lists.
type Scope int

const (
	User Scope = iota
	System
)

// String returns the lowercase scope name used in listings and logs.
func (s Scope) String() string {
	switch s {
	case User:
		return "user"
	case System:
		return "system"
	}
	return "unknown"
}

// Label is the uppercase tag printed by audit and clean.
func (s Scope) Label() string {
	return strings.ToUpper(s.String())
}

// ScopeSet is the set of scopes a command operates on.
type ScopeSet uint8

const (
	UserScope   ScopeSet = 1 << iota
	SystemScope ScopeSet = 1 << iota

	BothScopes = UserScope | SystemScope
)

// ResolveScopes maps the -s/-u flags to a ScopeSet. Neither flag means both.
func ResolveScopes(system, user bool) ScopeSet {
	var set ScopeSet
	if system {
		set |= SystemScope
	}
	if user {
		set |= UserScope
	}
	if set == 0 {
		return BothScopes
	}
	return set
}

// Has reports whether scope s is selected.
func (set ScopeSet) Has(s Scope) bool {
	switch s {
	case User:
		return set&UserScope != 0
	case System:
		return set&SystemScope != 0
	}
	return false
}

// Scopes returns the selected scopes, system first.
func (set ScopeSet) Scopes() []Scope {
	var out []Scope
	if set.Has(System) {
		out = append(out, System)
	}
	if set.Has(User) {
		out = append(out, User)
	}
	return out
}

// ScopeList is the ordered list of entries stored for one scope.
type ScopeList []string

// Contains reports whether entry is present, compared as exact strings.
func (l ScopeList) Contains(entry string) bool {
	for _, e := range l {
		if e == entry {
			return true
		}
	}
	return false
}

// Without returns a copy with every exact match of entry removed and the
// number of entries dropped.
func (l ScopeList) Without(entry string) (ScopeList, int) {
	out := make(ScopeList, 0, len(l))
	removed := 0
	for _, e := range l {
		if e == entry {
			removed++
			continue
		}
		out = append(out, e)
	}
	return out, removed
}

// Status is the result of one reconciliation step for a single entry.
type Status int

const (
	StatusAdded Status = iota
	StatusAlreadyPresent
	StatusRemoved
	StatusNotPresent
	StatusValid
	StatusBroken
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusAdded:
		return "ADDED"
	case StatusAlreadyPresent:
		return "PRESENT"
	case StatusRemoved:
		return "REMOVED"
	case StatusNotPresent:
		return "NOT FOUND"
	case StatusValid:
		return "VALID"
	case StatusBroken:
		return "BROKEN"
	case StatusFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}

// Outcome records what happened to one entry in one scope.
type Outcome struct {
	Scope  Scope
	Entry  string
	Status Status
	Err    error
}
