package domain

import "strings"

// Source identifies the feed a transaction was imported from.
type Source string

const (
	SourceAmex     Source = "amex"
	SourceStarling Source = "starling"
)

// Sources lists every known source in merge order.
var Sources = []Source{SourceAmex, SourceStarling}

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourceAmex, SourceStarling:
		return true
	}
	return false
}

// ParseSource converts a case-insensitive name into a Source.
func ParseSource(raw string) (Source, error) {
	s := Source(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", NewValidationError("source", "must be one of: amex, starling")
	}
	return s, nil
}

// Scope selects which sources a ledger query reads from.
type Scope string

const (
	ScopeAmex     Scope = "amex"
	ScopeStarling Scope = "starling"
	ScopeAll      Scope = "all"
)

func (s Scope) String() string { return string(s) }

func (s Scope) IsValid() bool {
	switch s {
	case ScopeAmex, ScopeStarling, ScopeAll:
		return true
	}
	return false
}

// Sources returns the sources covered by the scope.
func (s Scope) Sources() []Source {
	switch s {
	case ScopeAmex:
		return []Source{SourceAmex}
	case ScopeStarling:
		return []Source{SourceStarling}
	case ScopeAll:
		return Sources
	}
	return nil
}

// ParseScope converts a case-insensitive name into a Scope.
func ParseScope(raw string) (Scope, error) {
	s := Scope(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", NewValidationError("source", "must be one of: amex, starling, all")
	}
	return s, nil
}

// Direction is the money flow of a bank transaction.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionIn, DirectionOut:
		return true
	}
	return false
}
