package changelist

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/rpattn/changelist/internal/domain"
)

// Predicate is a boolean filter over a record. The concrete types are
// Contains and AnyOf; query layers translate those into their own form.
type Predicate interface {
	Match(rec domain.Record) bool
}

// Contains matches records whose Field contains Term as a substring.
type Contains struct {
	Field         string
	Term          string
	CaseSensitive bool
}

// Match implements Predicate. Missing and nil values never match.
func (c Contains) Match(rec domain.Record) bool {
	v, ok := rec.Value(c.Field)
	if !ok || v == nil {
		return false
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if c.CaseSensitive {
		return strings.Contains(s, c.Term)
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(c.Term))
}

// AnyOf matches when at least one of its predicates does.
type AnyOf []Predicate

// Match implements Predicate.
func (a AnyOf) Match(rec domain.Record) bool {
	for _, p := range a {
		if p.Match(rec) {
			return true
		}
	}
	return false
}

// Search is a validated text search over a fixed set of fields.
type Search struct {
	fields        []string
	caseSensitive bool
}

// NewSearch fails with ErrMisconfiguredSearch when no field is declared.
func NewSearch(fields []string, caseSensitive bool) (*Search, error) {
	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrMisconfiguredSearch
	}
	return &Search{fields: cleaned, caseSensitive: caseSensitive}, nil
}

// Fields returns the searched fields.
func (s *Search) Fields() []string {
	return append([]string(nil), s.fields...)
}

// CaseSensitive reports whether matching respects case.
func (s *Search) CaseSensitive() bool {
	return s.caseSensitive
}

// Predicate builds the filter for term. A blank term returns nil, meaning no
// filtering. One field yields a bare Contains; several are combined with
// AnyOf.
func (s *Search) Predicate(term string) Predicate {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	if len(s.fields) == 1 {
		return Contains{Field: s.fields[0], Term: term, CaseSensitive: s.caseSensitive}
	}
	preds := make(AnyOf, len(s.fields))
	for i, f := range s.fields {
		preds[i] = Contains{Field: f, Term: term, CaseSensitive: s.caseSensitive}
	}
	return preds
}

// BuildPredicate is a one-shot NewSearch followed by Predicate.
func BuildPredicate(term string, fields []string, caseSensitive bool) (Predicate, error) {
	s, err := NewSearch(fields, caseSensitive)
	if err != nil {
		return nil, err
	}
	return s.Predicate(term), nil
}
