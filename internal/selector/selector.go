// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"regexp"
	"strings"

	"github.com/tfctl/tblsel/internal/log"
)

// Projector is the capability a table needs to be selectable: an ordered list
// of its column names and a way to build a copy restricted to some of them.
// Project must keep the order of names it is given and must not modify the
// receiver.
type Projector[T any] interface {
	ColumnNames() []string
	Project(names []string) T
}

// Predicate reports whether a column name is wanted.
type Predicate func(name string) bool

// Selector binds the column-name operations to one Projector. It carries no
// state of its own, so building a new one per call is fine.
type Selector[T any] struct {
	src Projector[T]
}

// From binds a Selector to p. p is not validated.
func From[T any](p Projector[T]) *Selector[T] {
	return &Selector[T]{src: p}
}

// StartsWith returns the columns whose name begins with prefix.
func (s *Selector[T]) StartsWith(prefix string) T {
	return s.Where(HasPrefix(prefix))
}

// EndsWith returns the columns whose name ends with suffix.
func (s *Selector[T]) EndsWith(suffix string) T {
	return s.Where(HasSuffix(suffix))
}

// Contains returns the columns whose name contains substr anywhere.
func (s *Selector[T]) Contains(substr string) T {
	return s.Where(HasSubstring(substr))
}

// Matches returns the columns in whose name pattern is found. The search is
// unanchored; use ^ and $ to pin it. An invalid pattern yields a
// *PatternError and the zero T.
func (s *Selector[T]) Matches(pattern string) (T, error) {
	pred, err := MatchesPattern(pattern)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Where(pred), nil
}

// Where returns the columns accepted by pred.
func (s *Selector[T]) Where(pred Predicate) T {
	names := Filter(s.src.ColumnNames(), pred)
	log.Tracef("selected columns: names=%v", names)
	return s.src.Project(names)
}

// Filter returns the names accepted by pred in their original order. The
// result is never nil.
func Filter(names []string, pred Predicate) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if pred(name) {
			kept = append(kept, name)
		}
	}
	return kept
}

// HasPrefix matches names that begin with prefix.
func HasPrefix(prefix string) Predicate {
	return func(name string) bool { return strings.HasPrefix(name, prefix) }
}

// HasSuffix matches names that end with suffix.
func HasSuffix(suffix string) Predicate {
	return func(name string) bool { return strings.HasSuffix(name, suffix) }
}

// HasSubstring matches names that contain substr.
func HasSubstring(substr string) Predicate {
	return func(name string) bool { return strings.Contains(name, substr) }
}

// MatchesPattern compiles pattern and matches names in which it is found.
func MatchesPattern(pattern string) (Predicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re.MatchString, nil
}
