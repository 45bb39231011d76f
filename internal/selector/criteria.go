// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/tblsel/internal/log"
)

// Operands understood by ParseCriteria and Criterion.Predicate.
const (
	OpStartsWith = "^"
	OpEndsWith   = "$"
	OpContains   = "@"
	OpMatches    = "/"
)

// Criterion is a single parsed column criterion: an operand and the value it
// is applied with.
type Criterion struct {
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

func (c Criterion) String() string {
	return c.Operand + c.Value
}

// Predicate turns the criterion into a name predicate. It fails with a
// *PatternError for a bad / pattern and wraps ErrUnknownOperand for anything
// that is not a known operand.
func (c Criterion) Predicate() (Predicate, error) {
	switch c.Operand {
	case OpStartsWith:
		return HasPrefix(c.Value), nil
	case OpEndsWith:
		return HasSuffix(c.Value), nil
	case OpContains:
		return HasSubstring(c.Value), nil
	case OpMatches:
		return MatchesPattern(c.Value)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperand, c.Operand)
	}
}

// ParseCriteria parses a delimited column spec such as "^foo,$end" into a
// slice of Criterion. The delimiter is "," unless TBLSEL_COLUMNS_DELIM is set,
// which helps when a pattern itself needs commas. Items with an unknown
// operand are logged and skipped.
func ParseCriteria(spec string) []Criterion {
	//nolint:prealloc
	var criteria []Criterion

	if spec == "" {
		return criteria
	}

	delim := ","
	if d, ok := os.LookupEnv("TBLSEL_COLUMNS_DELIM"); ok && d != "" {
		delim = d
	}

	for _, item := range strings.Split(spec, delim) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		operand, value := item[:1], item[1:]
		switch operand {
		case OpStartsWith, OpEndsWith, OpContains, OpMatches:
		default:
			log.Errorf("invalid column criterion: %s", item)
			continue
		}

		criteria = append(criteria, Criterion{Operand: operand, Value: value})
	}

	log.Debugf("criteria parsed: spec=%s, criteria=%v", spec, criteria)
	return criteria
}

// Apply narrows t by each criterion in turn and returns the final selection.
// With no criteria t itself is returned. The first bad criterion stops the
// walk and its error is returned.
func Apply[T Projector[T]](t T, criteria []Criterion) (T, error) {
	for _, c := range criteria {
		pred, err := c.Predicate()
		if err != nil {
			var zero T
			return zero, err
		}
		t = From[T](t).Where(pred)
		log.Tracef("criterion applied: criterion=%s", c)
	}
	return t, nil
}
