// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package selector picks columns out of a table by name.
//
// A Selector is bound to anything that can list its column names in order and
// project itself onto a subset of them (see Projector). Four operations are
// provided:
//
//   - StartsWith : names with the given prefix
//   - EndsWith : names with the given suffix
//   - Contains : names containing the given substring
//   - Matches : names in which the regular expression is found (unanchored)
//
// Every operation returns a new table holding only the matching columns, in
// the order they appear in the source, with all rows unchanged. Nothing
// matching is not an error: the result simply has zero columns. An empty
// prefix, suffix or substring matches every column. Matches is the only
// operation that can fail, returning a *PatternError when the expression does
// not compile.
//
// Criteria:
//
// The CLI expresses selections as a delimited spec of operand-value items,
// parsed by ParseCriteria:
//
//   - "^foo" : starts with "foo"
//   - "$end" : ends with "end"
//   - "@float" : contains "float"
//   - "/^str" : matches the regular expression "^str"
//
// Applying several criteria narrows the selection one criterion at a time.
// Because each step only drops columns and never reorders them, the order in
// which criteria are applied does not change the result.
package selector
