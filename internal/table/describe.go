// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Titles of the columns produced by Describe.
const (
	DescribePosition = "#"
	DescribeName     = "column"
	DescribeType     = "type"
	DescribeRows     = "rows"
	DescribeNulls    = "nulls"
)

// Describe returns a Table with one row per column of t: its position, name,
// value type, row count and nil count. Counts are humanized ("1,024").
func Describe(t *Table) *Table {
	n := t.NumColumns()
	pos := make([]any, n)
	names := make([]any, n)
	types := make([]any, n)
	rows := make([]any, n)
	nulls := make([]any, n)

	for i, c := range t.columns {
		pos[i] = int64(i)
		names[i] = c.Name
		types[i] = valueType(c.Values)
		rows[i] = humanize.Comma(int64(c.Len()))
		nulls[i] = humanize.Comma(int64(countNil(c.Values)))
	}

	d, _ := New(
		Column{Name: DescribePosition, Values: pos},
		Column{Name: DescribeName, Values: names},
		Column{Name: DescribeType, Values: types},
		Column{Name: DescribeRows, Values: rows},
		Column{Name: DescribeNulls, Values: nulls},
	)
	return d
}

// valueType names the Go type shared by the non-nil values, "mixed" when they
// differ and "null" when there are none.
func valueType(values []any) string {
	kind := ""
	for _, v := range values {
		if v == nil {
			continue
		}
		k := fmt.Sprintf("%T", v)
		switch {
		case kind == "":
			kind = k
		case kind != k:
			return "mixed"
		}
	}
	if kind == "" {
		return "null"
	}
	return kind
}

func countNil(values []any) int {
	n := 0
	for _, v := range values {
		if v == nil {
			n++
		}
	}
	return n
}
