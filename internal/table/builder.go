// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

// Builder assembles a Table from records whose keys may vary. Columns appear
// in the order their name is first seen; a record that lacks a column gets nil
// in that position.
type Builder struct {
	columns []Column
	index   map[string]int
	rows    int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: map[string]int{}}
}

// AppendRecord adds one row. names and values are parallel; a name may not
// repeat within a record. A rejected record leaves the Builder unchanged.
func (b *Builder) AppendRecord(names []string, values []any) error {
	if len(names) != len(values) {
		return ErrRowWidth(b.rows, len(names), len(values))
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return ErrDuplicateColumn(name)
		}
		seen[name] = struct{}{}
	}

	for i, name := range names {
		c, ok := b.index[name]
		if !ok {
			c = len(b.columns)
			b.index[name] = c
			b.columns = append(b.columns, Column{Name: name, Values: make([]any, b.rows, b.rows+1)})
		}
		b.columns[c].Values = append(b.columns[c].Values, values[i])
	}

	b.rows++

	// Pad the columns this record did not mention.
	for c := range b.columns {
		if len(b.columns[c].Values) < b.rows {
			b.columns[c].Values = append(b.columns[c].Values, nil)
		}
	}

	return nil
}

// Table returns the assembled Table. The Builder should not be used after.
func (b *Builder) Table() *Table {
	if len(b.columns) == 0 {
		return Empty(b.rows)
	}
	return &Table{columns: b.columns, index: b.index, rows: b.rows}
}
