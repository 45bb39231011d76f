// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"reflect"

	"github.com/tfctl/tblsel/internal/log"
	"github.com/tfctl/tblsel/internal/selector"
)

// Column is a named, ordered run of values. All columns of a Table have the
// same length.
type Column struct {
	Name   string `yaml:"name" json:"Name"`
	Values []any  `yaml:"values" json:"Values"`
}

// Len returns the number of values in the column.
func (c Column) Len() int { return len(c.Values) }

// Table is an ordered set of uniquely named, equal-length columns. A Table is
// never modified after construction; projections share value slices with the
// table they came from.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a Table from columns in the given order. Column names must be
// unique and every column must have the same length. A Table with no columns
// has zero rows; use Empty for a column-less table that keeps a row count.
func New(columns ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, c := range columns {
		if _, dup := t.index[c.Name]; dup {
			return nil, ErrDuplicateColumn(c.Name)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, ErrRaggedColumn(c.Name, t.rows, c.Len())
		}
		t.index[c.Name] = len(t.columns)
		t.columns = append(t.columns, c)
	}

	log.Tracef("table built: columns=%d, rows=%d", len(t.columns), t.rows)
	return t, nil
}

// Empty returns a Table with no columns and the given number of rows.
func Empty(rows int) *Table {
	return &Table{index: map[string]int{}, rows: rows}
}

// FromRows builds a Table from a header and row-major values. Every row must
// have exactly one value per name.
func FromRows(names []string, rows [][]any) (*Table, error) {
	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column{Name: name, Values: make([]any, len(rows))}
	}

	for r, row := range rows {
		if len(row) != len(names) {
			return nil, ErrRowWidth(r, len(names), len(row))
		}
		for c, v := range row {
			columns[c].Values[r] = v
		}
	}

	if len(names) == 0 {
		return Empty(len(rows)), nil
	}
	return New(columns...)
}

// ColumnNames returns the column names in order. The slice is a copy.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in order. The slice is a copy, the value slices
// are not.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// NumRows returns the row count. It is kept even when a projection leaves no
// columns.
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the column count.
func (t *Table) NumColumns() int { return len(t.columns) }

// IsEmpty reports whether the table has no columns or no rows.
func (t *Table) IsEmpty() bool { return len(t.columns) == 0 || t.rows == 0 }

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for c, col := range t.columns {
		row[c] = col.Values[i]
	}
	return row
}

// Project returns a new Table holding the named columns in the order given.
// Names that are not columns of t, and repeats, are skipped. The row count is
// always that of t.
func (t *Table) Project(names []string) *Table {
	p := &Table{
		columns: make([]Column, 0, len(names)),
		index:   make(map[string]int, len(names)),
		rows:    t.rows,
	}

	for _, name := range names {
		i, ok := t.index[name]
		if !ok {
			log.Debugf("projection skipped unknown column: name=%s", name)
			continue
		}
		if _, dup := p.index[name]; dup {
			continue
		}
		p.index[name] = len(p.columns)
		p.columns = append(p.columns, t.columns[i])
	}

	return p
}

// Select returns a column selector bound to t, so that selections read as
// t.Select().EndsWith("_end").
func (t *Table) Select() *selector.Selector[*Table] {
	return selector.From[*Table](t)
}

// Equal reports whether both tables have the same columns, in the same order,
// holding the same values, and the same row count.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.rows != o.rows || len(t.columns) != len(o.columns) {
		return false
	}
	for i := range t.columns {
		if t.columns[i].Name != o.columns[i].Name {
			return false
		}
		if !reflect.DeepEqual(t.columns[i].Values, o.columns[i].Values) {
			return false
		}
	}
	return true
}
