// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tfctl/tblsel/internal/table"
)

// DecodeCSV decodes a CSV table with a header row.
func DecodeCSV(data []byte) (*table.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrTopLevel("empty document")
	}

	header, body := records[0], records[1:]
	columns := make([]table.Column, len(header))
	cells := make([]string, len(body))
	for c, name := range header {
		for r, rec := range body {
			cells[r] = rec[c]
		}
		columns[c] = table.Column{Name: name, Values: inferColumn(cells)}
	}

	return table.New(columns...)
}

// inferColumn types a column of cells: int64 when every non-empty cell is an
// integer, float64 when every one is a number, string otherwise. Empty cells
// become nil.
func inferColumn(cells []string) []any {
	allInt, allFloat := true, true
	for _, c := range cells {
		if c == "" {
			continue
		}
		if _, err := strconv.ParseInt(c, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			allFloat = false
		}
	}

	values := make([]any, len(cells))
	for i, c := range cells {
		switch {
		case c == "":
			values[i] = nil
		case allInt:
			values[i], _ = strconv.ParseInt(c, 10, 64)
		case allFloat:
			values[i], _ = strconv.ParseFloat(c, 64)
		default:
			values[i] = c
		}
	}
	return values
}
