// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"

	"github.com/apex/log"

	"github.com/tfctl/tblsel/internal/table"
)

// sortKey is one column of a --sort spec.
type sortKey struct {
	column        int
	ascending     bool
	caseSensitive bool
}

// SortTable returns t with its rows ordered by spec, a comma-delimited list of
// column names. A "-" prefix sorts descending and a "!" prefix compares
// strings case-sensitively. Unknown columns are ignored. Columns are never
// touched.
func SortTable(t *table.Table, spec string) (*table.Table, error) {
	keys := parseSortSpec(t, spec)
	if len(keys) == 0 || t.NumRows() < 2 {
		return t, nil
	}

	rows := make([][]any, t.NumRows())
	for i := range rows {
		rows[i] = t.Row(i)
	}

	sort.SliceStable(rows, func(one, two int) bool {
		for _, k := range keys {
			oneValue, twoValue := rows[one][k.column], rows[two][k.column]

			oneNum, oneOk := toFloat(oneValue)
			twoNum, twoOk := toFloat(twoValue)
			if oneOk && twoOk {
				if oneNum != twoNum {
					return (oneNum < twoNum) == k.ascending
				}
				continue
			}

			// Fall back to string comparison which can also handle bools.
			oneStr := InterfaceToString(oneValue)
			twoStr := InterfaceToString(twoValue)
			if !k.caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				return (oneStr < twoStr) == k.ascending
			}
		}
		return false
	})

	return table.FromRows(t.ColumnNames(), rows)
}

func parseSortSpec(t *table.Table, spec string) []sortKey {
	if spec == "" {
		return nil
	}

	index := make(map[string]int, t.NumColumns())
	for i, name := range t.ColumnNames() {
		index[name] = i
	}

	var keys []sortKey
	for _, field := range strings.Split(spec, ",") {
		k := sortKey{ascending: true}
		// Modifiers may come in either order.
		for len(field) > 0 {
			if rest, ok := strings.CutPrefix(field, "-"); ok && k.ascending {
				field, k.ascending = rest, false
			} else if rest, ok := strings.CutPrefix(field, "!"); ok && !k.caseSensitive {
				field, k.caseSensitive = rest, true
			} else {
				break
			}
		}

		col, ok := index[field]
		if !ok {
			log.Debugf("ignoring sort on unknown column %q", field)
			continue
		}
		k.column = col
		keys = append(keys, k)
	}
	return keys
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
