// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfctl/tblsel/internal/table"
)

// DecodeJSON decodes a JSON table. root, when set, is a gjson path to the
// records or columns inside the document.
func DecodeJSON(data []byte, root string) (*table.Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	if root != "" {
		doc = doc.Get(root)
		if !doc.Exists() {
			return nil, ErrRootNotFound(root)
		}
	}

	switch {
	case doc.IsArray():
		return jsonRecords(doc)
	case doc.IsObject():
		return jsonColumns(doc)
	default:
		return nil, ErrTopLevel(jsonKind(doc))
	}
}

// jsonRecords builds a table from a list of objects. gjson walks object keys
// in document order, which is what fixes the column order.
func jsonRecords(doc gjson.Result) (*table.Table, error) {
	b := table.NewBuilder()

	for i, rec := range doc.Array() {
		if !rec.IsObject() {
			return nil, ErrNotRecord(i, jsonKind(rec))
		}

		var names []string
		var values []any
		rec.ForEach(func(k, v gjson.Result) bool {
			names = append(names, k.String())
			values = append(values, jsonValue(v))
			return true
		})

		if err := b.AppendRecord(names, values); err != nil {
			return nil, err
		}
	}

	return b.Table(), nil
}

// jsonColumns builds a table from an object of lists.
func jsonColumns(doc gjson.Result) (*table.Table, error) {
	var columns []table.Column
	var err error

	doc.ForEach(func(k, v gjson.Result) bool {
		if !v.IsArray() {
			err = ErrNotColumn(k.String(), jsonKind(v))
			return false
		}
		items := v.Array()
		values := make([]any, len(items))
		for i, item := range items {
			values[i] = jsonValue(item)
		}
		columns = append(columns, table.Column{Name: k.String(), Values: values})
		return true
	})
	if err != nil {
		return nil, err
	}

	return table.New(columns...)
}

// jsonValue converts a gjson value. Whole numbers written without a fraction
// or exponent come back as int64, or uint64 above its range; anything else
// numeric is float64.
func jsonValue(v gjson.Result) any {
	if v.Type == gjson.Number && !strings.ContainsAny(v.Raw, ".eE") {
		if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return n
		}
		if n, err := strconv.ParseUint(v.Raw, 10, 64); err == nil {
			return n
		}
		return v.Float()
	}
	return v.Value()
}

func jsonKind(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "list"
	case v.IsObject():
		return "object"
	case v.IsBool():
		return "bool"
	}
	return strings.ToLower(v.Type.String())
}
