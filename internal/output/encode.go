// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/tblsel/internal/source"
	"github.com/tfctl/tblsel/internal/table"
)

// writeJSON emits t as a list of records. Records are assembled by hand so
// that keys keep column order, which encoding a map would lose.
func writeJSON(t *table.Table, opts Options, w io.Writer) error {
	names := t.ColumnNames()

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < t.NumRows(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for c, v := range t.Row(i) {
			if c > 0 {
				buf.WriteByte(',')
			}
			key, _ := json.Marshal(names[c])
			val, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("failed to marshal %s[%d]: %w", names[c], i, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	out := pretty.Pretty(buf.Bytes())
	if opts.Color {
		out = pretty.Color(out, nil)
	}
	_, err := w.Write(out)
	return err
}

// writeYAML emits t as a list of records. yaml.v2's MapSlice keeps column
// order.
func writeYAML(t *table.Table, w io.Writer) error {
	names := t.ColumnNames()

	records := make([]yaml.MapSlice, t.NumRows())
	for i := range records {
		values := t.Row(i)
		rec := make(yaml.MapSlice, len(values))
		for c, v := range values {
			rec[c] = yaml.MapItem{Key: names[c], Value: v}
		}
		records[i] = rec
	}

	out, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// writeCSV emits a header row followed by one line per row. nil cells are
// written empty.
func writeCSV(t *table.Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return err
	}

	for i := 0; i < t.NumRows(); i++ {
		values := t.Row(i)
		rec := make([]string, len(values))
		for c, v := range values {
			rec[c] = exactString(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// exactString formats a cell for machine formats. Floats use the shortest
// representation that parses back to the same value.
func exactString(value any) string {
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return InterfaceToString(value)
}

func writeMsgpack(t *table.Table, w io.Writer) error {
	out, err := source.EncodeMsgpack(t)
	if err != nil {
		return fmt.Errorf("failed to marshal msgpack: %w", err)
	}
	_, err = w.Write(out)
	return err
}
