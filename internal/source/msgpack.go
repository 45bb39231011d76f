// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tfctl/tblsel/internal/table"
)

// Frame is the msgpack layout of a table: a header and row-major values.
type Frame struct {
	Columns []string `msgpack:"columns"`
	Rows    [][]any  `msgpack:"rows"`
}

// DecodeMsgpack decodes a msgpack Frame. Integers come back as int64 or
// uint64 whatever width they were written with.
func DecodeMsgpack(data []byte) (*table.Table, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)

	var f Frame
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("invalid msgpack: %w", err)
	}
	return table.FromRows(f.Columns, f.Rows)
}

// EncodeMsgpack encodes t as a msgpack Frame.
func EncodeMsgpack(t *table.Table) ([]byte, error) {
	f := Frame{
		Columns: t.ColumnNames(),
		Rows:    make([][]any, t.NumRows()),
	}
	for i := range f.Rows {
		f.Rows[i] = t.Row(i)
	}
	return msgpack.Marshal(&f)
}
