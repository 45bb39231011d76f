// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tfctl/tblsel/internal/source"
	"github.com/tfctl/tblsel/internal/table"
)

func testFrame(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		table.Column{Name: "foo_int1_end", Values: []any{int64(1), int64(2), int64(3)}},
		table.Column{Name: "int2_end", Values: []any{int64(100), int64(200), int64(300)}},
		table.Column{Name: "foo_float1", Values: []any{4.0, 5.0, 6.0}},
		table.Column{Name: "float2", Values: []any{40.5, 50.5, 60.5}},
		table.Column{Name: "str1_end", Values: []any{"a", "b", "c"}},
		table.Column{Name: "str2", Values: []any{"XXX", "YYY", nil}},
	)
	require.NoError(t, err)
	return tbl
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(-7), want: "-7"},
		{name: "uint64", value: uint64(9), want: "9"},
		{name: "whole float", value: 4.0, want: "4"},
		{name: "float", value: 40.5, want: "40.5"},
		{name: "zero is not empty", value: int64(0), want: "0"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false", value: false, want: "false"},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "slice", value: []any{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]any{"x": 1}, want: `{"x":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortTable(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "name", Values: []any{"zebra", "Alpha", "beta", "alpha"}},
		table.Column{Name: "count", Values: []any{int64(3), 1.0, int64(2), int64(1)}},
	)
	require.NoError(t, err)

	tests := []struct {
		name      string
		spec      string
		wantOrder []any
	}{
		{name: "ascending by name", spec: "name", wantOrder: []any{"Alpha", "alpha", "beta", "zebra"}},
		{name: "descending by name", spec: "-name", wantOrder: []any{"zebra", "beta", "Alpha", "alpha"}},
		{name: "case sensitive", spec: "!name", wantOrder: []any{"Alpha", "alpha", "beta", "zebra"}},
		{name: "case sensitive descending", spec: "-!name", wantOrder: []any{"zebra", "beta", "alpha", "Alpha"}},
		{name: "descending case sensitive", spec: "!-name", wantOrder: []any{"zebra", "beta", "alpha", "Alpha"}},
		{name: "mixed numbers", spec: "count", wantOrder: []any{"Alpha", "alpha", "beta", "zebra"}},
		{name: "multiple fields", spec: "count,-name", wantOrder: []any{"Alpha", "alpha", "beta", "zebra"}},
		{name: "descending count", spec: "-count", wantOrder: []any{"zebra", "beta", "Alpha", "alpha"}},
		{name: "unknown column ignored", spec: "nope", wantOrder: []any{"zebra", "Alpha", "beta", "alpha"}},
		{name: "empty spec", spec: "", wantOrder: []any{"zebra", "Alpha", "beta", "alpha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SortTable(tbl, tt.spec)
			require.NoError(t, err)

			col, ok := got.Column("name")
			require.True(t, ok)
			assert.Equal(t, tt.wantOrder, col.Values)
			assert.Equal(t, tbl.ColumnNames(), got.ColumnNames())
		})
	}

	// The input is untouched.
	col, _ := tbl.Column("name")
	assert.Equal(t, []any{"zebra", "Alpha", "beta", "alpha"}, col.Values)
}

func TestTableWriter(t *testing.T) {
	tests := []struct {
		name     string
		table    func(t *testing.T) *table.Table
		opts     Options
		contains []string
		excludes []string
		empty    bool
	}{
		{
			name:     "rows without titles",
			table:    testFrame,
			contains: []string{"1", "40.5", "XXX", "-"},
			excludes: []string{"foo_int1_end"},
		},
		{
			name:     "titles",
			table:    testFrame,
			opts:     Options{Titles: true},
			contains: []string{"foo_int1_end", "str2", "YYY"},
		},
		{
			name:     "footer",
			table:    testFrame,
			opts:     Options{Footer: "6 columns"},
			contains: []string{"XXX", "6 columns"},
		},
		{
			name:  "no columns",
			table: func(*testing.T) *table.Table { return table.Empty(3) },
			opts:  Options{Titles: true},
			empty: true,
		},
		{
			name: "no rows without titles",
			table: func(t *testing.T) *table.Table {
				tbl, err := table.New(table.Column{Name: "a"})
				require.NoError(t, err)
				return tbl
			},
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			TableWriter(tt.table(t), tt.opts, buf)

			if tt.empty {
				assert.Empty(t, buf.String())
				return
			}
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestSpitJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, Spit(testFrame(t), Options{Format: FormatJSON}, buf))

	out := buf.Bytes()
	require.True(t, gjson.ValidBytes(out))
	assert.Equal(t, int64(3), gjson.GetBytes(out, "#").Int())
	assert.Equal(t, "XXX", gjson.GetBytes(out, "0.str2").String())
	assert.Equal(t, 60.5, gjson.GetBytes(out, "2.float2").Float())
	assert.Equal(t, gjson.Null, gjson.GetBytes(out, "2.str2").Type)

	var keys []string
	gjson.GetBytes(out, "0").ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	assert.Equal(t, testFrame(t).ColumnNames(), keys)
}

func TestSpitYAML(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, Spit(testFrame(t), Options{Format: FormatYAML}, buf))

	want := "- foo_int1_end: 1\n  int2_end: 100\n  foo_float1: 4\n  float2: 40.5\n  str1_end: a\n  str2: XXX\n"
	assert.True(t, strings.HasPrefix(buf.String(), want), buf.String())
	assert.Contains(t, buf.String(), "str2: null")
}

func TestSpitCSV(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, Spit(testFrame(t), Options{Format: FormatCSV}, buf))

	want := "foo_int1_end,int2_end,foo_float1,float2,str1_end,str2\n" +
		"1,100,4,40.5,a,XXX\n" +
		"2,200,5,50.5,b,YYY\n" +
		"3,300,6,60.5,c,\n"
	assert.Equal(t, want, buf.String())
}

func TestSpitCSVFloatsExact(t *testing.T) {
	want := []float64{0.1234567891, 1e-9, 3.0, -2.5e300}
	values := make([]any, len(want))
	for i, f := range want {
		values[i] = f
	}
	tbl, err := table.New(table.Column{Name: "x_end", Values: values})
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, Spit(tbl, Options{Format: FormatCSV}, buf))

	got, err := source.DecodeCSV(buf.Bytes())
	require.NoError(t, err)
	col, ok := got.Column("x_end")
	require.True(t, ok)
	require.Len(t, col.Values, len(want))
	for i, f := range want {
		assert.Equal(t, f, col.Values[i], "row %d", i)
	}
}

func TestSpitMsgpack(t *testing.T) {
	want := testFrame(t)

	buf := new(bytes.Buffer)
	require.NoError(t, Spit(want, Options{Format: FormatMsgpack}, buf))

	got, err := source.DecodeMsgpack(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want.ColumnNames(), got.ColumnNames())
	assert.Equal(t, want.Row(0), got.Row(0))
}

func TestSpitSorted(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, Spit(testFrame(t), Options{Format: FormatCSV, Sort: "-int2_end"}, buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "3,300"))
	assert.True(t, strings.HasPrefix(lines[3], "1,100"))
}

func TestSpitUnknownFormat(t *testing.T) {
	err := Spit(testFrame(t), Options{Format: "xml"}, new(bytes.Buffer))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
