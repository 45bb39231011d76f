// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	lgtable "github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/tblsel/internal/config"
	"github.com/tfctl/tblsel/internal/table"
)

// Output formats accepted by --output.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatCSV     = "csv"
	FormatMsgpack = "msgpack"
)

// Formats lists every --output value in help order.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatMsgpack}

// ErrUnknownFormat is returned by Spit for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Options controls how a table is rendered.
type Options struct {
	Format  string
	Titles  bool
	Color   bool
	Padding int
	Sort    string
	Footer  string
}

// OptionsFromCommand reads the rendering flags off cmd. An explicit --color
// wins. Otherwise color follows the config file's color key, and only when
// stdout is a terminal.
func OptionsFromCommand(cmd *cli.Command) Options {
	opts := Options{
		Format:  cmd.String("output"),
		Titles:  cmd.Bool("titles"),
		Padding: cmd.Int("padding"),
		Sort:    cmd.String("sort"),
	}

	if cmd.IsSet("color") {
		opts.Color = cmd.Bool("color")
	} else {
		want, _ := config.GetBool("color", false)
		opts.Color = want && term.IsTerminal(int(os.Stdout.Fd()))
	}

	return opts
}

// Spit sorts t per opts.Sort and writes it to w in opts.Format. If w is nil,
// os.Stdout is used.
func Spit(t *table.Table, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	t, err := SortTable(t, opts.Sort)
	if err != nil {
		return err
	}

	log.Debugf("spitting %dx%d table as %q", t.NumRows(), t.NumColumns(), opts.Format)

	switch opts.Format {
	case "", FormatText:
		TableWriter(t, opts, w)
		return nil
	case FormatJSON:
		return writeJSON(t, opts, w)
	case FormatYAML:
		return writeYAML(t, w)
	case FormatCSV:
		return writeCSV(t, w)
	case FormatMsgpack:
		return writeMsgpack(t, w)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}
}

// InterfaceToString converts a cell value to display text. A custom empty
// value, used for nil, may be provided.
func InterfaceToString(value any, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch value := value.(type) {
	case nil:
		return emptyValue[0]
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case float64:
		return humanize.Ftoa(value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// TableWriter renders t in tabular form honoring color, titles and padding.
func TableWriter(t *table.Table, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// Nothing to show without columns, or without rows unless titles are on.
	if t.NumColumns() == 0 || (t.NumRows() == 0 && !opts.Titles) {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	rows := make([][]string, t.NumRows())
	for i := range rows {
		values := t.Row(i)
		row := make([]string, len(values))
		for c, v := range values {
			row[c] = InterfaceToString(v, "-")
		}
		rows[i] = row
	}

	pad := opts.Padding
	tbl := lgtable.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == lgtable.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		tbl = tbl.Headers(t.ColumnNames()...).BorderHeader(false)
	}
	fmt.Fprintln(w, tbl)

	if opts.Footer != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Footer))
	}
}

// getColors returns configured color values for table rendering, falling back
// to defaults picked for the terminal's background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if colorCfg, err := config.GetString(key); err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
