// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/meta"
	"github.com/tfctl/tblsel/internal/output"
	"github.com/tfctl/tblsel/internal/table"
)

// colsRender writes one line per selected column instead of the data. Titles
// are on unless asked otherwise, and text output ends with a count.
func colsRender(_ context.Context, cmd *cli.Command, selected *table.Table, opts output.Options) error {
	if !cmd.IsSet("titles") {
		opts.Titles = true
	}
	opts.Footer = fmt.Sprintf("%d columns, %s rows", selected.NumColumns(), humanize.Comma(int64(selected.NumRows())))
	return output.Spit(table.Describe(selected), opts, writer(cmd))
}

// colsCommandBuilder constructs the cli.Command for "cols".
func colsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&TableCommandBuilder{
		Name:      "cols",
		Usage:     "list table columns, optionally narrowed by the same criteria as select",
		UsageText: "tblsel cols [SOURCE] [criteria] [options]",
		Action:    NewTableActionRunner("cols", colsRender).Run,
		Meta:      meta,
	}).Build()
}
