// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/output"
	"github.com/tfctl/tblsel/internal/selector"
	"github.com/tfctl/tblsel/internal/table"
)

// TableActionRunner encapsulates the common action pattern of the table
// subcommands: load the source, narrow it by the criteria, then hand the
// selection to Render.
type TableActionRunner struct {
	CommandName string
	Render      func(ctx context.Context, cmd *cli.Command, selected *table.Table, opts output.Options) error
}

// Run executes the action with the provided context and command.
func (tar *TableActionRunner) Run(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[min(1, len(m.Args)):])

	tbl, err := LoadTable(ctx, cmd)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d columns, %d rows", tbl.NumColumns(), tbl.NumRows())

	selected, err := selector.Apply(tbl, BuildCriteria(cmd))
	if err != nil {
		return err
	}
	log.Debugf("%s selected %v", tar.CommandName, selected.ColumnNames())

	return tar.Render(ctx, cmd, selected, output.OptionsFromCommand(cmd))
}

// NewTableActionRunner creates a TableActionRunner for the named command.
func NewTableActionRunner(
	commandName string,
	render func(context.Context, *cli.Command, *table.Table, output.Options) error,
) *TableActionRunner {
	return &TableActionRunner{
		CommandName: commandName,
		Render:      render,
	}
}
