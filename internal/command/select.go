// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/meta"
	"github.com/tfctl/tblsel/internal/output"
	"github.com/tfctl/tblsel/internal/table"
)

// selectRender writes the selected columns with every row intact.
func selectRender(_ context.Context, cmd *cli.Command, selected *table.Table, opts output.Options) error {
	return output.Spit(selected, opts, writer(cmd))
}

// selectCommandBuilder constructs the cli.Command for "select".
func selectCommandBuilder(meta meta.Meta) *cli.Command {
	return (&TableCommandBuilder{
		Name:      "select",
		Usage:     "select table columns by name",
		UsageText: "tblsel select [SOURCE] [--starts-with P] [--ends-with S] [--contains X] [--matches R] [--columns SPEC] [options]",
		Action:    NewTableActionRunner("select", selectRender).Run,
		Meta:      meta,
	}).Build()
}
