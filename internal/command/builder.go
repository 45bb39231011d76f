// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/meta"
)

// TableCommandBuilder constructs a cli.Command for the table subcommands
// (select, cols) using a consistent pattern. The builder wires metadata, adds
// the criteria and global flags, and sets up validators.
type TableCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (tcb *TableCommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{}, tcb.Flags...)
	flags = append(flags, NewCriteriaFlags()...)
	flags = append(flags, NewGlobalFlags(tcb.Name, tcb.Meta.Config.Source)...)

	return &cli.Command{
		Name:      tcb.Name,
		Usage:     tcb.Usage,
		UsageText: tcb.UsageText,
		Metadata: map[string]any{
			"meta": tcb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: tcb.Action,
	}
}
