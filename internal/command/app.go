// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/config"
	"github.com/tfctl/tblsel/internal/meta"
)

// InitApp builds the root command. stdin, when not nil, stands in for
// os.Stdin as the "-" table source.
func InitApp(ctx context.Context, args []string, stdin io.Reader) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the tblsel
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is fine, flags keep their defaults.
	cfg, err := config.Load(ns)
	if err != nil {
		log.Debugf("config not loaded: %v", err)
	}

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Stdin:   stdin,
	}

	app := &cli.Command{
		Name:  "tblsel",
		Usage: "select table columns by name",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tblsel version info",
				HideDefault: true,
			},
		},
		// Patterns such as \d{1,3} carry commas.
		DisableSliceFlagSeparator: true,
	}

	app.Commands = append(app.Commands,
		selectCommandBuilder(meta),
		colsCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
