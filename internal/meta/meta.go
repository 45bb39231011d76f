// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/tfctl/tblsel/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// the loaded configuration, the context, and the reader standing in for stdin
// when the table source is "-".
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Stdin   io.Reader
}

// Command returns the subcommand name, or "" when none was given.
func (m Meta) Command() string {
	if len(m.Args) > 1 {
		return m.Args[1]
	}
	return ""
}
