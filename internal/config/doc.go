// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for tblsel's user
// configuration. The configuration is a YAML document named by
// TBLSEL_CFG_FILE or located in the user's configuration directory:
//   - Linux: $XDG_CONFIG_HOME/tblsel.yaml or $HOME/.config/tblsel.yaml
//   - macOS: $HOME/Library/Application Support/tblsel.yaml
//   - Windows: %APPDATA%/tblsel.yaml
//
// Keys are dotted paths. Lookups prefer the subcommand namespace, so
// "select.output" overrides "output" while running tblsel select. Named
// argument sets live under "<command>.sets.<name>" and are expanded on the
// command line by @name.
package config
