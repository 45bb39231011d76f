// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other tblsel packages to avoid import cycles.

package version

import "runtime/debug"

// stamped is set by release builds:
//
//	go build -ldflags "-X github.com/tfctl/tblsel/internal/version.stamped=v1.2.3"
var stamped string

// Version is the release version, the module version from build info, or
// "dev".
var Version = resolve(stamped, debug.ReadBuildInfo)

func resolve(stamp string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if stamp != "" {
		return stamp
	}
	if info, ok := buildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
