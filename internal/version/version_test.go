// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	info := func(v string) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: v}}, true
		}
	}
	none := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name      string
		stamp     string
		buildInfo func() (*debug.BuildInfo, bool)
		want      string
	}{
		{name: "stamp wins", stamp: "v1.2.3", buildInfo: info("v0.9.0"), want: "v1.2.3"},
		{name: "module version", buildInfo: info("v0.9.0"), want: "v0.9.0"},
		{name: "devel", buildInfo: info("(devel)"), want: "dev"},
		{name: "no build info", buildInfo: none, want: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.stamp, tt.buildInfo))
		})
	}
}
