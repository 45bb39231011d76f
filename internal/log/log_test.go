// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestCustomHandler(t *testing.T) {
	tests := []struct {
		name      string
		level     log.Level
		message   string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "debug",
			level:     log.DebugLevel,
			message:   "loading table",
			wantLevel: " D ",
			wantMsg:   "loading table",
		},
		{
			name:      "trace prefix is stripped",
			level:     log.DebugLevel,
			message:   "TRACE: predicate hit",
			wantLevel: " T ",
			wantMsg:   "predicate hit",
		},
		{
			name:      "warn",
			level:     log.WarnLevel,
			message:   "skipping criterion",
			wantLevel: " W ",
			wantMsg:   "skipping criterion",
		},
		{
			name:      "error field is appended",
			level:     log.ErrorLevel,
			message:   "decode failed",
			err:       errors.New("boom"),
			wantLevel: " E ",
			wantMsg:   "decode failed (error=boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &CustomHandler{Writer: &buf}

			entry := &log.Entry{Level: tt.level, Message: tt.message, Fields: log.Fields{}}
			if tt.err != nil {
				entry.Fields["error"] = tt.err
			}

			assert.NoError(t, h.HandleLog(entry))
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), tt.wantMsg)
		})
	}
}

func TestInitLoggerLevels(t *testing.T) {
	tests := []struct {
		env       string
		wantTrace bool
	}{
		{env: "", wantTrace: false},
		{env: "trace", wantTrace: true},
		{env: "TRACE", wantTrace: true},
		{env: "debug", wantTrace: false},
		{env: "bogus", wantTrace: false},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Setenv("TBLSEL_LOG", tt.env)
			InitLogger()
			assert.Equal(t, tt.wantTrace, traceEnabled)
		})
	}
}
