// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders tables as aligned text, JSON, YAML, CSV or msgpack,
// with optional row sorting for display.
package output
