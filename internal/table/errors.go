// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTable is wrapped by every construction error below so callers
	// can test for a malformed table with errors.Is.
	ErrInvalidTable = errors.New("invalid table")

	ErrDuplicateColumn = func(name string) error {
		return fmt.Errorf("%w: duplicate column %s", ErrInvalidTable, name)
	}
	ErrRaggedColumn = func(name string, want, got int) error {
		return fmt.Errorf("%w: column %s has %d values, want %d", ErrInvalidTable, name, got, want)
	}
	ErrRowWidth = func(row, want, got int) error {
		return fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidTable, row, got, want)
	}
)
