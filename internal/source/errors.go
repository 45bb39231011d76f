// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is wrapped by every error about a document that parsed but
	// does not hold a table.
	ErrShape = errors.New("document is not a table")

	ErrInvalidJSON   = errors.New("invalid json")
	ErrUnknownFormat = func(f string) error { return fmt.Errorf("unknown table format %q", f) }
	ErrRootNotFound  = func(root string) error { return fmt.Errorf("%w: path %s not found", ErrShape, root) }
	ErrNotRecord     = func(row int, kind string) error {
		return fmt.Errorf("%w: row %d is a %s, not an object", ErrShape, row, kind)
	}
	ErrNotColumn = func(name, kind string) error {
		return fmt.Errorf("%w: column %s is a %s, not a list", ErrShape, name, kind)
	}
	ErrTopLevel = func(kind string) error {
		return fmt.Errorf("%w: top level is a %s, want a list of records or an object of columns", ErrShape, kind)
	}
)
