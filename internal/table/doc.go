// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package table holds the in-memory table that tblsel reads, selects from and
// writes. A Table is an ordered set of uniquely named columns of equal length;
// it is immutable once built. Tables are made with New (column-major),
// FromRows (row-major) or a Builder (records with varying keys).
//
// Table satisfies selector.Projector, and Select binds a selector to it:
//
//	sel := t.Select().EndsWith("_end")
//	again := sel.Select().EndsWith("_end") // same columns as sel
package table
