// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source loads tables. A location is a file path, "-" for stdin, or
// an s3://bucket/key URL. The document is decoded according to its Format,
// which is either given or detected from the location's extension.
//
// JSON and YAML documents may take either of two shapes:
//
//   - records: a list of objects, one per row. Columns appear in the order
//     their key is first seen; a record without a key contributes nil.
//   - columns: an object whose every value is a list, one per column, in
//     document order.
//
// For JSON, a gjson path (--root) can point at the table inside a larger
// document, e.g. "data.items".
//
// CSV documents carry a header row. A column whose cells all parse as
// integers becomes int64, one whose cells all parse as numbers becomes
// float64, otherwise values stay strings. Empty cells are nil.
//
// Msgpack documents hold {"columns": [...], "rows": [[...], ...]}, the same
// layout the msgpack writer in package output produces.
package source
