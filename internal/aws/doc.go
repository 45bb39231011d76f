// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws reads table documents stored as S3 objects, addressed as
// s3://bucket/key.
package aws
