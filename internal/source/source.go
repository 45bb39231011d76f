// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tfctl/tblsel/internal/aws"
	"github.com/tfctl/tblsel/internal/log"
	"github.com/tfctl/tblsel/internal/table"
)

// Stdin is the location that reads the table from standard input.
const Stdin = "-"

// Format names a table document encoding.
type Format string

const (
	FormatAuto    Format = "auto"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatCSV     Format = "csv"
	FormatMsgpack Format = "msgpack"
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatAuto, FormatJSON, FormatYAML, FormatCSV, FormatMsgpack}

// ParseFormat maps a flag value to a Format. The empty string is auto.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatAuto, nil
	}
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", ErrUnknownFormat(s)
}

// DetectFormat picks a Format from the location's extension. Anything
// unrecognised, including stdin, is treated as JSON.
func DetectFormat(location string) Format {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	case ".msgpack", ".mpk":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// Loader reads and decodes tables. The zero value reads files and os.Stdin
// and builds an S3 client on first use.
type Loader struct {
	// Format forces a decoder; FormatAuto or "" detects from the location.
	Format Format
	// Root is a gjson path to the table inside a JSON document.
	Root string
	// Stdin replaces os.Stdin when set.
	Stdin io.Reader
	// S3 serves s3:// locations. When nil a client is built from S3Options.
	S3        aws.ObjectGetter
	S3Options []aws.Option
}

// Load reads location and decodes it into a Table.
func (l *Loader) Load(ctx context.Context, location string) (*table.Table, error) {
	data, err := l.Read(ctx, location)
	if err != nil {
		return nil, err
	}

	format := l.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(location)
	}
	log.Debugf("decoding table: location=%s, format=%s, bytes=%d", location, format, len(data))

	t, err := Decode(data, format, l.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", location, err)
	}

	log.Debugf("table loaded: columns=%d, rows=%d", t.NumColumns(), t.NumRows())
	return t, nil
}

// Read returns the raw bytes at location.
func (l *Loader) Read(ctx context.Context, location string) ([]byte, error) {
	switch {
	case location == Stdin || location == "":
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil

	case aws.IsURL(location):
		if l.S3 == nil {
			client, err := aws.NewClient(ctx, l.S3Options...)
			if err != nil {
				return nil, err
			}
			l.S3 = client
		}
		return aws.Fetch(ctx, l.S3, location)

	default:
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read table: %w", err)
		}
		return data, nil
	}
}

// Decode decodes data in the given format. root only applies to JSON.
func Decode(data []byte, format Format, root string) (*table.Table, error) {
	switch format {
	case FormatJSON, FormatAuto, "":
		return DecodeJSON(data, root)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatCSV:
		return DecodeCSV(data)
	case FormatMsgpack:
		return DecodeMsgpack(data)
	default:
		return nil, ErrUnknownFormat(string(format))
	}
}
