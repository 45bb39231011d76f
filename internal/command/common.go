// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/aws"
	"github.com/tfctl/tblsel/internal/meta"
	"github.com/tfctl/tblsel/internal/selector"
	"github.com/tfctl/tblsel/internal/source"
	"github.com/tfctl/tblsel/internal/table"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// SourceArg returns the table location given on the command line, "-" when
// there is none.
func SourceArg(cmd *cli.Command) string {
	if loc := cmd.Args().First(); loc != "" {
		return loc
	}
	return source.Stdin
}

// LoadTable reads and decodes the command's table source per --format and
// --root, building an S3 client from --region/--profile/--endpoint when the
// source is an s3:// URL.
func LoadTable(ctx context.Context, cmd *cli.Command) (*table.Table, error) {
	format, err := source.ParseFormat(cmd.String("format"))
	if err != nil {
		return nil, err
	}

	var opts []aws.Option
	if r := cmd.String("region"); r != "" {
		opts = append(opts, aws.WithRegion(r))
	}
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, aws.WithProfile(p))
	}
	if e := cmd.String("endpoint"); e != "" {
		opts = append(opts, aws.WithEndpoint(e))
	}

	l := &source.Loader{
		Format:    format,
		Root:      cmd.String("root"),
		Stdin:     GetMeta(cmd).Stdin,
		S3Options: opts,
	}

	loc := SourceArg(cmd)
	log.Debugf("loading table: location=%s format=%s root=%s", loc, format, l.Root)
	return l.Load(ctx, loc)
}

// BuildCriteria collects every criterion given on the command line: the
// dedicated flags first, then the --columns spec.
func BuildCriteria(cmd *cli.Command) []selector.Criterion {
	var criteria []selector.Criterion

	for _, f := range []struct {
		flag    string
		operand string
	}{
		{"starts-with", selector.OpStartsWith},
		{"ends-with", selector.OpEndsWith},
		{"contains", selector.OpContains},
		{"matches", selector.OpMatches},
	} {
		for _, v := range cmd.StringSlice(f.flag) {
			criteria = append(criteria, selector.Criterion{Operand: f.operand, Value: v})
		}
	}

	criteria = append(criteria, selector.ParseCriteria(cmd.String("columns"))...)

	log.Debugf("criteria: %v", criteria)
	return criteria
}

// writer returns the root command's writer, os.Stdout if unset.
func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
