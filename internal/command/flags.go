// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/output"
	"github.com/tfctl/tblsel/internal/source"
)

// NewGlobalFlags returns the rendering, input and S3 flags shared by every
// table command. When cfgFile is set, flags that make sense as user defaults
// also read <ns>.<flag> and then <flag> from it.
func NewGlobalFlags(ns string, cfgFile string) (flags []cli.Flag) {
	format := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"F"},
		Usage:   "input format, one of " + joinValues(source.Formats),
		Value:   string(source.FormatAuto),
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}

	out := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format, one of " + joinValues(output.Formats),
		Value:   output.FormatText,
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	padding := &cli.IntFlag{
		Name:    "padding",
		Aliases: []string{"p"},
		Usage:   "extra space between text output columns",
		Value:   0,
		Validator: func(value int) error {
			return FlagValidators(value, PaddingValidator)
		},
	}

	titles := &cli.BoolFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show titles with text output",
		Value:   false,
	}

	region := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region for s3:// sources",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TBLSEL_REGION"),
		),
	}

	profile := &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared config profile for s3:// sources",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TBLSEL_PROFILE"),
		),
	}

	endpoint := &cli.StringFlag{
		Name:   "endpoint",
		Usage:  "S3 endpoint override, for S3-compatible stores",
		Hidden: true,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TBLSEL_S3_ENDPOINT"),
		),
	}

	if cfgFile != "" {
		for name, chain := range map[string]*cli.ValueSourceChain{
			format.Name:  &format.Sources,
			out.Name:     &out.Sources,
			padding.Name: &padding.Sources,
			titles.Name:  &titles.Sources,
			region.Name:  &region.Sources,
			profile.Name: &profile.Sources,
		} {
			nameSpacedValueChainFromConfigFile(ns, cfgFile, name, chain)
		}
	}

	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		endpoint,
		format,
		out,
		padding,
		profile,
		region,
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "path to the table inside a JSON document, e.g. data.items",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort rows by",
		},
		titles,
	}

	return
}

// NewCriteriaFlags returns the column criteria flags. Each may be repeated and
// every value narrows the selection further.
func NewCriteriaFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "columns",
			Aliases: []string{"C"},
			Usage:   "comma-separated column criteria: ^prefix, $suffix, @substring, /regexp",
		},
		&cli.StringSliceFlag{
			Name:    "contains",
			Aliases: []string{"i"},
			Usage:   "keep columns whose name contains `SUBSTRING`",
		},
		&cli.StringSliceFlag{
			Name:    "ends-with",
			Aliases: []string{"e"},
			Usage:   "keep columns whose name ends with `SUFFIX`",
		},
		&cli.StringSliceFlag{
			Name:    "matches",
			Aliases: []string{"m"},
			Usage:   "keep columns whose name matches `REGEXP` anywhere",
		},
		&cli.StringSliceFlag{
			Name:    "starts-with",
			Aliases: []string{"b"},
			Usage:   "keep columns whose name starts with `PREFIX`",
		},
	}
}

// nameSpacedValueChainFromConfigFile adds namespaced and global config file
// sources to the given Sources chain.
func nameSpacedValueChainFromConfigFile(ns, path, name string, chain *cli.ValueSourceChain) {
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}

// RepeatableFlags returns every name and alias of the criteria flags that may
// be given more than once, in command line form ("--contains", "-i").
func RepeatableFlags() map[string]bool {
	names := map[string]bool{}
	for _, f := range NewCriteriaFlags() {
		if _, ok := f.(*cli.StringSliceFlag); !ok {
			continue
		}
		for _, n := range f.Names() {
			if len(n) == 1 {
				names["-"+n] = true
			} else {
				names["--"+n] = true
			}
		}
	}
	return names
}
