// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/output"
	"github.com/tfctl/tblsel/internal/source"
)

// ErrRootNeedsJSON is returned when --root is combined with a non-JSON input.
var ErrRootNeedsJSON = errors.New("--root only applies to json input")

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks flag combinations that no single flag validator
// can see.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.String("root") == "" {
		return nil
	}

	format := source.Format(c.String("format"))
	if format == "" || format == source.FormatAuto {
		format = source.DetectFormat(c.Args().First())
	}
	if format != source.FormatJSON {
		return fmt.Errorf("%w, got %s", ErrRootNeedsJSON, format)
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, fmt.Sprint(value)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func FormatValidator(value any) error {
	if _, err := source.ParseFormat(fmt.Sprint(value)); err != nil {
		return fmt.Errorf("must be one of %v", source.Formats)
	}
	return nil
}

func PaddingValidator(value any) error {
	if n, ok := value.(int); ok && n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func joinValues[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, "|")
}
