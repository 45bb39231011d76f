// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"errors"
	"fmt"
)

// ErrUnknownOperand is returned for a criterion whose operand is not one of
// ^ $ @ or /.
var ErrUnknownOperand = errors.New("unknown column operand")

// PatternError reports a column pattern that is not a valid regular
// expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid column pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
