// SPDX-License-Identifier: MIT

package mjlog

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates a value outside the mathematical domain of the
	// operation, e.g. a non-positive log argument or a non-finite phase.
	ErrDomain = errors.New("mjlog: value outside domain")

	// ErrRange indicates a parameter that must be finite and > 0 is not.
	// It is a domain error for parameter ranges; errors.Is(err, ErrDomain)
	// also holds for it.
	ErrRange = fmt.Errorf("%w: parameter must be finite and > 0", ErrDomain)

	// ErrShape indicates mismatched lengths between paired inputs.
	ErrShape = errors.New("mjlog: shape mismatch")
)

// Operation names used as error prefixes.
const (
	opBuildMatrix         = "BuildMatrix"
	opDistance            = "Distance"
	opRetardedDelays      = "RetardedDelays"
	opRetardedPhaseMatrix = "RetardedPhaseMatrix"
	opValidate            = "Validate"
)

// rangeErrorf reports a parameter outside (0, +Inf).
func rangeErrorf(op, name string, v float64) error {
	return fmt.Errorf("%s: %s=%v: %w", op, name, v, ErrRange)
}

// shapeErrorf reports a length/dimension mismatch.
func shapeErrorf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrShape)
}
