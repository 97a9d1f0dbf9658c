// SPDX-License-Identifier: MIT

package minors

import "errors"

var (
	// ErrTooFewIndices indicates a minor cannot be drawn: N < 2 or K < 2.
	ErrTooFewIndices = errors.New("minors: need at least 2 rows and 2 columns")

	// ErrNegativeCount indicates a negative sample count.
	ErrNegativeCount = errors.New("minors: sample count must be >= 0")

	// ErrShape indicates a ragged matrix or mismatched paired inputs.
	ErrShape = errors.New("minors: shape mismatch")

	// ErrIndexOutOfRange indicates an edge endpoint or column index outside its bounds.
	ErrIndexOutOfRange = errors.New("minors: index out of range")

	// ErrBadProbability indicates a quantile level outside [0, 1].
	ErrBadProbability = errors.New("minors: quantile level must be in [0, 1]")
)
