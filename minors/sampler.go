// SPDX-License-Identifier: MIT

package minors

import (
	"fmt"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/glyphos/mjlog"
)

const opSampleMinors = "SampleMinors"

// SampleMinors draws count random 2x2 minors of m and returns their
// determinant magnitudes and principal arguments.
//
// Per iteration:
//  1. rows i1 ≠ i2 drawn uniformly without replacement from [0, N);
//  2. columns j1 ≠ j2 drawn the same way from [0, K), independently of the rows;
//  3. d = M[i1][j1]·M[i2][j2] − M[i1][j2]·M[i2][j1];
//  4. append |d| and arg(d) ∈ (−π, π].
//
// Iterations are independent draws sharing one generator stream; rng is
// advanced and never reset. count == 0 returns empty samples for any rectangular shape.
//
// Errors: ErrNegativeCount, ErrShape (ragged m), ErrTooFewIndices (N < 2 or K < 2).
// Complexity: O(count) time, O(count) memory.
func SampleMinors(m mjlog.Matrix, count int, rng *rand.Rand) (Samples, error) {
	if count < 0 {
		return Samples{}, fmt.Errorf("%s: count=%d: %w", opSampleMinors, count, ErrNegativeCount)
	}
	if err := m.Validate(); err != nil {
		return Samples{}, fmt.Errorf("%s: %w: %w", opSampleMinors, ErrShape, err)
	}

	out := Samples{
		Magnitudes: make([]float64, 0, count),
		Phases:     make([]float64, 0, count),
	}
	if count == 0 {
		return out, nil
	}

	n, k := m.Rows(), m.Cols()
	if n < 2 || k < 2 {
		return Samples{}, fmt.Errorf("%s: matrix is %dx%d: %w", opSampleMinors, n, k, ErrTooFewIndices)
	}

	rng = rngOr(rng)
	for s := 0; s < count; s++ {
		i1, i2 := drawPair(rng, n)
		j1, j2 := drawPair(rng, k)
		d := m[i1][j1]*m[i2][j2] - m[i1][j2]*m[i2][j1]
		out.Magnitudes = append(out.Magnitudes, cmplx.Abs(d))
		out.Phases = append(out.Phases, mjlog.Arg(d))
	}

	return out, nil
}

// drawPair returns two distinct indices drawn uniformly without replacement
// from [0, n). The ordered pair is uniform over all n·(n−1) possibilities.
// Requires n >= 2.
func drawPair(rng *rand.Rand, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}

	return a, b
}
