// SPDX-License-Identifier: MIT

package minors

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/glyphos/mjlog"
)

// uniformPhase draws a phase uniformly on (−π, π].
func uniformPhase(rng *rand.Rand) float64 {
	return math.Pi - 2*math.Pi*rng.Float64()
}

// PhaseScramble returns a new matrix of the same shape where every cell keeps
// |M[i][j]| and receives an independent phase uniform on (−π, π]. Cells are
// visited row-major, one draw each. m is not modified.
//
// Errors: ErrShape for a ragged matrix.
// Complexity: O(N·K).
func PhaseScramble(m mjlog.Matrix, rng *rand.Rand) (mjlog.Matrix, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("PhaseScramble: %w: %w", ErrShape, err)
	}

	rng = rngOr(rng)
	out := make(mjlog.Matrix, len(m))
	for i, row := range m {
		out[i] = make([]complex128, len(row))
		for j, z := range row {
			out[i][j] = cmplx.Rect(cmplx.Abs(z), uniformPhase(rng))
		}
	}

	return out, nil
}

// TauShuffle returns a uniformly random permutation of tau (Fisher–Yates).
// The input is copied, never reordered in place.
func TauShuffle(tau []float64, rng *rand.Rand) []float64 {
	out := append(make([]float64, 0, len(tau)), tau...)
	rngOr(rng).Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// Compare samples count minors from m and from PhaseScramble(m), in that
// order on the same generator, and reports both mean resultant lengths.
func Compare(m mjlog.Matrix, count int, rng *rand.Rand) (Comparison, error) {
	rng = rngOr(rng)

	orig, err := SampleMinors(m, count, rng)
	if err != nil {
		return Comparison{}, fmt.Errorf("Compare: %w", err)
	}
	scr, err := PhaseScramble(m, rng)
	if err != nil {
		return Comparison{}, fmt.Errorf("Compare: %w", err)
	}
	ctrl, err := SampleMinors(scr, count, rng)
	if err != nil {
		return Comparison{}, fmt.Errorf("Compare: %w", err)
	}

	r := MeanResultantLength(orig.Phases)
	r2 := MeanResultantLength(ctrl.Phases)

	return Comparison{R: r, RScrambled: r2, Delta: r - r2}, nil
}
