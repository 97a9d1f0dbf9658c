// SPDX-License-Identifier: MIT

package minors_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphos/minors"
	"github.com/katalvlaran/glyphos/mjlog"
)

// TestPhaseScramble_PreservesMagnitude checks shape and |M'| = |M| per cell.
func TestPhaseScramble_PreservesMagnitude(t *testing.T) {
	rng := newRNG(0)
	fx := retardedFixture(t, rng, 12)
	orig := fx.M.Clone()

	scr, err := minors.PhaseScramble(fx.M, rng)
	require.NoError(t, err)
	require.Equal(t, fx.M.Rows(), scr.Rows())
	require.Equal(t, fx.M.Cols(), scr.Cols())
	assert.Equal(t, orig, fx.M, "input is not modified")

	changed := 0
	for i := range scr {
		for j := range scr[i] {
			assert.InDelta(t, cmplx.Abs(fx.M[i][j]), cmplx.Abs(scr[i][j]), 1e-12)
			if math.Abs(mjlog.Arg(scr[i][j])-mjlog.Arg(fx.M[i][j])) > 1e-9 {
				changed++
			}
		}
	}
	assert.Greater(t, changed, fx.M.Rows()*fx.M.Cols()/2, "most phases are redrawn")
}

// TestPhaseScramble_DestroysClustering: a matrix whose minors all share one
// phase loses that clustering once scrambled.
func TestPhaseScramble_DestroysClustering(t *testing.T) {
	m, err := mjlog.BuildMatrix(
		[]float64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37},
		[]float64{1.5, 2, 2.5, 3, 3.5, 4},
		1, nil)
	require.NoError(t, err)

	rng := newRNG(21)
	s, err := minors.SampleMinors(m, 5000, rng)
	require.NoError(t, err)
	for _, p := range s.Phases {
		require.True(t, p == 0 || p == math.Pi, "real matrix has real minors")
	}

	scr, err := minors.PhaseScramble(m, rng)
	require.NoError(t, err)
	ctrl, err := minors.SampleMinors(scr, 5000, rng)
	require.NoError(t, err)
	assert.Less(t, minors.MeanResultantLength(ctrl.Phases), 0.2)
}

// TestPhaseScramble_Errors rejects ragged input and accepts empty input.
func TestPhaseScramble_Errors(t *testing.T) {
	_, err := minors.PhaseScramble(mjlog.Matrix{{1, 2}, {3}}, newRNG(1))
	assert.ErrorIs(t, err, minors.ErrShape)

	out, err := minors.PhaseScramble(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestTauShuffle_Permutation checks multiset equality and input immutability.
func TestTauShuffle_Permutation(t *testing.T) {
	tau := []float64{0.1, 0.5, 0.2, 0.9, 0.5, 0.0, 1.3}
	input := append([]float64(nil), tau...)

	got := minors.TauShuffle(tau, newRNG(4))
	require.Len(t, got, len(tau))
	assert.Equal(t, input, tau, "input is copied, not shuffled in place")

	a := append([]float64(nil), tau...)
	b := append([]float64(nil), got...)
	sort.Float64s(a)
	sort.Float64s(b)
	assert.Equal(t, a, b)

	assert.Empty(t, minors.TauShuffle(nil, newRNG(4)))
	assert.Equal(t, minors.TauShuffle(tau, nil), minors.TauShuffle(tau, newRNG(minors.DefaultSeed)))
}

// TestTauShuffle_RebuildsPhaseMatrix mirrors the exchangeable-delays control.
func TestTauShuffle_RebuildsPhaseMatrix(t *testing.T) {
	rng := newRNG(0)
	fx := retardedFixture(t, rng, 12)
	a := []float64{1.0, 1.618, 2.0, 2.618}

	tau2 := minors.TauShuffle(fx.Tau, rng)
	theta2, err := mjlog.RetardedPhaseMatrix(a, tau2, 432.0, 0.0, nil)
	require.NoError(t, err)
	assert.Len(t, theta2, len(fx.Theta))
}

// TestCompare_Reproducible checks Compare against the manual sequence.
func TestCompare_Reproducible(t *testing.T) {
	fx := retardedFixture(t, newRNG(0), 12)

	got, err := minors.Compare(fx.M, 1500, newRNG(99))
	require.NoError(t, err)

	rng := newRNG(99)
	s, err := minors.SampleMinors(fx.M, 1500, rng)
	require.NoError(t, err)
	scr, err := minors.PhaseScramble(fx.M, rng)
	require.NoError(t, err)
	c, err := minors.SampleMinors(scr, 1500, rng)
	require.NoError(t, err)

	assert.Equal(t, minors.MeanResultantLength(s.Phases), got.R)
	assert.Equal(t, minors.MeanResultantLength(c.Phases), got.RScrambled)
	assert.Equal(t, got.R-got.RScrambled, got.Delta)
	assert.True(t, got.R >= 0 && got.R <= 1)
	assert.True(t, got.RScrambled >= 0 && got.RScrambled <= 1)

	_, err = minors.Compare(mjlog.Matrix{{1, 2}}, 10, nil)
	assert.ErrorIs(t, err, minors.ErrTooFewIndices)
}
