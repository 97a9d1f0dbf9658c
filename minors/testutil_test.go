// SPDX-License-Identifier: MIT

package minors_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphos/mjlog"
)

// newRNG returns a seeded generator so every test is reproducible.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// retardedFixture builds the reference n-node retarded MJLOG matrix used by
// the harness smoke tests: random positions in the unit square, ν = 432+i,
// a = {1, 1.618, 2, 2.618}, ν0 = 432, x* = (0.5, 0.5), v = 1, t = 0.
func retardedFixture(t testing.TB, rng *rand.Rand, n int) mjlog.Retarded {
	t.Helper()
	x := make([][]float64, n)
	nu := make([]float64, n)
	for i := range x {
		x[i] = []float64{rng.Float64(), rng.Float64()}
		nu[i] = 432.0 + float64(i)
	}
	a := []float64{1.0, 1.618, 2.0, 2.618}
	r, err := mjlog.BuildRetarded(x, nu, a, 432.0, []float64{0.5, 0.5}, 1.0, 0.0)
	require.NoError(t, err)

	return r
}
