// SPDX-License-Identifier: MIT

package minors

import "math/rand"

// DefaultSeed seeds the fallback generator used when a nil *rand.Rand is passed.
const DefaultSeed int64 = 0

// DefaultSampleCount is the number of minors drawn by the reference harness.
const DefaultSampleCount = 20000

// Samples holds two parallel sequences, one entry per drawn minor.
type Samples struct {
	Magnitudes []float64 // |det|, each >= 0
	Phases     []float64 // arg(det), each in (−π, π]
}

// Len returns the number of samples.
func (s Samples) Len() int { return len(s.Phases) }

// Comparison is the outcome of the phase-scramble significance check.
type Comparison struct {
	R          float64 // mean resultant length on the original matrix
	RScrambled float64 // mean resultant length on the phase-scrambled control
	Delta      float64 // R − RScrambled
}

// rngOr returns r when present, else a local generator seeded with DefaultSeed.
func rngOr(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}

	return rand.New(rand.NewSource(DefaultSeed))
}
