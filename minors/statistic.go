// SPDX-License-Identifier: MIT

package minors

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// resultant returns Σcos(p), Σsin(p).
func resultant(phases []float64) (c, s float64) {
	for _, p := range phases {
		c += math.Cos(p)
		s += math.Sin(p)
	}

	return c, s
}

// MeanResultantLength treats every phase p as the unit vector exp(i·p) and
// returns |Σ| / n. The result is in [0, 1] and invariant to a common rotation
// of all phases. Returns 0 for an empty input.
func MeanResultantLength(phases []float64) float64 {
	if len(phases) == 0 {
		return 0
	}
	c, s := resultant(phases)

	return math.Hypot(c, s) / float64(len(phases))
}

// CircularMean returns the direction of the resultant vector in (−π, π].
// Returns 0 for an empty input or a zero resultant.
func CircularMean(phases []float64) float64 {
	c, s := resultant(phases)
	if c == 0 && s == 0 {
		return 0
	}
	mu := math.Atan2(s, c)
	if mu <= -math.Pi {
		return math.Pi
	}

	return mu
}

// CircularVariance returns 1 − R. Empty input gives 1 (no concentration).
func CircularVariance(phases []float64) float64 {
	return 1 - MeanResultantLength(phases)
}

// WrapPi maps x to ((x + π) mod 2π) − π, using a non-negative modulus.
// The result lies in [−π, π).
func WrapPi(x float64) float64 {
	r := math.Mod(x+math.Pi, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}

	return r - math.Pi
}

// Quantiles returns the linearly interpolated empirical quantiles of values
// at each level in ps. values is not modified. An empty values slice yields
// zeros.
//
// Errors: ErrBadProbability when a level is NaN or outside [0, 1].
// Complexity: O(n log n + len(ps)).
func Quantiles(values, ps []float64) ([]float64, error) {
	for _, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("Quantiles: p=%v: %w", p, ErrBadProbability)
		}
	}

	out := make([]float64, len(ps))
	if len(values) == 0 {
		return out, nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	for k, p := range ps {
		out[k] = stat.Quantile(p, stat.LinInterp, sorted, nil)
	}

	return out, nil
}
