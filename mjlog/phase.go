// SPDX-License-Identifier: MIT

package mjlog

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Phase returns θ = (2πν/c)·L_eff reduced to [0, 2π).
func Phase(nu, lEff, c float64) float64 {
	theta := math.Mod(twoPi*nu/c*lEff, twoPi)
	if theta < 0 {
		theta += twoPi
	}

	return theta
}

// PhaseMatrix returns θ[i][j] = Phase(ν[i], L_eff[j], c).
func PhaseMatrix(nu, lEff []float64, c float64) [][]float64 {
	out := make([][]float64, len(nu))
	for i, v := range nu {
		out[i] = make([]float64, len(lEff))
		for j, l := range lEff {
			out[i][j] = Phase(v, l, c)
		}
	}

	return out
}

// RetardedDelays returns τ[i] = ‖X[i] − x*‖ / v.
//
// Errors: ErrRange when v is not finite and > 0; ErrShape when a row of X
// has a different dimension than x*.
// Complexity: O(N·D).
func RetardedDelays(x [][]float64, xStar []float64, v float64) ([]float64, error) {
	if !isPosFinite(v) {
		return nil, rangeErrorf(opRetardedDelays, "v", v)
	}

	tau := make([]float64, len(x))
	for i, xi := range x {
		if len(xi) != len(xStar) {
			return nil, shapeErrorf(opRetardedDelays, "X[%d] has dimension %d, x* has %d", i, len(xi), len(xStar))
		}
		tau[i] = distance(xi, xStar) / v
	}

	return tau, nil
}

// distance is the Euclidean norm of p − q; callers guarantee equal lengths.
func distance(p, q []float64) float64 {
	var d2 float64
	for k := range p {
		d := p[k] - q[k]
		d2 += d * d
	}

	return math.Sqrt(d2)
}

// Distance returns ‖p − q‖, or ErrShape when the dimensions differ.
func Distance(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, shapeErrorf(opDistance, "dimensions %d and %d differ", len(p), len(q))
	}

	return distance(p, q), nil
}

// RetardedPhaseMatrix returns θ[i][j] = Ω[j]·(t − τ[i]) + ψ[j] with Ω[j] = 2π·ν0·a[j].
// A nil ψ is treated as zero for every column.
//
// Errors: ErrShape when len(ψ) != len(a).
// Complexity: O(N·K).
func RetardedPhaseMatrix(a, tau []float64, nu0, t float64, psi []float64) ([][]float64, error) {
	if psi != nil && len(psi) != len(a) {
		return nil, shapeErrorf(opRetardedPhaseMatrix, "psi has length %d, want len(a)=%d", len(psi), len(a))
	}

	omega := make([]float64, len(a))
	for j, aj := range a {
		omega[j] = twoPi * nu0 * aj
	}

	theta := make([][]float64, len(tau))
	for i, ti := range tau {
		row := make([]float64, len(a))
		for j, om := range omega {
			row[j] = om * (t - ti)
			if psi != nil {
				row[j] += psi[j]
			}
		}
		theta[i] = row
	}

	return theta, nil
}

// BuildRetarded composes RetardedDelays, RetardedPhaseMatrix (ψ = 0) and
// BuildMatrix. Each step validates its own inputs; the first error aborts.
func BuildRetarded(x [][]float64, nu, a []float64, nu0 float64, xStar []float64, v, t float64) (Retarded, error) {
	tau, err := RetardedDelays(x, xStar, v)
	if err != nil {
		return Retarded{}, fmt.Errorf("BuildRetarded: %w", err)
	}
	theta, err := RetardedPhaseMatrix(a, tau, nu0, t, nil)
	if err != nil {
		return Retarded{}, fmt.Errorf("BuildRetarded: %w", err)
	}
	m, err := BuildMatrix(nu, a, nu0, theta)
	if err != nil {
		return Retarded{}, fmt.Errorf("BuildRetarded: %w", err)
	}

	return Retarded{M: m, Theta: theta, Tau: tau}, nil
}
