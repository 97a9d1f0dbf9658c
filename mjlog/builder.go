// SPDX-License-Identifier: MIT

package mjlog

import (
	"fmt"
	"math"
	"math/cmplx"
)

// isPosFinite reports x is finite and strictly positive.
func isPosFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}

// isFinite reports x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// BuildMatrix computes M[i][j] = ln((ν[i]/ν0)·a[j]) · exp(i·θ[i][j]).
//
// Implementation:
//   - Stage 1: ν0, every ν[i] and every a[j] must be finite and > 0 (ErrRange).
//   - Stage 2: θ, when given, must be len(ν)×len(a) (ErrShape) with finite entries (ErrDomain).
//   - Stage 3: each log argument must be finite and > 0 (ErrDomain, names i, j and the value).
//
// A nil θ is treated as all zero. Inputs are not modified.
// Complexity: O(N·K).
func BuildMatrix(nu, a []float64, nu0 float64, theta [][]float64) (Matrix, error) {
	if !isPosFinite(nu0) {
		return nil, rangeErrorf(opBuildMatrix, "nu0", nu0)
	}
	for i, v := range nu {
		if !isPosFinite(v) {
			return nil, rangeErrorf(opBuildMatrix, fmt.Sprintf("nu[%d]", i), v)
		}
	}
	for j, v := range a {
		if !isPosFinite(v) {
			return nil, rangeErrorf(opBuildMatrix, fmt.Sprintf("a[%d]", j), v)
		}
	}

	if theta != nil {
		if len(theta) != len(nu) {
			return nil, shapeErrorf(opBuildMatrix, "theta has %d rows, want len(nu)=%d", len(theta), len(nu))
		}
		for i, row := range theta {
			if len(row) != len(a) {
				return nil, shapeErrorf(opBuildMatrix, "theta[%d] has %d columns, want len(a)=%d", i, len(row), len(a))
			}
			for j, th := range row {
				if !isFinite(th) {
					return nil, fmt.Errorf("%s: theta[%d][%d]=%v must be finite: %w", opBuildMatrix, i, j, th, ErrDomain)
				}
			}
		}
	}

	m := make(Matrix, len(nu))
	for i, v := range nu {
		row := make([]complex128, len(a))
		for j, aj := range a {
			arg := (v / nu0) * aj
			if !isPosFinite(arg) {
				return nil, fmt.Errorf("%s: log argument must be finite and > 0 (i=%d, j=%d, nu=%v, nu0=%v, a=%v, arg=%v): %w",
					opBuildMatrix, i, j, v, nu0, aj, arg, ErrDomain)
			}
			amp := math.Log(arg)
			if theta == nil {
				row[j] = complex(amp, 0)
				continue
			}
			row[j] = complex(amp, 0) * cmplx.Exp(complex(0, theta[i][j]))
		}
		m[i] = row
	}

	return m, nil
}
