// SPDX-License-Identifier: MIT

package minors

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glyphos/mjlog"
)

// PhaseGradientProxy estimates the local phase-gradient magnitude of column j
// of theta along the given edges:
//
//	mean over edges (i,k) with ‖X[i] − X[k]‖ > 0 of |WrapPi(θ[i][j] − θ[k][j])| / ‖X[i] − X[k]‖
//
// Zero-distance edges are skipped; when none remain the result is 0. The
// edge list is used as given; no adjacency is built here.
//
// Errors: ErrIndexOutOfRange for an endpoint outside theta/X or a column j
// outside a row of theta; ErrShape when two endpoints differ in dimension.
// Complexity: O(E·D).
func PhaseGradientProxy(theta, x [][]float64, edges [][2]int, j int) (float64, error) {
	var (
		acc float64
		n   int
	)
	for _, e := range edges {
		i, k := e[0], e[1]
		if err := checkEndpoint(theta, x, i, j); err != nil {
			return 0, err
		}
		if err := checkEndpoint(theta, x, k, j); err != nil {
			return 0, err
		}

		dist, err := mjlog.Distance(x[i], x[k])
		if err != nil {
			return 0, fmt.Errorf("PhaseGradientProxy: edge (%d,%d): %w: %w", i, k, ErrShape, err)
		}
		if dist <= 0 {
			continue
		}
		acc += math.Abs(WrapPi(theta[i][j]-theta[k][j])) / dist
		n++
	}
	if n == 0 {
		return 0, nil
	}

	return acc / float64(n), nil
}

// checkEndpoint validates row index i and column j against theta and x.
func checkEndpoint(theta, x [][]float64, i, j int) error {
	if i < 0 || i >= len(theta) || i >= len(x) {
		return fmt.Errorf("PhaseGradientProxy: row %d: %w", i, ErrIndexOutOfRange)
	}
	if j < 0 || j >= len(theta[i]) {
		return fmt.Errorf("PhaseGradientProxy: column %d: %w", j, ErrIndexOutOfRange)
	}

	return nil
}
