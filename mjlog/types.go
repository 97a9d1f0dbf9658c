// SPDX-License-Identifier: MIT

package mjlog

import (
	"math"
	"math/cmplx"
)

// Matrix is a row-major N×K complex matrix. Rows follow ν, columns follow a.
type Matrix [][]complex128

// Rows returns N.
func (m Matrix) Rows() int { return len(m) }

// Cols returns K (0 for an empty matrix).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Validate reports ErrShape when the matrix is ragged.
func (m Matrix) Validate() error {
	k := m.Cols()
	for i, row := range m {
		if len(row) != k {
			return shapeErrorf(opValidate, "row %d has %d columns, want %d", i, len(row), k)
		}
	}

	return nil
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]complex128(nil), row...)
	}

	return out
}

// Abs returns the per-cell magnitudes |M[i][j]|.
func (m Matrix) Abs() [][]float64 {
	return m.apply(cmplx.Abs)
}

// Angle returns the per-cell principal arguments in (−π, π].
func (m Matrix) Angle() [][]float64 {
	return m.apply(Arg)
}

func (m Matrix) apply(fn func(complex128) float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		for j, z := range row {
			out[i][j] = fn(z)
		}
	}

	return out
}

// Arg returns the principal argument of z in (−π, π]. cmplx.Phase may return
// −π for a negative real with a negative-zero imaginary part; that is folded
// onto +π. Arg(0) is 0.
func Arg(z complex128) float64 {
	p := cmplx.Phase(z)
	if p <= -math.Pi {
		return math.Pi
	}

	return p
}

// Retarded bundles the outputs of BuildRetarded.
type Retarded struct {
	M     Matrix      // MJLOG matrix
	Theta [][]float64 // retarded phase matrix θ
	Tau   []float64   // per-row delays τ
}
