// SPDX-License-Identifier: MIT

package mjlog_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphos/mjlog"
)

const tol = 1e-12

// TestBuildMatrix_Scenario checks ν=[432,434], a=[1,1.618], ν0=432 without θ.
func TestBuildMatrix_Scenario(t *testing.T) {
	m, err := mjlog.BuildMatrix([]float64{432, 434}, []float64{1.0, 1.618}, 432.0, nil)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	assert.Equal(t, complex(0, 0), m[0][0], "ln(1) is exactly zero")
	assert.InDelta(t, math.Log(1.618), real(m[0][1]), tol)
	assert.InDelta(t, 0.4812, real(m[0][1]), 1e-4)
	assert.InDelta(t, math.Log(434.0/432.0), real(m[1][0]), tol)
	assert.InDelta(t, 0.00462, real(m[1][0]), 1e-5)
	for _, row := range m {
		for _, z := range row {
			assert.Equal(t, 0.0, imag(z), "no θ means a purely real matrix")
		}
	}
	assert.Equal(t, 0.0, mjlog.Arg(m[0][0]), "phase of the zero cell is 0 by convention")
}

// TestBuildMatrix_WithTheta checks magnitude/phase composition per cell.
func TestBuildMatrix_WithTheta(t *testing.T) {
	nu := []float64{2, 4}
	a := []float64{1, 3}
	theta := [][]float64{{0, math.Pi / 2}, {-math.Pi / 3, math.Pi}}
	m, err := mjlog.BuildMatrix(nu, a, 1, theta)
	require.NoError(t, err)

	for i := range nu {
		for j := range a {
			amp := math.Log(nu[i] * a[j])
			assert.InDelta(t, amp, cmplx.Abs(m[i][j]), 1e-12)
			assert.InDelta(t, amp*math.Cos(theta[i][j]), real(m[i][j]), 1e-12)
			assert.InDelta(t, amp*math.Sin(theta[i][j]), imag(m[i][j]), 1e-12)
		}
	}
	assert.InDelta(t, math.Pi, mjlog.Arg(m[1][1]), 1e-9)
}

// TestBuildMatrix_Errors covers range, shape and domain failures.
func TestBuildMatrix_Errors(t *testing.T) {
	nu := []float64{432, 434}
	a := []float64{1, 2}
	tests := []struct {
		name  string
		nu    []float64
		a     []float64
		nu0   float64
		theta [][]float64
		want  error
	}{
		{"nu0 zero", nu, a, 0, nil, mjlog.ErrRange},
		{"nu0 negative", nu, a, -1, nil, mjlog.ErrDomain},
		{"nu0 NaN", nu, a, math.NaN(), nil, mjlog.ErrRange},
		{"nu0 Inf", nu, a, math.Inf(1), nil, mjlog.ErrRange},
		{"nu negative", []float64{432, -1}, a, 1, nil, mjlog.ErrRange},
		{"scale zero", nu, []float64{1, 0}, 1, nil, mjlog.ErrRange},
		{"scale negative", nu, []float64{-2}, 1, nil, mjlog.ErrDomain},
		{"theta rows", nu, a, 1, [][]float64{{0, 0}}, mjlog.ErrShape},
		{"theta cols", nu, a, 1, [][]float64{{0, 0}, {0}}, mjlog.ErrShape},
		{"theta NaN", nu, a, 1, [][]float64{{0, 0}, {0, math.NaN()}}, mjlog.ErrDomain},
		{"log arg overflow", []float64{math.MaxFloat64}, []float64{math.MaxFloat64}, 1e-300, nil, mjlog.ErrDomain},
		{"log arg underflow", []float64{1e-300}, []float64{1e-300}, 1e300, nil, mjlog.ErrDomain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mjlog.BuildMatrix(tc.nu, tc.a, tc.nu0, tc.theta)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, m, "no partial result on error")
		})
	}
}

// TestBuildMatrix_ErrorNamesCell checks the log-argument error carries the
// first failing cell in row-major order.
func TestBuildMatrix_ErrorNamesCell(t *testing.T) {
	tests := []struct {
		name string
		nu   []float64
		a    []float64
		cell string
	}{
		// (1e-300/1e300)·1e-300 underflows to 0 in the first cell.
		{"first cell", []float64{1e-300}, []float64{1e-300}, "i=0, j=0"},
		// (1/1e300)·1 = 1e-300 is fine; (1/1e300)·1e-300 underflows.
		{"second column", []float64{1, 1e-300}, []float64{1, 1e-300}, "i=0, j=1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mjlog.BuildMatrix(tc.nu, tc.a, 1e300, nil)
			require.ErrorIs(t, err, mjlog.ErrDomain)
			assert.Contains(t, err.Error(), tc.cell)
		})
	}
}

// TestRetardedDelays checks distances divided by speed and the error paths.
func TestRetardedDelays(t *testing.T) {
	x := [][]float64{{0, 0}, {3, 4}, {1, 1}}
	tau, err := mjlog.RetardedDelays(x, []float64{0, 0}, 2)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]float64{0, 2.5, math.Sqrt2 / 2}, tau, cmpopts.EquateApprox(0, 1e-12)))

	_, err = mjlog.RetardedDelays(x, []float64{0, 0}, 0)
	assert.ErrorIs(t, err, mjlog.ErrRange)
	_, err = mjlog.RetardedDelays(x, []float64{0, 0}, -3)
	assert.ErrorIs(t, err, mjlog.ErrDomain)
	_, err = mjlog.RetardedDelays([][]float64{{0, 0}, {1, 2, 3}}, []float64{0, 0}, 1)
	assert.ErrorIs(t, err, mjlog.ErrShape)

	tau, err = mjlog.RetardedDelays(nil, []float64{0, 0}, 1)
	require.NoError(t, err)
	assert.Empty(t, tau)
}

// TestRetardedPhaseMatrix checks θ = Ω(t − τ) + ψ cell by cell.
func TestRetardedPhaseMatrix(t *testing.T) {
	a := []float64{1, 2}
	tau := []float64{0, 0.25}
	const nu0, tt = 1.0, 1.0

	theta, err := mjlog.RetardedPhaseMatrix(a, tau, nu0, tt, nil)
	require.NoError(t, err)
	want := [][]float64{
		{2 * math.Pi, 4 * math.Pi},
		{1.5 * math.Pi, 3 * math.Pi},
	}
	assert.Empty(t, cmp.Diff(want, theta, cmpopts.EquateApprox(0, 1e-12)))

	theta, err = mjlog.RetardedPhaseMatrix(a, tau, nu0, tt, []float64{0.5, -0.5})
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi+0.5, theta[0][0], tol)
	assert.InDelta(t, 3*math.Pi-0.5, theta[1][1], tol)

	_, err = mjlog.RetardedPhaseMatrix(a, tau, nu0, tt, []float64{1})
	assert.ErrorIs(t, err, mjlog.ErrShape)
}

// TestDistance covers the norm and the dimension check.
func TestDistance(t *testing.T) {
	d, err := mjlog.Distance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	_, err = mjlog.Distance([]float64{0, 0}, []float64{1})
	require.ErrorIs(t, err, mjlog.ErrShape)
	assert.Contains(t, err.Error(), "Distance:")
}

// TestBuildRetarded checks the composition matches the individual steps.
func TestBuildRetarded(t *testing.T) {
	x := [][]float64{{0.1, 0.2}, {0.9, 0.4}, {0.5, 0.5}}
	nu := []float64{432, 433, 434}
	a := []float64{1, 1.618}
	xStar := []float64{0.5, 0.5}

	r, err := mjlog.BuildRetarded(x, nu, a, 432, xStar, 1, 0)
	require.NoError(t, err)

	tau, _ := mjlog.RetardedDelays(x, xStar, 1)
	theta, _ := mjlog.RetardedPhaseMatrix(a, tau, 432, 0, nil)
	m, _ := mjlog.BuildMatrix(nu, a, 432, theta)
	assert.Equal(t, tau, r.Tau)
	assert.Equal(t, theta, r.Theta)
	assert.Equal(t, m, r.M)
	assert.Equal(t, 0.0, r.Tau[2], "source point has zero delay")

	_, err = mjlog.BuildRetarded(x, nu[:2], a, 432, xStar, 1, 0)
	assert.ErrorIs(t, err, mjlog.ErrShape, "X and ν must pair 1:1")
	_, err = mjlog.BuildRetarded(x, nu, a, 432, xStar, 0, 0)
	assert.ErrorIs(t, err, mjlog.ErrRange)
}

// TestPhase checks wrapping into [0, 2π).
func TestPhase(t *testing.T) {
	assert.InDelta(t, 0.0, mjlog.Phase(1, 1, 1), 1e-12)
	assert.InDelta(t, math.Pi, mjlog.Phase(1, 0.5, 1), 1e-12)
	assert.InDelta(t, 1.5*math.Pi, mjlog.Phase(1, -0.25, 1), 1e-12)

	pm := mjlog.PhaseMatrix([]float64{1, 2}, []float64{0.25, 0.5}, 1)
	require.Len(t, pm, 2)
	assert.InDelta(t, math.Pi/2, pm[0][0], 1e-12)
	assert.InDelta(t, 0.0, pm[1][1], 1e-12)
}

// TestMatrix_Helpers covers Validate, Clone, Abs and Angle.
func TestMatrix_Helpers(t *testing.T) {
	m := mjlog.Matrix{{1, 1i}, {-1, -1i}}
	require.NoError(t, m.Validate())

	c := m.Clone()
	c[0][0] = 5
	assert.Equal(t, complex(1, 0), m[0][0], "clone is deep")

	assert.Equal(t, [][]float64{{1, 1}, {1, 1}}, m.Abs())
	ang := m.Angle()
	assert.InDelta(t, math.Pi, ang[1][0], 1e-12)
	assert.InDelta(t, -math.Pi/2, ang[1][1], 1e-12)

	ragged := mjlog.Matrix{{1, 2}, {3}}
	assert.ErrorIs(t, ragged.Validate(), mjlog.ErrShape)
	assert.Equal(t, 0, mjlog.Matrix(nil).Cols())
}

// TestArg_NegativeZeroImag folds −π onto +π.
func TestArg_NegativeZeroImag(t *testing.T) {
	z := complex(-1, math.Copysign(0, -1))
	assert.Equal(t, math.Pi, mjlog.Arg(z))
}
