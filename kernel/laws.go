package kernel

import "math"

// HasAnchor reports whether target appears in freqs within ±tol Hz.
// Complexity: O(len(freqs)).
func HasAnchor(freqs []float64, target, tol float64) bool {
	for _, f := range freqs {
		if math.Abs(f-target) <= tol {
			return true
		}
	}

	return false
}

// GoldenPi returns π_φ = 4 / √phi.
func GoldenPi(phi float64) float64 {
	return 4.0 / math.Sqrt(phi)
}

// BridgeFrequency returns f_b = base · (pi / phi).
func BridgeFrequency(base, pi, phi float64) float64 {
	return base * (pi / phi)
}

// Bridge returns the locked v1.0 bridge frequency 432 · (π/φ).
func Bridge() float64 {
	return BridgeFrequency(F432, Pi, Phi)
}

// LadderRatio returns r = pi / π_φ, the per-step ratio of the harmonic ladder.
func LadderRatio(pi, phi float64) float64 {
	return pi / GoldenPi(phi)
}

// HarmonicLadder returns f0 · r^n · φ^m using the canonical Pi and Phi.
func HarmonicLadder(f0 float64, n, m int) float64 {
	return HarmonicLadderWith(f0, n, m, Pi, Phi)
}

// HarmonicLadderWith returns f_(n,m) = f0 · (pi/π_φ)^n · phi^m.
// Negative n or m walk the ladder downwards.
func HarmonicLadderWith(f0 float64, n, m int, pi, phi float64) float64 {
	r := LadderRatio(pi, phi)

	return f0 * math.Pow(r, float64(n)) * math.Pow(phi, float64(m))
}
