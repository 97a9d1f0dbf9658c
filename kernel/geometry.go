package kernel

import "math"

// ControlPathLength returns L0 = 2·√(R² + H²) for radius R and height H in metres.
func ControlPathLength(radius, height float64) float64 {
	return 2.0 * math.Hypot(radius, height)
}

// EffectivePathLength returns L_eff = L0 · a.
func EffectivePathLength(l0, a float64) float64 {
	return l0 * a
}

// PeakFrequencyControl returns the n-th odd-mode peak (2n+1)·c / (2·L0).
func PeakFrequencyControl(n int, l0, c float64) float64 {
	return float64(2*n+1) * c / (2.0 * l0)
}

// PeakFrequencyPhi returns the golden-ratio shifted peak (2n+1)·c / (2·L0·phi).
func PeakFrequencyPhi(n int, l0, phi, c float64) float64 {
	return float64(2*n+1) * c / (2.0 * l0 * phi)
}

// PeakFrequencies evaluates both predictions for every n in ns, preserving order.
func PeakFrequencies(l0 float64, ns []int, phi, c float64) (control, golden []float64) {
	control = make([]float64, len(ns))
	golden = make([]float64, len(ns))
	for k, n := range ns {
		control[k] = PeakFrequencyControl(n, l0, c)
		golden[k] = PeakFrequencyPhi(n, l0, phi, c)
	}

	return control, golden
}
