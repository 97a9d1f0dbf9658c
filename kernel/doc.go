// Package kernel holds the read-only constants and closed-form laws of the
// GlyphOS MJLOG kernel: canonical anchors, the golden-pi ratio, the bridge
// frequency, the harmonic ladder, path geometry and spectral peak predictions.
//
// What:
//
//   - Constants: Phi, Pi, C, HBar, Eps0 (fixed; never reassigned at runtime).
//   - Anchors:   F432, F838776 and the tolerance AnchorTolHz used by HasAnchor.
//   - Tiers:     Gate11..Gate44 are validation stage labels, not frequencies.
//   - Laws:      GoldenPi, BridgeFrequency, LadderRatio, HarmonicLadder.
//   - Geometry:  ControlPathLength, EffectivePathLength.
//   - Spectrum:  PeakFrequencyControl, PeakFrequencyPhi, PeakFrequencies.
//
// Every function is a pure one-line formula; no input validation is done
// here. Callers that need guarded inputs go through package gate or mjlog.
//
// Note on the ladder: with the canonical constants the ratio
// r = Pi / GoldenPi(Phi) ≈ 0.99903 is slightly below one, so the ladder
// descends as n grows. Use LadderRatio to check direction before relying on it.
package kernel
