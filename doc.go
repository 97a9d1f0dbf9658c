// Package glyphos is the GlyphOS MJLOG kernel: deterministic log-amplitude/
// phase matrices, tiered eligibility gates and a Monte-Carlo minor-sampling
// harness for phase-clustering tests.
//
// Under the hood, everything is organized under these subpackages:
//
//	kernel/     — read-only constants, anchors, laws, geometry, spectral peaks
//	gate/       — GATE11..GATE44 eligibility checks returning gate.Result
//	mjlog/      — MJLOG matrix builder and the retarded (delay-driven) variant
//	minors/     — 2x2 minor sampler, mean resultant length, scramble/shuffle controls
//	experiment/ — YAML-configured end-to-end run with report and histogram
//	cmd/glyphos — command line front end
//
// Quick example:
//
//	m, err := mjlog.BuildMatrix(nu, a, kernel.F432, nil)
//	s, err := minors.SampleMinors(m, minors.DefaultSampleCount, rand.New(rand.NewSource(0)))
//	R := minors.MeanResultantLength(s.Phases)
//
// All library functions are pure given their inputs and an explicit
// *rand.Rand; there is no package-level state.
package glyphos
