// SPDX-License-Identifier: MIT

// Package minors is the Monte-Carlo validation harness for MJLOG matrices.
//
// What:
//
//   - SampleMinors draws random 2x2 minors (two distinct rows × two distinct
//     columns) and records |det| and arg(det) for each draw.
//   - MeanResultantLength reduces a set of phases to R ∈ [0, 1]
//     (1 = all phases identical, 0 = uniformly dispersed).
//   - PhaseScramble keeps every |M[i][j]| and redraws its phase uniformly on
//     (−π, π]: the null-hypothesis control with the amplitude structure intact.
//   - TauShuffle permutes a delay vector (exchangeable-delays null).
//   - PhaseGradientProxy estimates local phase-gradient magnitude along a
//     caller-supplied edge list.
//   - Compare runs the R(original) vs R(scrambled) significance check.
//
// Randomness:
//
//	Every stochastic function takes an explicit *rand.Rand which is advanced
//	monotonically and never reset. A nil generator falls back to a local one
//	seeded with DefaultSeed, so results are reproducible either way. There is
//	no package-level generator.
//
// Edge cases:
//
//	Empty inputs are neutral (0 or empty slices), not errors. SampleMinors
//	fails only when a draw is impossible (fewer than two rows or columns).
package minors
