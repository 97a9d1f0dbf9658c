// SPDX-License-Identifier: MIT

// Package mjlog builds the MJLOG complex log-amplitude/phase matrix.
//
// What:
//
//	M[i][j] = ln((ν[i]/ν0)·a[j]) · exp(i·θ[i][j])
//
// for a frequency vector ν (rows), a scale vector a (columns), a reference
// frequency ν0 and an optional phase matrix θ (nil means all zero, giving a
// purely real matrix of log-amplitudes).
//
// The retarded variant derives θ from propagation delays to a source point:
//
//	τ[i]    = ‖X[i] − x*‖ / v
//	θ[i][j] = Ω[j]·(t − τ[i]) + ψ[j],   Ω[j] = 2π·ν0·a[j]
//
// Errors:
//
//   - ErrRange  — ν0, ν[i], a[j] or v is not finite and > 0.
//   - ErrDomain — a log argument or a phase entry is not usable.
//   - ErrShape  — paired inputs disagree in length or dimension.
//
// All sentinels are wrapped with the operation name and the offending
// index/value; match them with errors.Is. Nothing here panics on user input
// and no partial results are returned.
//
// Complexity: every builder is O(N·K) time and memory.
package mjlog
