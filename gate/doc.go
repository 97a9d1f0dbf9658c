// Package gate implements the tiered validation gates of the MJLOG kernel.
//
// A gate is a named pass/fail check over a frequency vector ν, a scale
// vector a and a reference frequency ν0. Tiers have growing prerequisite
// chains:
//
//	GATE11  inputs are non-empty, finite and positive (optional anchor requirements)
//	GATE22  GATE11 + the π_φ and bridge invariants evaluate to positive finite values
//	GATE33  GATE22 (minimal stamp)
//	GATE44  GATE11 with both anchors required + GATE22 ("publish-ready")
//
// Ineligibility is not an error. Every Check returns a Result with
// Eligible=false and a human readable Reason, so callers can branch on it.
// Invariant: Check44 eligible ⇒ Check22 and Check11 eligible for the same inputs.
package gate
