package gate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glyphos/kernel"
)

// isPosFinite reports x is finite and strictly positive.
func isPosFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}

// fail builds an ineligible Result.
func fail(id, reason string, details map[string]any) Result {
	if details == nil {
		details = map[string]any{}
	}

	return Result{GateID: id, Eligible: false, Reason: reason, Details: details}
}

// prereqFailed builds the Result of a tier whose prerequisite did not pass.
func prereqFailed(id string, prereq Result) Result {
	return fail(id, fmt.Sprintf("Prereq %s failed: %s", prereq.GateID, prereq.Reason), prereq.Details)
}

// merge returns a fresh map holding base overlaid by extra.
func merge(extra, base map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}

	return out
}

// Check11 validates the raw inputs and reports anchor presence.
//
// Checks, in order: ν0 positive finite, ν non-empty, a non-empty, every ν[i]
// positive finite, every a[j] positive finite, then the optional anchor
// requirements. Details always carry has_432 and has_838_776 once the
// numeric checks pass.
// Complexity: O(N + K).
func Check11(nu, a []float64, nu0 float64, opts ...Option) Result {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if !isPosFinite(nu0) {
		return fail(ID11, "nu0_hz must be finite and > 0", map[string]any{KeyNu0: nu0})
	}
	if len(nu) == 0 {
		return fail(ID11, "nu_i_hz must be non-empty", nil)
	}
	if len(a) == 0 {
		return fail(ID11, "a_j must be non-empty", nil)
	}
	for i, v := range nu {
		if !isPosFinite(v) {
			return fail(ID11, fmt.Sprintf("nu_i_hz[%d] must be finite and > 0", i), map[string]any{KeyValue: v})
		}
	}
	for j, v := range a {
		if !isPosFinite(v) {
			return fail(ID11, fmt.Sprintf("a_j[%d] must be finite and > 0", j), map[string]any{KeyValue: v})
		}
	}

	details := map[string]any{
		KeyHas432:    kernel.HasAnchor(nu, kernel.F432, kernel.AnchorTolHz),
		KeyHas838776: kernel.HasAnchor(nu, kernel.F838776, kernel.AnchorTolHz),
	}
	if cfg.require432 && !details[KeyHas432].(bool) {
		return fail(ID11, "432 Hz anchor required but missing", details)
	}
	if cfg.require838 && !details[KeyHas838776].(bool) {
		return fail(ID11, "838.776 Hz anchor required but missing", details)
	}

	return Result{GateID: ID11, Eligible: true, Reason: reasonOK, Details: details}
}

// Check22 requires GATE11 and verifies the π_φ and bridge invariants.
func Check22(nu, a []float64, nu0 float64) Result {
	g11 := Check11(nu, a, nu0)
	if !g11.Eligible {
		return prereqFailed(ID22, g11)
	}

	piPhi := kernel.GoldenPi(kernel.Phi)
	fb := kernel.BridgeFrequency(kernel.F432, kernel.Pi, kernel.Phi)
	inv := map[string]any{KeyPiPhi: piPhi, KeyBridge: fb}
	if !isPosFinite(piPhi) || !isPosFinite(fb) {
		return fail(ID22, "Invariant computation failed", inv)
	}

	return Result{GateID: ID22, Eligible: true, Reason: reasonOK, Details: merge(inv, g11.Details)}
}

// Check33 requires GATE22. It adds no numeric condition of its own.
func Check33(nu, a []float64, nu0 float64) Result {
	g22 := Check22(nu, a, nu0)
	if !g22.Eligible {
		return prereqFailed(ID33, g22)
	}

	return Result{
		GateID:   ID33,
		Eligible: true,
		Reason:   reasonOK,
		Details:  merge(map[string]any{KeyStamp: "Gate33 active (minimal)"}, g22.Details),
	}
}

// Check44 requires GATE11 with both anchors present, then GATE22.
func Check44(nu, a []float64, nu0 float64) Result {
	g11 := Check11(nu, a, nu0, Require432(), Require838())
	if !g11.Eligible {
		return prereqFailed(ID44, g11)
	}
	g22 := Check22(nu, a, nu0)
	if !g22.Eligible {
		return prereqFailed(ID44, g22)
	}

	return Result{
		GateID:   ID44,
		Eligible: true,
		Reason:   reasonOK,
		Details:  merge(map[string]any{KeyStamp: "Gate44 publish-ready"}, g22.Details),
	}
}

// Check dispatches on a tier label. Unknown tiers are reported ineligible.
func Check(tier kernel.Tier, nu, a []float64, nu0 float64) Result {
	switch tier {
	case kernel.Gate11:
		return Check11(nu, a, nu0)
	case kernel.Gate22:
		return Check22(nu, a, nu0)
	case kernel.Gate33:
		return Check33(nu, a, nu0)
	case kernel.Gate44:
		return Check44(nu, a, nu0)
	default:
		return fail(fmt.Sprintf("GATE%d", int(tier)), "unknown gate tier", nil)
	}
}

// Chain evaluates every tier in ascending order.
func Chain(nu, a []float64, nu0 float64) []Result {
	tiers := []kernel.Tier{kernel.Gate11, kernel.Gate22, kernel.Gate33, kernel.Gate44}
	out := make([]Result, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, Check(t, nu, a, nu0))
	}

	return out
}

// String renders a compact one-line form, e.g. "GATE11 eligible=true (OK)".
func (r Result) String() string {
	return fmt.Sprintf("%s eligible=%t (%s)", r.GateID, r.Eligible, r.Reason)
}
