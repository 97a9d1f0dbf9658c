package kernel

import "math"

// Physical and mathematical constants. CODATA values are adequate for v1.0
// and must not change in place after a tagged release.
const (
	// Pi is the circle constant.
	Pi = math.Pi

	// C is the speed of light in vacuum, m/s.
	C = 299_792_458.0

	// HBar is the reduced Planck constant, J·s.
	HBar = 1.054_571_817e-34

	// Eps0 is the vacuum permittivity, F/m.
	Eps0 = 8.854_187_8128e-12
)

// Phi is the golden ratio (1 + √5) / 2.
const Phi = 1.618033988749894848204586834365638117720309

// Canonical anchors.
const (
	// F432 is the base anchor frequency in Hz.
	F432 = 432.0

	// F838776 is the second anchor in Hz (often rounded to 838.78).
	F838776 = 838.776

	// AnchorTolHz is the absolute tolerance used when looking for an anchor.
	AnchorTolHz = 1e-3
)

// Tier labels a validation stage.
type Tier int

// Gate tiers. These are stage labels only.
const (
	Gate11 Tier = 11
	Gate22 Tier = 22
	Gate33 Tier = 33
	Gate44 Tier = 44
)
