package gate

// Gate identifiers reported in Result.GateID.
const (
	ID11 = "GATE11"
	ID22 = "GATE22"
	ID33 = "GATE33"
	ID44 = "GATE44"
)

// Detail keys placed in Result.Details.
const (
	KeyHas432    = "has_432"
	KeyHas838776 = "has_838_776"
	KeyPiPhi     = "pi_phi"
	KeyBridge    = "f_bridge"
	KeyStamp     = "stamp"
	KeyValue     = "value"
	KeyNu0       = "nu0_hz"
)

// reasonOK is the Reason of every eligible Result.
const reasonOK = "OK"

// Result is the immutable outcome of one gate check.
//
// Fields:
//   - GateID   — one of ID11..ID44.
//   - Eligible — true when the gate and all its prerequisites passed.
//   - Reason   — "OK" or the first failing condition.
//   - Details  — diagnostic values (anchor flags, invariants, offending value).
type Result struct {
	GateID   string         `yaml:"gate_id"`
	Eligible bool           `yaml:"eligible"`
	Reason   string         `yaml:"reason"`
	Details  map[string]any `yaml:"details,omitempty"`
}

// config collects optional requirements for Check11.
type config struct {
	require432 bool
	require838 bool
}

// Option customizes Check11.
type Option func(*config)

// Require432 makes a missing 432 Hz anchor an ineligibility.
func Require432() Option {
	return func(c *config) { c.require432 = true }
}

// Require838 makes a missing 838.776 Hz anchor an ineligibility.
func Require838() Option {
	return func(c *config) { c.require838 = true }
}
