// Package experiment runs the end-to-end MJLOG validation scenario:
// random node positions, gate checks, the retarded MJLOG matrix, minor
// sampling, and the phase-scramble and tau-shuffle controls.
//
// A run is described by a YAML Config (see Default for every field) and
// produces a Report. Runs are reproducible: one *rand.Rand seeded from
// Config.Seed is threaded through every stochastic step in a fixed order.
//
// Logging goes through an injected *zap.Logger; pass nil for silence.
package experiment
