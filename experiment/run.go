package experiment

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/glyphos/gate"
	"github.com/katalvlaran/glyphos/minors"
	"github.com/katalvlaran/glyphos/mjlog"
)

// Run executes the validation scenario described by cfg.
//
// Stages, all drawing from one generator seeded with cfg.Seed:
//  1. Nodes random positions, uniform in the unit cube of len(Source) dimensions.
//  2. GATE11 and GATE44 on (ν, a, ν0). Ineligibility is reported, not fatal.
//  3. BuildRetarded → SampleMinors → R and magnitude quantiles.
//  4. PhaseScramble control → SampleMinors → RScrambled.
//  5. TauShuffle control → rebuilt matrix → SampleMinors → RTauShuffled.
//  6. PhaseGradientProxy per column over NearestEdges(X, Neighbors).
//  7. Optional phase histogram when Plot.Path is set.
func Run(cfg *Config, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rep := &Report{ID: uuid.New(), Seed: cfg.Seed, Nodes: cfg.Nodes}
	log := logger.With(zap.String("run", rep.ID.String()), zap.Int64("seed", cfg.Seed))

	x := randomPositions(rng, cfg.Nodes, len(cfg.Source))
	nu := cfg.ResolvedFrequencies()

	rep.Gate11 = gate.Check11(nu, cfg.Scales, cfg.Nu0)
	rep.Gate44 = gate.Check44(nu, cfg.Scales, cfg.Nu0)
	for _, g := range []gate.Result{rep.Gate11, rep.Gate44} {
		if !g.Eligible {
			log.Warn("gate not eligible", zap.String("gate", g.GateID), zap.String("reason", g.Reason))
			continue
		}
		log.Debug("gate eligible", zap.String("gate", g.GateID))
	}

	ret, err := mjlog.BuildRetarded(x, nu, cfg.Scales, cfg.Nu0, cfg.Source, cfg.Speed, cfg.Time)
	if err != nil {
		return nil, fmt.Errorf("build retarded matrix: %w", err)
	}
	log.Debug("matrix built", zap.Int("rows", ret.M.Rows()), zap.Int("cols", ret.M.Cols()))

	orig, err := minors.SampleMinors(ret.M, cfg.Samples, rng)
	if err != nil {
		return nil, fmt.Errorf("sample minors: %w", err)
	}
	rep.R = minors.MeanResultantLength(orig.Phases)
	rep.Phases = orig.Phases
	qs, err := minors.Quantiles(orig.Magnitudes, cfg.Quantiles)
	if err != nil {
		return nil, fmt.Errorf("magnitude quantiles: %w", err)
	}
	for k, p := range cfg.Quantiles {
		rep.Quantiles = append(rep.Quantiles, Quantile{Level: p, Value: qs[k]})
	}
	log.Info("minor stats", zap.Float64("R", rep.R), zap.Int("samples", orig.Len()))

	scr, err := minors.PhaseScramble(ret.M, rng)
	if err != nil {
		return nil, fmt.Errorf("phase scramble: %w", err)
	}
	ctrl, err := minors.SampleMinors(scr, cfg.Samples, rng)
	if err != nil {
		return nil, fmt.Errorf("sample scrambled minors: %w", err)
	}
	rep.RScrambled = minors.MeanResultantLength(ctrl.Phases)
	log.Info("phase scramble control", zap.Float64("R", rep.RScrambled))

	rTau, err := tauShuffleControl(ret.Tau, nu, cfg, rng)
	if err != nil {
		return nil, err
	}
	rep.RTauShuffled = rTau
	log.Info("tau shuffle control", zap.Float64("R", rep.RTauShuffled))

	if cfg.Neighbors > 0 {
		edges := NearestEdges(x, cfg.Neighbors)
		rep.GradientProxy = make([]float64, len(cfg.Scales))
		for j := range cfg.Scales {
			g, err := minors.PhaseGradientProxy(ret.Theta, x, edges, j)
			if err != nil {
				return nil, fmt.Errorf("phase gradient proxy: %w", err)
			}
			rep.GradientProxy[j] = g
		}
		log.Debug("gradient proxy", zap.Int("edges", len(edges)), zap.Float64s("per_column", rep.GradientProxy))
	}

	if cfg.Plot.Path != "" {
		if err := SaveHistogram(cfg.Plot.Path, "MJLOG minor phases", orig.Phases, cfg.Plot.Bins); err != nil {
			return nil, err
		}
		log.Info("histogram saved", zap.String("path", cfg.Plot.Path))
	}

	return rep, nil
}

// tauShuffleControl rebuilds the matrix from permuted delays and returns its R.
func tauShuffleControl(tau, nu []float64, cfg *Config, rng *rand.Rand) (float64, error) {
	shuffled := minors.TauShuffle(tau, rng)
	theta, err := mjlog.RetardedPhaseMatrix(cfg.Scales, shuffled, cfg.Nu0, cfg.Time, nil)
	if err != nil {
		return 0, fmt.Errorf("tau shuffle phase matrix: %w", err)
	}
	m, err := mjlog.BuildMatrix(nu, cfg.Scales, cfg.Nu0, theta)
	if err != nil {
		return 0, fmt.Errorf("tau shuffle matrix: %w", err)
	}
	s, err := minors.SampleMinors(m, cfg.Samples, rng)
	if err != nil {
		return 0, fmt.Errorf("sample tau-shuffled minors: %w", err)
	}

	return minors.MeanResultantLength(s.Phases), nil
}

// randomPositions draws n points uniform in [0,1)^dim.
func randomPositions(rng *rand.Rand, n, dim int) [][]float64 {
	x := make([][]float64, n)
	for i := range x {
		x[i] = make([]float64, dim)
		for d := range x[i] {
			x[i][d] = rng.Float64()
		}
	}

	return x
}
