package experiment

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glyphos/gate"
)

// Quantile is one magnitude quantile of a sampling pass.
type Quantile struct {
	Level float64 `yaml:"level"`
	Value float64 `yaml:"value"`
}

// Report is the outcome of Run.
type Report struct {
	ID    uuid.UUID `yaml:"id"`
	Seed  int64     `yaml:"seed"`
	Nodes int       `yaml:"nodes"`

	Gate11 gate.Result `yaml:"gate11"`
	Gate44 gate.Result `yaml:"gate44"`

	// Statistics on the retarded MJLOG matrix.
	R         float64    `yaml:"r"`
	Quantiles []Quantile `yaml:"quantiles"`

	// Controls. RScrambled uses PhaseScramble; RTauShuffled rebuilds the
	// matrix from a permuted delay vector.
	RScrambled   float64 `yaml:"r_scrambled"`
	RTauShuffled float64 `yaml:"r_tau_shuffled"`

	// GradientProxy holds one value per scale column (empty when disabled).
	GradientProxy []float64 `yaml:"gradient_proxy"`

	// Phases of the original sampling pass, kept for plotting.
	Phases []float64 `yaml:"-"`
}

// String renders the report in the quickstart layout.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s (seed=%d, nodes=%d)\n", r.ID, r.Seed, r.Nodes)
	fmt.Fprintln(&b, r.Gate11)
	fmt.Fprintln(&b, r.Gate44)
	fmt.Fprintf(&b, "Minor stats: R=%.4f ", r.R)
	for _, q := range r.Quantiles {
		fmt.Fprintf(&b, " q%.4g=%.4g", q.Level*100, q.Value)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Phase scramble control: R=%.4f\n", r.RScrambled)
	fmt.Fprintf(&b, "Tau shuffle control: R=%.4f\n", r.RTauShuffled)
	if len(r.GradientProxy) > 0 {
		fmt.Fprintf(&b, "Phase gradient proxy: %.4g\n", r.GradientProxy)
	}

	return b.String()
}

// Save writes the report to path as YAML. Phases are not written.
func (r *Report) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
