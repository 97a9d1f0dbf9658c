package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glyphos/kernel"
	"github.com/katalvlaran/glyphos/minors"
)

// Config describes one validation run.
type Config struct {
	Seed        int64      `yaml:"seed"`
	Nodes       int        `yaml:"nodes"`       // number of random positions (rows)
	Frequencies []float64  `yaml:"frequencies"` // ν; empty = anchors then 432+i
	Scales      []float64  `yaml:"scales"`      // a
	Nu0         float64    `yaml:"nu0"`         // reference frequency, Hz
	Source      []float64  `yaml:"source"`      // x*
	Speed       float64    `yaml:"speed"`       // v
	Time        float64    `yaml:"time"`        // t
	Samples     int        `yaml:"samples"`     // minors per sampling pass
	Quantiles   []float64  `yaml:"quantiles"`   // magnitude quantile levels
	Neighbors   int        `yaml:"neighbors"`   // k for the gradient-proxy edge list; 0 disables
	Plot        PlotConfig `yaml:"plot"`
}

// PlotConfig controls the optional phase histogram.
type PlotConfig struct {
	Path string `yaml:"path"` // PNG/SVG/PDF path; empty disables plotting
	Bins int    `yaml:"bins"`
}

// Default returns the reference scenario: 24 nodes in the unit square,
// five golden-ratio scales, ν0 = 432 Hz, source at the centre, 20000 minors.
func Default() *Config {
	return &Config{
		Seed:      0,
		Nodes:     24,
		Scales:    []float64{1.0, 1.618, 2.0, 2.618, 3.236},
		Nu0:       kernel.F432,
		Source:    []float64{0.5, 0.5},
		Speed:     1.0,
		Time:      0.0,
		Samples:   minors.DefaultSampleCount,
		Quantiles: []float64{0.5, 0.9, 0.95, 0.99},
		Neighbors: 3,
		Plot:      PlotConfig{Bins: 64},
	}
}

// Load reads a YAML config from path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty or missing.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolvedFrequencies returns ν for the run. Explicit frequencies win;
// otherwise the anchors 432 and 838.776 Hz come first followed by 432+i
// for i = 2..Nodes-1.
func (c *Config) ResolvedFrequencies() []float64 {
	if len(c.Frequencies) > 0 {
		return append([]float64(nil), c.Frequencies...)
	}

	nu := make([]float64, 0, c.Nodes)
	for i := 0; i < c.Nodes; i++ {
		switch i {
		case 0:
			nu = append(nu, kernel.F432)
		case 1:
			nu = append(nu, kernel.F838776)
		default:
			nu = append(nu, kernel.F432+float64(i))
		}
	}

	return nu
}

// Validate checks the structural fields. Numeric domain checks on ν, a and
// ν0 are left to the gates and the matrix builder so that they surface as
// gate results and typed errors.
func (c *Config) Validate() error {
	switch {
	case c.Nodes < 2:
		return fmt.Errorf("%w: nodes=%d, need at least 2", ErrInvalidConfig, c.Nodes)
	case len(c.Frequencies) > 0 && len(c.Frequencies) != c.Nodes:
		return fmt.Errorf("%w: %d frequencies for %d nodes", ErrInvalidConfig, len(c.Frequencies), c.Nodes)
	case len(c.Source) == 0:
		return fmt.Errorf("%w: source point is empty", ErrInvalidConfig)
	case c.Samples < 0:
		return fmt.Errorf("%w: samples=%d", ErrInvalidConfig, c.Samples)
	case c.Neighbors < 0:
		return fmt.Errorf("%w: neighbors=%d", ErrInvalidConfig, c.Neighbors)
	case c.Plot.Path != "" && c.Plot.Bins <= 0:
		return fmt.Errorf("%w: plot.bins=%d", ErrInvalidConfig, c.Plot.Bins)
	case c.Plot.Path != "" && c.Samples == 0:
		return fmt.Errorf("%w: plot.path set but samples=0", ErrInvalidConfig)
	}
	for _, p := range c.Quantiles {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: quantile level %v", ErrInvalidConfig, p)
		}
	}

	return nil
}
