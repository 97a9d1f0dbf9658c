package experiment

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistogram renders a histogram of values to path. The image format
// follows the file extension (png, svg, pdf, ...).
func SaveHistogram(path, title string, values []float64, bins int) error {
	if len(values) == 0 {
		return ErrNoSamples
	}
	if bins <= 0 {
		return fmt.Errorf("%w: bins=%d", ErrInvalidConfig, bins)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "arg(det) [rad]"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}

	return nil
}
