package experiment

import "errors"

var (
	// ErrInvalidConfig indicates a Config that cannot describe a run.
	ErrInvalidConfig = errors.New("experiment: invalid config")

	// ErrNoSamples indicates a histogram was requested for an empty sample set.
	ErrNoSamples = errors.New("experiment: no samples to plot")
)
