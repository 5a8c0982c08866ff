package periodogram

import (
	"errors"

	"github.com/d-giles/phase-folder/lightcurve"
)

// Errors returned by period-search functions.
var (
	ErrInsufficientData = errors.New("periodogram: too few observations")
	ErrInvalidPeriod    = errors.New("periodogram: period must be a positive finite number")
	ErrNoBaseline       = errors.New("periodogram: curve has no time baseline")
)

// Default search bounds in input time units (days for TESS data).
const (
	defaultMinPeriod  = 0.042
	defaultMaxPeriod  = 15.0
	defaultOversample = 300

	defaultBins    = 200
	defaultMinDuty = 0.01
	defaultMaxDuty = 0.3
)

// Config bounds the period search.
//
// MinPeriod and MaxPeriod limit the trial-period range; Oversample
// controls the frequency-grid density relative to the curve's time
// baseline. Bins, MinDuty, and MaxDuty apply to [BoxLeastSquares]
// only: the phase-bin count and the box-duration range as a fraction
// of the trial period.
type Config struct {
	MinPeriod  float64
	MaxPeriod  float64
	Oversample int

	Bins    int
	MinDuty float64
	MaxDuty float64
}

// DefaultConfig returns the default search bounds.
func DefaultConfig() Config {
	return normalizeConfig(Config{})
}

func normalizeConfig(cfg Config) Config {
	if cfg.MinPeriod <= 0 {
		cfg.MinPeriod = defaultMinPeriod
	}

	if cfg.MaxPeriod <= 0 {
		cfg.MaxPeriod = defaultMaxPeriod
	}

	if cfg.MaxPeriod < cfg.MinPeriod {
		cfg.MinPeriod, cfg.MaxPeriod = cfg.MaxPeriod, cfg.MinPeriod
	}

	if cfg.Oversample <= 0 {
		cfg.Oversample = defaultOversample
	}

	if cfg.Bins <= 0 {
		cfg.Bins = defaultBins
	}

	if cfg.MinDuty <= 0 {
		cfg.MinDuty = defaultMinDuty
	}

	if cfg.MaxDuty <= 0 || cfg.MaxDuty > 0.5 {
		cfg.MaxDuty = defaultMaxDuty
	}

	if cfg.MaxDuty < cfg.MinDuty {
		cfg.MinDuty, cfg.MaxDuty = cfg.MaxDuty, cfg.MinDuty
	}

	return cfg
}

// Result is a periodogram: trial periods and the power of each.
type Result struct {
	Period []float64
	Power  []float64
}

// PeriodAtMaxPower returns the trial period with the highest power,
// the standard initial period guess. Returns 0 for an empty result.
func (r *Result) PeriodAtMaxPower() float64 {
	period, _ := r.Peak()

	return period
}

// Peak returns the trial period with the highest power and that power.
func (r *Result) Peak() (period, power float64) {
	if r == nil || len(r.Period) == 0 {
		return 0, 0
	}

	best := 0
	for i, p := range r.Power {
		if p > r.Power[best] {
			best = i
		}
	}

	return r.Period[best], r.Power[best]
}

// trialFrequencies builds the oversampled frequency grid for a curve
// with the given time baseline. Periods longer than the baseline are
// unconstrained by the data, so the upper period bound is clamped to
// the baseline.
func trialFrequencies(cfg Config, baseline float64) ([]float64, error) {
	if baseline <= 0 {
		return nil, ErrNoBaseline
	}

	maxPeriod := cfg.MaxPeriod
	if maxPeriod > baseline {
		maxPeriod = baseline
	}

	if maxPeriod <= cfg.MinPeriod {
		return nil, ErrNoBaseline
	}

	fMin := 1 / maxPeriod
	fMax := 1 / cfg.MinPeriod
	df := 1 / (float64(cfg.Oversample) * baseline)

	n := int((fMax-fMin)/df) + 1

	freqs := make([]float64, 0, n)
	for f := fMin; f <= fMax; f += df {
		freqs = append(freqs, f)
	}

	return freqs, nil
}

// baselineOf returns the time span of a curve.
func baselineOf(c *lightcurve.Curve) float64 {
	minT, maxT := c.TimeSpan()

	return maxT - minT
}
