// Package simulate generates synthetic light curves for tests, demos,
// and benchmarks.
//
// A [Generator] produces deterministic curves from a seed, so repeated
// runs see identical data. Cadence, timestamp jitter, and white noise
// are configured once per generator via options.
package simulate

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/d-giles/phase-folder/lightcurve"
)

// Default cadence: two minutes expressed in days (TESS short cadence).
const defaultCadence = 2.0 / (60 * 24)

// Generator creates deterministic synthetic light curves from a shared
// configuration.
type Generator struct {
	seed    int64
	cadence float64
	jitter  float64
	noise   float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise and jitter.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithCadence sets the nominal sampling interval in time units.
func WithCadence(cadence float64) Option {
	return func(g *Generator) {
		if cadence > 0 {
			g.cadence = cadence
		}
	}
}

// WithJitter sets timestamp jitter as a fraction of the cadence,
// making the sampling uneven.
func WithJitter(fraction float64) Option {
	return func(g *Generator) {
		if fraction >= 0 {
			g.jitter = fraction
		}
	}
}

// WithNoise sets the white-noise standard deviation added to the flux.
func WithNoise(sigma float64) Option {
	return func(g *Generator) {
		if sigma >= 0 {
			g.noise = sigma
		}
	}
}

// NewGenerator creates a configured light-curve generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed:    1,
		cadence: defaultCadence,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Binary describes a synthetic eclipsing binary: a flat unit baseline
// with box-shaped primary and secondary eclipses half a cycle apart.
type Binary struct {
	Period         float64
	Epoch          float64 // mid-time of a primary eclipse
	PrimaryDepth   float64
	SecondaryDepth float64
	Duty           float64 // eclipse duration as a fraction of the period
}

// EclipsingBinary generates an eclipsing-binary light curve spanning
// the given time range.
func (g *Generator) EclipsingBinary(b Binary, span float64) (*lightcurve.Curve, error) {
	if b.Period <= 0 {
		return nil, fmt.Errorf("simulate: binary period must be > 0: %g", b.Period)
	}

	if b.Duty <= 0 || b.Duty >= 0.5 {
		return nil, fmt.Errorf("simulate: binary duty must be in (0, 0.5): %g", b.Duty)
	}

	if b.PrimaryDepth < 0 || b.SecondaryDepth < 0 {
		return nil, fmt.Errorf("simulate: eclipse depths must be >= 0")
	}

	return g.sample(span, func(t float64) float64 {
		cycles := (t - b.Epoch) / b.Period
		phase := cycles - math.Floor(cycles)

		half := b.Duty / 2

		switch {
		case phase < half || phase >= 1-half:
			return 1 - b.PrimaryDepth
		case phase >= 0.5-half && phase < 0.5+half:
			return 1 - b.SecondaryDepth
		default:
			return 1
		}
	})
}

// Sinusoid generates a sinusoidal variable with unit baseline flux.
func (g *Generator) Sinusoid(period, amplitude, span float64) (*lightcurve.Curve, error) {
	if period <= 0 {
		return nil, fmt.Errorf("simulate: sinusoid period must be > 0: %g", period)
	}

	return g.sample(span, func(t float64) float64 {
		return 1 + amplitude*math.Sin(2*math.Pi*t/period)
	})
}

// Constant generates a flat curve at the given flux level.
func (g *Generator) Constant(level, span float64) (*lightcurve.Curve, error) {
	return g.sample(span, func(float64) float64 {
		return level
	})
}

// sample evaluates model over [0, span] at the configured cadence,
// applying jitter and noise.
func (g *Generator) sample(span float64, model func(t float64) float64) (*lightcurve.Curve, error) {
	if span <= 0 {
		return nil, fmt.Errorf("simulate: span must be > 0: %g", span)
	}

	n := int(span/g.cadence) + 1
	if n < 2 {
		return nil, fmt.Errorf("simulate: span %g shorter than cadence %g", span, g.cadence)
	}

	rng := rand.New(rand.NewSource(g.seed))

	times := make([]float64, n)
	flux := make([]float64, n)

	for i := range times {
		t := float64(i) * g.cadence
		if g.jitter > 0 {
			t += (rng.Float64() - 0.5) * g.jitter * g.cadence
		}

		times[i] = t

		f := model(t)
		if g.noise > 0 {
			f += rng.NormFloat64() * g.noise
		}

		flux[i] = f
	}

	return lightcurve.New(times, flux, lightcurve.WithLabel("synthetic"))
}
