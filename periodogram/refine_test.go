package periodogram_test

import (
	"errors"
	"math"
	"testing"

	"github.com/d-giles/phase-folder/lightcurve"
	"github.com/d-giles/phase-folder/periodogram"
	"github.com/d-giles/phase-folder/simulate"
)

func TestRefine_SharpensSinusoidPeriod(t *testing.T) {
	const period = 2.5

	c := sineCurve(t, period)

	got, err := periodogram.Refine(c, 2.4, periodogram.RefineConfig{})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}

	if math.Abs(got-period) > 0.02 {
		t.Fatalf("Refine: got %g, want %g +- 0.02", got, period)
	}

	if math.Abs(got-period) >= math.Abs(2.4-period) {
		t.Fatalf("Refine did not improve the guess: %g", got)
	}
}

func TestRefine_RecoversDoublePeriod(t *testing.T) {
	// An eclipsing binary with unequal eclipse depths: folding at half
	// the true period stacks the two eclipses, so the doubled period
	// must win the final factor-of-two check.
	gen := simulate.NewGenerator(
		simulate.WithSeed(5),
		simulate.WithCadence(0.01),
		simulate.WithNoise(0.005),
	)

	c, err := gen.EclipsingBinary(simulate.Binary{
		Period:         2.0,
		Epoch:          0.3,
		PrimaryDepth:   0.3,
		SecondaryDepth: 0.15,
		Duty:           0.08,
	}, 20)
	if err != nil {
		t.Fatalf("EclipsingBinary: %v", err)
	}

	got, err := periodogram.Refine(c, 1.0, periodogram.RefineConfig{})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}

	if math.Abs(got-2.0) > 0.05 {
		t.Fatalf("Refine from the half-period alias: got %g, want 2.0 +- 0.05", got)
	}
}

func TestRefine_IgnoresFlaggedSamples(t *testing.T) {
	const period = 2.5

	c := sineCurve(t, period)

	// Append a wildly wrong but flagged sample.
	times := append(append([]float64(nil), c.Time...), 10.005)
	flux := append(append([]float64(nil), c.Flux...), 50)
	quality := make([]int32, len(times))
	quality[len(quality)-1] = 8

	flagged, err := lightcurve.New(times, flux, lightcurve.WithQuality(quality))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := periodogram.Refine(flagged, 2.4, periodogram.RefineConfig{})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}

	if math.Abs(got-period) > 0.02 {
		t.Fatalf("Refine with flagged outlier: got %g, want %g +- 0.02", got, period)
	}
}

func TestRefine_InvalidPeriod(t *testing.T) {
	c := sineCurve(t, 2.5)

	for _, period := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := periodogram.Refine(c, period, periodogram.RefineConfig{}); !errors.Is(err, periodogram.ErrInvalidPeriod) {
			t.Errorf("period %g: got %v, want ErrInvalidPeriod", period, err)
		}
	}
}

func TestRefine_InsufficientData(t *testing.T) {
	c, err := lightcurve.New(
		[]float64{0, 1, 2, 3, 4},
		[]float64{1, 2, 1, 2, 1},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Five samples cannot support the default 13-point median filter.
	if _, err := periodogram.Refine(c, 2, periodogram.RefineConfig{}); !errors.Is(err, periodogram.ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}
}

func TestDefaultRefineConfig(t *testing.T) {
	cfg := periodogram.DefaultRefineConfig()

	if cfg.MinPeriod <= 0 || cfg.MaxPeriod <= cfg.MinPeriod {
		t.Fatalf("bad default period bounds: %+v", cfg)
	}

	if cfg.MedianWidth%2 == 0 {
		t.Fatalf("default median width must be odd: %d", cfg.MedianWidth)
	}
}
