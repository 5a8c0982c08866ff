package fold_test

import (
	"errors"
	"math"
	"testing"

	"github.com/d-giles/phase-folder/fold"
	"github.com/d-giles/phase-folder/internal/testutil"
	"github.com/d-giles/phase-folder/lightcurve"
	"github.com/d-giles/phase-folder/simulate"
)

func mustCurve(t *testing.T, times, flux []float64, opts ...lightcurve.Option) *lightcurve.Curve {
	t.Helper()

	c, err := lightcurve.New(times, flux, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return c
}

func TestFold_KnownPhases(t *testing.T) {
	c := mustCurve(t, []float64{0, 1, 2, 3}, []float64{1, 1, 1, 1})

	folded, err := fold.Fold(c, fold.Params{Period: 2})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, folded.Phase, []float64{0, 0.5, 0, 0.5}, 1e-12)
}

func TestFold_PhaseRange(t *testing.T) {
	gen := simulate.NewGenerator(simulate.WithSeed(7), simulate.WithCadence(0.01), simulate.WithNoise(0.01), simulate.WithJitter(0.4))

	c, err := gen.Sinusoid(2.5, 0.1, 20)
	if err != nil {
		t.Fatalf("Sinusoid: %v", err)
	}

	t.Run("zero-to-one", func(t *testing.T) {
		folded, err := fold.Fold(c, fold.Params{Period: 2.5, Epoch: 3.3})
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}

		testutil.RequireInRange(t, folded.Phase, 0, 1)
	})

	t.Run("centered", func(t *testing.T) {
		folded, err := fold.Fold(c, fold.Params{Period: 2.5, Epoch: 3.3, Norm: fold.NormCentered})
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}

		testutil.RequireInRange(t, folded.Phase, -0.5, 0.5)
	})
}

func TestFold_CenteredConvention(t *testing.T) {
	c := mustCurve(t, []float64{0.5, 1.5}, []float64{1, 1})

	folded, err := fold.Fold(c, fold.Params{Period: 2, Norm: fold.NormCentered})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}

	// Phase 0.25 stays, phase 0.75 wraps to -0.25.
	testutil.RequireSliceNearlyEqual(t, folded.Phase, []float64{0.25, -0.25}, 1e-12)
}

func TestFold_Idempotent(t *testing.T) {
	c := mustCurve(t, []float64{0.1, 1.7, 4.9, 12.3}, []float64{1, 2, 3, 4})
	p := fold.Params{Period: 1.37, Epoch: 0.4}

	first, err := fold.Fold(c, p)
	if err != nil {
		t.Fatalf("first Fold: %v", err)
	}

	second, err := fold.Fold(c, p)
	if err != nil {
		t.Fatalf("second Fold: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, first.Phase, second.Phase, 0)
	testutil.RequireSliceNearlyEqual(t, first.Flux, second.Flux, 0)
}

func TestFold_EpochShiftByPeriod(t *testing.T) {
	c := mustCurve(t, []float64{0.1, 1.7, 4.9, 12.3, 100.2}, []float64{1, 2, 3, 4, 5})

	const period = 1.37

	base, err := fold.Fold(c, fold.Params{Period: period, Epoch: 0.4})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}

	shifted, err := fold.Fold(c, fold.Params{Period: period, Epoch: 0.4 + period})
	if err != nil {
		t.Fatalf("Fold shifted: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, base.Phase, shifted.Phase, 1e-9)
}

func TestFold_SingleObservation(t *testing.T) {
	c := mustCurve(t, []float64{42.5}, []float64{1})

	folded, err := fold.Fold(c, fold.Params{Period: 3, Epoch: 42.5})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}

	if folded.Phase[0] != 0 {
		t.Fatalf("phase at epoch: got %g, want 0", folded.Phase[0])
	}
}

func TestFold_InvalidParameters(t *testing.T) {
	c := mustCurve(t, []float64{0, 1}, []float64{1, 1})

	for _, period := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := fold.Fold(c, fold.Params{Period: period}); !errors.Is(err, fold.ErrInvalidPeriod) {
			t.Errorf("period %g: got %v, want ErrInvalidPeriod", period, err)
		}
	}

	if _, err := fold.Fold(c, fold.Params{Period: 1, Epoch: math.NaN()}); !errors.Is(err, fold.ErrInvalidEpoch) {
		t.Errorf("NaN epoch: got %v, want ErrInvalidEpoch", err)
	}

	var empty *lightcurve.Curve
	if _, err := fold.Fold(empty, fold.Params{Period: 1}); !errors.Is(err, lightcurve.ErrEmptyCurve) {
		t.Errorf("empty curve: got %v, want ErrEmptyCurve", err)
	}
}

func TestFold_KeepsInputOrderAndColumns(t *testing.T) {
	c := mustCurve(t,
		[]float64{3, 1, 2},
		[]float64{30, 10, 20},
		lightcurve.WithFluxErr([]float64{0.3, 0.1, 0.2}),
	)

	folded, err := fold.Fold(c, fold.Params{Period: 10})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, folded.Flux, []float64{30, 10, 20}, 0)
	testutil.RequireSliceNearlyEqual(t, folded.FluxErr, []float64{0.3, 0.1, 0.2}, 0)

	// Result is a copy, not a view.
	folded.Flux[0] = -1

	if c.Flux[0] != 30 {
		t.Fatalf("Fold aliases the source flux")
	}
}

func TestFolded_SortByPhase(t *testing.T) {
	c := mustCurve(t,
		[]float64{0, 1, 2, 3},
		[]float64{10, 11, 12, 13},
		lightcurve.WithFluxErr([]float64{1, 2, 3, 4}),
	)

	folded, err := fold.Fold(c, fold.Params{Period: 2})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}

	folded.SortByPhase()

	testutil.RequireSliceNearlyEqual(t, folded.Phase, []float64{0, 0, 0.5, 0.5}, 1e-12)
	// Stable: equal phases keep time order.
	testutil.RequireSliceNearlyEqual(t, folded.Flux, []float64{10, 12, 11, 13}, 0)
	testutil.RequireSliceNearlyEqual(t, folded.FluxErr, []float64{1, 3, 2, 4}, 0)
}
