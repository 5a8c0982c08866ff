package lightcurve

import (
	"errors"
	"math"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, ErrEmptyCurve) {
		t.Fatalf("empty input: got %v, want ErrEmptyCurve", err)
	}

	if _, err := New([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("flux mismatch: got %v, want ErrLengthMismatch", err)
	}

	_, err := New([]float64{1, 2}, []float64{1, 2}, WithFluxErr([]float64{0.1}))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("flux_err mismatch: got %v, want ErrLengthMismatch", err)
	}

	_, err = New([]float64{1, 2}, []float64{1, 2}, WithQuality([]int32{0}))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("quality mismatch: got %v, want ErrLengthMismatch", err)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	times := []float64{0, 1, 2}
	flux := []float64{1, 2, 3}

	c, err := New(times, flux)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	times[0] = 99
	flux[0] = 99

	if c.Time[0] != 0 || c.Flux[0] != 1 {
		t.Fatalf("curve aliases caller slices: time[0]=%g flux[0]=%g", c.Time[0], c.Flux[0])
	}
}

func TestClean(t *testing.T) {
	c, err := New(
		[]float64{0, 1, 2, 3},
		[]float64{1.0, 2.0, 3.0, 4.0},
		WithQuality([]int32{0, 8, 0, 128}),
		WithFluxErr([]float64{0.1, 0.2, 0.3, 0.4}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clean, err := c.Clean()
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}

	if clean.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", clean.Len())
	}

	if clean.Time[0] != 0 || clean.Time[1] != 2 {
		t.Fatalf("kept wrong samples: %v", clean.Time)
	}

	if clean.FluxErr[1] != 0.3 {
		t.Fatalf("flux_err not filtered alongside: %v", clean.FluxErr)
	}

	if clean.Quality != nil {
		t.Fatalf("clean curve should drop the quality column")
	}
}

func TestClean_AllFlagged(t *testing.T) {
	c, err := New([]float64{0, 1}, []float64{1, 2}, WithQuality([]int32{1, 2}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Clean(); !errors.Is(err, ErrEmptyCurve) {
		t.Fatalf("all flagged: got %v, want ErrEmptyCurve", err)
	}
}

func TestClean_NoQualityColumn(t *testing.T) {
	c, err := New([]float64{0, 1}, []float64{1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clean, err := c.Clean()
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}

	if clean.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", clean.Len())
	}
}

func TestNormalize(t *testing.T) {
	c, err := New(
		[]float64{0, 1, 2},
		[]float64{90, 100, 110},
		WithFluxErr([]float64{10, 10, 10}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rel, err := c.Normalize(UnitRelative)
	if err != nil {
		t.Fatalf("Normalize relative: %v", err)
	}

	if got := rel.Flux[1]; got != 1 {
		t.Fatalf("relative median flux: got %g, want 1", got)
	}

	if got := rel.FluxErr[0]; math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("relative flux_err: got %g, want 0.1", got)
	}

	ppm, err := c.Normalize(UnitPPM)
	if err != nil {
		t.Fatalf("Normalize ppm: %v", err)
	}

	if got := ppm.Flux[1]; got != 1e6 {
		t.Fatalf("ppm median flux: got %g, want 1e6", got)
	}

	// Source curve untouched.
	if c.Flux[1] != 100 {
		t.Fatalf("Normalize mutated its input: %g", c.Flux[1])
	}
}

func TestNormalize_BadMedian(t *testing.T) {
	c, err := New([]float64{0, 1, 2}, []float64{-1, 0, 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Normalize(UnitRelative); !errors.Is(err, ErrBadMedian) {
		t.Fatalf("zero median: got %v, want ErrBadMedian", err)
	}
}

func TestSortedByTime(t *testing.T) {
	c, err := New(
		[]float64{3, 1, 2},
		[]float64{30, 10, 20},
		WithQuality([]int32{3, 1, 2}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s := c.SortedByTime()

	wantTime := []float64{1, 2, 3}
	for i := range wantTime {
		if s.Time[i] != wantTime[i] {
			t.Fatalf("time order: got %v, want %v", s.Time, wantTime)
		}

		if s.Flux[i] != wantTime[i]*10 {
			t.Fatalf("flux not reordered with time: %v", s.Flux)
		}

		if s.Quality[i] != int32(wantTime[i]) {
			t.Fatalf("quality not reordered with time: %v", s.Quality)
		}
	}

	// Original untouched.
	if c.Time[0] != 3 {
		t.Fatalf("SortedByTime mutated its input: %v", c.Time)
	}
}

func TestTimeSpan(t *testing.T) {
	c, err := New([]float64{5, 1, 3}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	minT, maxT := c.TimeSpan()
	if minT != 1 || maxT != 5 {
		t.Fatalf("TimeSpan: got (%g, %g), want (1, 5)", minT, maxT)
	}
}

func TestMedianOf(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := medianOf(tc.in); got != tc.want {
				t.Fatalf("medianOf(%v): got %g, want %g", tc.in, got, tc.want)
			}
		})
	}
}
