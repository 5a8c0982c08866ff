package fold

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/d-giles/phase-folder/lightcurve"
)

// Errors returned by folding functions.
var (
	ErrInvalidPeriod = errors.New("fold: period must be a positive finite number")
	ErrInvalidEpoch  = errors.New("fold: epoch must be finite")
)

// Normalization selects the phase range of a folded curve.
type Normalization int

const (
	// NormZeroToOne places phases in [0, 1).
	NormZeroToOne Normalization = iota

	// NormCentered places phases in [-0.5, 0.5), putting the epoch at
	// the center of the plot.
	NormCentered
)

// Params describes one folding operation.
//
// Period must be strictly positive. Epoch is the reference time that
// maps to phase zero; the zero value folds relative to t = 0.
type Params struct {
	Period float64
	Epoch  float64
	Norm   Normalization
}

// Folded is a phase-folded view of a light curve.
//
// Phase[i] is the phase of the i-th input observation, in the range
// selected by Norm. Flux and FluxErr are copies of the input columns,
// so the result stays valid independently of the source curve.
// Observations keep their input order until [Folded.SortByPhase] is
// called.
type Folded struct {
	Phase   []float64
	Flux    []float64
	FluxErr []float64
	Label   string

	Period float64
	Epoch  float64
	Norm   Normalization
}

// Fold phase-folds a light curve.
//
// Each observation's phase is the fractional part of
// (time - epoch) / period, normalized into the range selected by
// p.Norm. Returns [ErrInvalidPeriod] when the period is zero, negative,
// or non-finite, and [lightcurve.ErrEmptyCurve] for an empty curve.
func Fold(c *lightcurve.Curve, p Params) (*Folded, error) {
	if c.Len() == 0 {
		return nil, lightcurve.ErrEmptyCurve
	}

	if err := validate(p); err != nil {
		return nil, err
	}

	out := &Folded{
		Phase:  make([]float64, c.Len()),
		Flux:   append([]float64(nil), c.Flux...),
		Label:  c.Label,
		Period: p.Period,
		Epoch:  p.Epoch,
		Norm:   p.Norm,
	}

	if c.FluxErr != nil {
		out.FluxErr = append([]float64(nil), c.FluxErr...)
	}

	for i, t := range c.Time {
		out.Phase[i] = phaseOf(t, p)
	}

	return out, nil
}

func validate(p Params) error {
	if p.Period <= 0 || math.IsNaN(p.Period) || math.IsInf(p.Period, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidPeriod, p.Period)
	}

	if math.IsNaN(p.Epoch) || math.IsInf(p.Epoch, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidEpoch, p.Epoch)
	}

	return nil
}

// phaseOf maps a single time onto its normalized phase.
func phaseOf(t float64, p Params) float64 {
	cycles := (t - p.Epoch) / p.Period

	phase := cycles - math.Floor(cycles) // [0, 1)
	if phase >= 1 {
		// Guard against frac rounding up to exactly 1 for values
		// infinitesimally below a cycle boundary.
		phase = 0
	}

	if p.Norm == NormCentered && phase >= 0.5 {
		phase--
	}

	return phase
}

// Len returns the number of folded observations.
func (f *Folded) Len() int {
	if f == nil {
		return 0
	}

	return len(f.Phase)
}

// SortByPhase reorders observations in place by ascending phase. The
// sort is stable, so equal phases keep their time order.
func (f *Folded) SortByPhase() {
	if f.Len() < 2 {
		return
	}

	idx := make([]int, f.Len())
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return f.Phase[idx[a]] < f.Phase[idx[b]]
	})

	reorder(f.Phase, idx)
	reorder(f.Flux, idx)

	if f.FluxErr != nil {
		reorder(f.FluxErr, idx)
	}
}

func reorder(x []float64, idx []int) {
	tmp := make([]float64, len(x))
	for i, j := range idx {
		tmp[i] = x[j]
	}

	copy(x, tmp)
}
