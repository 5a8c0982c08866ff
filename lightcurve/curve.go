package lightcurve

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors returned by curve constructors and transforms.
var (
	ErrEmptyCurve     = errors.New("lightcurve: empty curve")
	ErrLengthMismatch = errors.New("lightcurve: column length mismatch")
	ErrBadMedian      = errors.New("lightcurve: median flux is zero or non-finite")
)

// Unit selects the flux scale produced by [Curve.Normalize].
type Unit int

const (
	// UnitRelative scales flux so the median is 1.
	UnitRelative Unit = iota

	// UnitPPM scales flux so the median is 1e6 (parts per million).
	UnitPPM
)

const ppmScale = 1e6

// Curve is an ordered sequence of brightness observations.
//
// Time and Flux always have equal length. FluxErr and Quality are
// optional; when present they have the same length as Time. A Quality
// value of zero marks a good sample, any other value a flagged one.
// Callers are not required to sort observations by time.
type Curve struct {
	Time    []float64
	Flux    []float64
	FluxErr []float64
	Quality []int32
	Label   string
}

// Option configures optional Curve columns at construction time.
type Option func(*Curve)

// WithFluxErr attaches per-sample flux uncertainties.
func WithFluxErr(fluxErr []float64) Option {
	return func(c *Curve) {
		c.FluxErr = append([]float64(nil), fluxErr...)
	}
}

// WithQuality attaches per-sample quality flags (zero means good).
func WithQuality(quality []int32) Option {
	return func(c *Curve) {
		c.Quality = append([]int32(nil), quality...)
	}
}

// WithLabel sets a display label, typically the source file stem.
func WithLabel(label string) Option {
	return func(c *Curve) {
		c.Label = label
	}
}

// New builds a Curve from time and flux columns, copying all input
// slices. It returns [ErrEmptyCurve] for empty input and
// [ErrLengthMismatch] when any column length disagrees with time.
func New(times, flux []float64, opts ...Option) (*Curve, error) {
	if len(times) == 0 || len(flux) == 0 {
		return nil, ErrEmptyCurve
	}

	if len(times) != len(flux) {
		return nil, fmt.Errorf("%w: time %d vs flux %d", ErrLengthMismatch, len(times), len(flux))
	}

	c := &Curve{
		Time: append([]float64(nil), times...),
		Flux: append([]float64(nil), flux...),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.FluxErr != nil && len(c.FluxErr) != len(c.Time) {
		return nil, fmt.Errorf("%w: time %d vs flux_err %d", ErrLengthMismatch, len(c.Time), len(c.FluxErr))
	}

	if c.Quality != nil && len(c.Quality) != len(c.Time) {
		return nil, fmt.Errorf("%w: time %d vs quality %d", ErrLengthMismatch, len(c.Time), len(c.Quality))
	}

	return c, nil
}

// Len returns the number of observations.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}

	return len(c.Time)
}

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	if c == nil {
		return nil
	}

	out := &Curve{
		Time:  append([]float64(nil), c.Time...),
		Flux:  append([]float64(nil), c.Flux...),
		Label: c.Label,
	}

	if c.FluxErr != nil {
		out.FluxErr = append([]float64(nil), c.FluxErr...)
	}

	if c.Quality != nil {
		out.Quality = append([]int32(nil), c.Quality...)
	}

	return out
}

// Clean returns a copy with all flagged samples (Quality != 0) removed.
// A curve without a quality column is returned as a plain copy. The
// result has no quality column. Returns [ErrEmptyCurve] when no good
// samples remain.
func (c *Curve) Clean() (*Curve, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCurve
	}

	if c.Quality == nil {
		out := c.Clone()
		out.Quality = nil

		return out, nil
	}

	out := &Curve{
		Time:  make([]float64, 0, len(c.Time)),
		Flux:  make([]float64, 0, len(c.Flux)),
		Label: c.Label,
	}

	if c.FluxErr != nil {
		out.FluxErr = make([]float64, 0, len(c.FluxErr))
	}

	for i, q := range c.Quality {
		if q != 0 {
			continue
		}

		out.Time = append(out.Time, c.Time[i])
		out.Flux = append(out.Flux, c.Flux[i])

		if c.FluxErr != nil {
			out.FluxErr = append(out.FluxErr, c.FluxErr[i])
		}
	}

	if len(out.Time) == 0 {
		return nil, ErrEmptyCurve
	}

	return out, nil
}

// Normalize returns a copy with flux divided by the median flux, so the
// median sits at 1 ([UnitRelative]) or 1e6 ([UnitPPM]). Flux
// uncertainties are scaled by the same factor. Returns [ErrBadMedian]
// when the median flux is zero or non-finite.
func (c *Curve) Normalize(unit Unit) (*Curve, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCurve
	}

	med := medianOf(c.Flux)
	if med == 0 || math.IsNaN(med) || math.IsInf(med, 0) {
		return nil, ErrBadMedian
	}

	scale := 1 / med
	if unit == UnitPPM {
		scale *= ppmScale
	}

	out := c.Clone()
	for i := range out.Flux {
		out.Flux[i] *= scale
	}

	for i := range out.FluxErr {
		out.FluxErr[i] *= scale
	}

	return out, nil
}

// SortedByTime returns a copy with observations sorted by ascending
// time. The sort is stable, so simultaneous samples keep their input
// order.
func (c *Curve) SortedByTime() *Curve {
	out := c.Clone()
	if out.Len() < 2 {
		return out
	}

	idx := make([]int, out.Len())
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return out.Time[idx[a]] < out.Time[idx[b]]
	})

	reorderFloat64(out.Time, idx)
	reorderFloat64(out.Flux, idx)

	if out.FluxErr != nil {
		reorderFloat64(out.FluxErr, idx)
	}

	if out.Quality != nil {
		reorderInt32(out.Quality, idx)
	}

	return out
}

// TimeSpan returns the minimum and maximum observation times.
// Both are zero for an empty curve.
func (c *Curve) TimeSpan() (minTime, maxTime float64) {
	if c.Len() == 0 {
		return 0, 0
	}

	minTime = c.Time[0]
	maxTime = c.Time[0]

	for _, t := range c.Time[1:] {
		if t < minTime {
			minTime = t
		}

		if t > maxTime {
			maxTime = t
		}
	}

	return minTime, maxTime
}

// medianOf returns the median of x without modifying it.
func medianOf(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	tmp := append([]float64(nil), x...)
	sort.Float64s(tmp)

	mid := len(tmp) / 2
	if len(tmp)%2 == 1 {
		return tmp[mid]
	}

	return (tmp[mid-1] + tmp[mid]) / 2
}

func reorderFloat64(x []float64, idx []int) {
	tmp := make([]float64, len(x))
	for i, j := range idx {
		tmp[i] = x[j]
	}

	copy(x, tmp)
}

func reorderInt32(x []int32, idx []int) {
	tmp := make([]int32, len(x))
	for i, j := range idx {
		tmp[i] = x[j]
	}

	copy(x, tmp)
}
