// Package webdemo backs the browser demo: an interactive phase-folding
// viewer with a period slider.
//
// The [Engine] holds one loaded light curve and the current folding
// parameters. Folding is recomputed from the pristine curve on every
// request, so repeated parameter changes never accumulate state.
package webdemo

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/d-giles/phase-folder/fold"
	"github.com/d-giles/phase-folder/lightcurve"
	"github.com/d-giles/phase-folder/periodogram"
)

// ErrNoCurve is returned when no light curve has been loaded yet.
var ErrNoCurve = errors.New("webdemo: no light curve loaded")

// Engine drives the interactive viewer.
type Engine struct {
	curve  *lightcurve.Curve
	clean  *lightcurve.Curve
	params fold.Params
}

// NewEngine creates an empty engine with a unit period.
func NewEngine() *Engine {
	return &Engine{
		params: fold.Params{Period: 1},
	}
}

// LoadCSV loads a light curve from CSV bytes, replacing any previous
// curve. Flagged samples are dropped up front so every subsequent fold
// sees clean data.
func (e *Engine) LoadCSV(data []byte) error {
	c, err := lightcurve.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return err
	}

	return e.LoadCurve(c)
}

// LoadCurve loads an in-memory light curve, replacing any previous one.
func (e *Engine) LoadCurve(c *lightcurve.Curve) error {
	clean, err := c.Clean()
	if err != nil {
		return err
	}

	e.curve = c
	e.clean = clean

	// Default epoch: the time of minimum flux, so the deepest eclipse
	// starts centered at phase zero.
	stats := clean.Stats()
	e.params.Epoch = clean.Time[stats.MinPos]

	return nil
}

// Label returns the loaded curve's label, or "" when none is loaded.
func (e *Engine) Label() string {
	if e.curve == nil {
		return ""
	}

	return e.curve.Label
}

// Period returns the current folding period.
func (e *Engine) Period() float64 {
	return e.params.Period
}

// Epoch returns the current reference epoch.
func (e *Engine) Epoch() float64 {
	return e.params.Epoch
}

// SetPeriod sets the folding period.
func (e *Engine) SetPeriod(period float64) error {
	if period <= 0 {
		return fmt.Errorf("%w: %g", fold.ErrInvalidPeriod, period)
	}

	e.params.Period = period

	return nil
}

// SetEpoch sets the reference epoch (phase zero).
func (e *Engine) SetEpoch(epoch float64) {
	e.params.Epoch = epoch
}

// SetCentered switches between the [0,1) and [-0.5,0.5) phase ranges.
func (e *Engine) SetCentered(centered bool) {
	if centered {
		e.params.Norm = fold.NormCentered
	} else {
		e.params.Norm = fold.NormZeroToOne
	}
}

// ScalePeriod multiplies the current period by factor, the viewer's
// "period /2", "period x2", and "period x3" buttons.
func (e *Engine) ScalePeriod(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("webdemo: scale factor must be > 0: %g", factor)
	}

	e.params.Period *= factor

	return nil
}

// Raw returns the loaded curve's time and flux columns for plotting.
func (e *Engine) Raw() (times, flux []float64, err error) {
	if e.clean == nil {
		return nil, nil, ErrNoCurve
	}

	return e.clean.Time, e.clean.Flux, nil
}

// Folded folds the loaded curve at the current parameters, sorted by
// phase for plotting.
func (e *Engine) Folded() (*fold.Folded, error) {
	if e.clean == nil {
		return nil, ErrNoCurve
	}

	folded, err := fold.Fold(e.clean, e.params)
	if err != nil {
		return nil, err
	}

	folded.SortByPhase()

	return folded, nil
}

// Profile returns the folded curve collapsed into n phase bins.
func (e *Engine) Profile(n int) (*fold.Profile, error) {
	folded, err := e.Folded()
	if err != nil {
		return nil, err
	}

	return folded.Bin(n)
}

// BestPeriod runs a period search with the named method ("bls", "ls",
// or "acf"), stores the refined period, and returns it.
func (e *Engine) BestPeriod(method string) (float64, error) {
	if e.curve == nil {
		return 0, ErrNoCurve
	}

	m, err := periodogram.ParseMethod(method)
	if err != nil {
		return 0, err
	}

	period, err := periodogram.FindPeriod(e.curve, m, periodogram.Config{})
	if err != nil {
		return 0, err
	}

	e.params.Period = period

	return period, nil
}

// FoldedCSV renders the current folded curve as CSV, the viewer's save
// button.
func (e *Engine) FoldedCSV() ([]byte, error) {
	folded, err := e.Folded()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := folded.WriteCSV(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
