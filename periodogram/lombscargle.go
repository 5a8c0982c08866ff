package periodogram

import (
	"fmt"
	"math"

	"github.com/d-giles/phase-folder/lightcurve"
)

// LombScargle computes the generalized (floating-mean) Lomb-Scargle
// periodogram of a light curve over the oversampled trial-frequency
// grid described by cfg. The input need not be evenly sampled or
// sorted. Power is normalized to [0, 1], where 1 means a sinusoid at
// that frequency explains all of the flux variance.
//
// Requires at least three observations and a constant flux column
// yields zero power everywhere.
func LombScargle(c *lightcurve.Curve, cfg Config) (*Result, error) {
	if c.Len() < 3 {
		return nil, fmt.Errorf("%w: lomb-scargle needs >= 3, got %d", ErrInsufficientData, c.Len())
	}

	cfg = normalizeConfig(cfg)

	freqs, err := trialFrequencies(cfg, baselineOf(c))
	if err != nil {
		return nil, err
	}

	n := c.Len()
	w := 1 / float64(n)

	// Weighted flux mean and variance (uniform weights).
	var yMean float64
	for _, y := range c.Flux {
		yMean += y * w
	}

	var yy float64

	for _, y := range c.Flux {
		d := y - yMean
		yy += d * d * w
	}

	res := &Result{
		Period: make([]float64, len(freqs)),
		Power:  make([]float64, len(freqs)),
	}

	for k, f := range freqs {
		res.Period[k] = 1 / f

		if yy == 0 {
			continue
		}

		omega := 2 * math.Pi * f

		// Zechmeister & Kuerster (2009) sums with the mean folded in.
		var cSum, sSum, yc, ys, cc, ss, cs float64

		for i, t := range c.Time {
			sin, cos := math.Sincos(omega * t)
			y := c.Flux[i] - yMean

			cSum += cos * w
			sSum += sin * w
			yc += y * cos * w
			ys += y * sin * w
			cc += cos * cos * w
			ss += sin * sin * w
			cs += cos * sin * w
		}

		cc -= cSum * cSum
		ss -= sSum * sSum
		cs -= cSum * sSum

		d := cc*ss - cs*cs
		if d == 0 {
			continue
		}

		p := (ss*yc*yc + cc*ys*ys - 2*cs*yc*ys) / (yy * d)

		// Numerical noise can push the ratio marginally outside [0, 1].
		if p < 0 {
			p = 0
		} else if p > 1 {
			p = 1
		}

		res.Power[k] = p
	}

	return res, nil
}
