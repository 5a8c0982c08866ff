package periodogram

import (
	"fmt"
	"math"

	"github.com/d-giles/phase-folder/lightcurve"
)

// BoxLeastSquares computes a box least squares periodogram (Kovacs,
// Zucker & Mazeh 2002) over the oversampled trial-frequency grid
// described by cfg.
//
// For each trial period the curve is folded and binned into cfg.Bins
// phase bins, then every circular box between cfg.MinDuty and
// cfg.MaxDuty of the period is tested. Power is the box signal residue
// normalized by the flux variance, so a flat curve scores near zero
// regardless of its absolute flux level.
func BoxLeastSquares(c *lightcurve.Curve, cfg Config) (*Result, error) {
	if c.Len() < 3 {
		return nil, fmt.Errorf("%w: box least squares needs >= 3, got %d", ErrInsufficientData, c.Len())
	}

	cfg = normalizeConfig(cfg)

	freqs, err := trialFrequencies(cfg, baselineOf(c))
	if err != nil {
		return nil, err
	}

	n := c.Len()
	w := 1 / float64(n)

	var yMean float64
	for _, y := range c.Flux {
		yMean += y * w
	}

	var yy float64

	for _, y := range c.Flux {
		d := y - yMean
		yy += d * d * w
	}

	nb := cfg.Bins

	minWidth := int(cfg.MinDuty * float64(nb))
	if minWidth < 1 {
		minWidth = 1
	}

	maxWidth := int(cfg.MaxDuty * float64(nb))
	if maxWidth < minWidth {
		maxWidth = minWidth
	}

	res := &Result{
		Period: make([]float64, len(freqs)),
		Power:  make([]float64, len(freqs)),
	}

	binW := make([]float64, nb)
	binS := make([]float64, nb)

	for k, f := range freqs {
		period := 1 / f
		res.Period[k] = period

		if yy == 0 {
			continue
		}

		for b := range binW {
			binW[b] = 0
			binS[b] = 0
		}

		for i, t := range c.Time {
			cycles := t * f
			phase := cycles - math.Floor(cycles)

			b := int(phase * float64(nb))
			if b >= nb {
				b = nb - 1
			}

			binW[b] += w
			binS[b] += (c.Flux[i] - yMean) * w
		}

		best := 0.0

		for start := 0; start < nb; start++ {
			var r, s float64

			for width := 1; width <= maxWidth; width++ {
				b := (start + width - 1) % nb
				r += binW[b]
				s += binS[b]

				if width < minWidth {
					continue
				}

				if r <= 0 || r >= 1 {
					continue
				}

				sr := s * s / (r * (1 - r))
				if sr > best {
					best = sr
				}
			}
		}

		res.Power[k] = best / yy
	}

	return res, nil
}
