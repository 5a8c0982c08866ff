package fold

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBins is returned when a bin count is not positive.
var ErrInvalidBins = errors.New("fold: bin count must be > 0")

// Profile is a phase-binned view of a folded curve.
//
// Bins are equal-width across the folded phase range. Flux holds the
// per-bin mean; bins with no observations hold NaN. FluxErr holds the
// standard error of the mean (zero for bins with fewer than two
// samples).
type Profile struct {
	Phase   []float64 // bin centers
	Flux    []float64
	FluxErr []float64
	Count   []int
}

// Bin collapses the folded curve into n equal-width phase bins.
func (f *Folded) Bin(n int) (*Profile, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBins, n)
	}

	if f.Len() == 0 {
		return nil, errors.New("fold: cannot bin an empty folded curve")
	}

	lo := 0.0
	if f.Norm == NormCentered {
		lo = -0.5
	}

	width := 1.0 / float64(n)

	p := &Profile{
		Phase:   make([]float64, n),
		Flux:    make([]float64, n),
		FluxErr: make([]float64, n),
		Count:   make([]int, n),
	}

	for i := range p.Phase {
		p.Phase[i] = lo + (float64(i)+0.5)*width
	}

	sum := make([]float64, n)
	sumSq := make([]float64, n)

	for i, ph := range f.Phase {
		b := int((ph - lo) / width)
		if b < 0 {
			b = 0
		}

		if b >= n {
			b = n - 1
		}

		x := f.Flux[i]
		sum[b] += x
		sumSq[b] += x * x
		p.Count[b]++
	}

	for b := range p.Flux {
		cnt := p.Count[b]
		if cnt == 0 {
			p.Flux[b] = math.NaN()

			continue
		}

		mean := sum[b] / float64(cnt)
		p.Flux[b] = mean

		if cnt > 1 {
			variance := (sumSq[b] - float64(cnt)*mean*mean) / float64(cnt-1)
			if variance < 0 {
				variance = 0
			}

			p.FluxErr[b] = math.Sqrt(variance / float64(cnt))
		}
	}

	return p, nil
}
