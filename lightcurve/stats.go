package lightcurve

import (
	"math"
	"sort"
)

// FluxStats holds single-pass flux statistics of a curve.
type FluxStats struct {
	N            int
	Mean         float64
	Median       float64
	MAD          float64 // median absolute deviation from the median
	Variance     float64 // population variance
	StdDev       float64
	Skewness     float64
	Kurtosis     float64 // excess kurtosis
	Min          float64
	MinPos       int
	Max          float64
	MaxPos       int
	PointToPoint float64 // median absolute consecutive-sample difference
}

// Stats computes flux statistics. Moments use Welford's online
// algorithm for numerical stability; median, MAD, and the
// point-to-point scatter use sorted copies. Returns the zero value for
// an empty curve.
func (c *Curve) Stats() FluxStats {
	n := c.Len()
	if n == 0 {
		return FluxStats{}
	}

	// Welford accumulators.
	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	var (
		maxVal = c.Flux[0]
		maxPos int
		minVal = c.Flux[0]
		minPos int
	)

	for i, x := range c.Flux {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	median := medianOf(c.Flux)

	dev := make([]float64, n)
	for i, x := range c.Flux {
		dev[i] = math.Abs(x - median)
	}

	sort.Float64s(dev)
	mad := medianSorted(dev)

	var p2p float64

	if n > 1 {
		diffs := make([]float64, n-1)
		for i := 1; i < n; i++ {
			diffs[i-1] = math.Abs(c.Flux[i] - c.Flux[i-1])
		}

		sort.Float64s(diffs)
		p2p = medianSorted(diffs)
	}

	return FluxStats{
		N:            n,
		Mean:         mean,
		Median:       median,
		MAD:          mad,
		Variance:     variance,
		StdDev:       math.Sqrt(variance),
		Skewness:     skewness,
		Kurtosis:     kurtosis,
		Min:          minVal,
		MinPos:       minPos,
		Max:          maxVal,
		MaxPos:       maxPos,
		PointToPoint: p2p,
	}
}

// medianSorted returns the median of an already-sorted slice.
func medianSorted(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	mid := len(x) / 2
	if len(x)%2 == 1 {
		return x[mid]
	}

	return (x[mid-1] + x[mid]) / 2
}
