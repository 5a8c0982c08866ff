package periodogram

import (
	"fmt"
	"math"
	"sort"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/d-giles/phase-folder/lightcurve"
)

// Autocorrelation computes an autocorrelation periodogram.
//
// The curve is resampled onto a uniform time grid at the median
// observing cadence, mean-subtracted, Hann-tapered, and
// autocorrelated via the Wiener-Khinchin theorem (FFT, power
// spectrum, inverse FFT). The result maps each lag within the
// configured period range to its normalized autocorrelation, so a
// strongly periodic signal peaks at its period and at multiples of it.
//
// Lags beyond half the time baseline are discarded: the overlap there
// is too short to estimate correlation reliably.
func Autocorrelation(c *lightcurve.Curve, cfg Config) (*Result, error) {
	if c.Len() < 3 {
		return nil, fmt.Errorf("%w: autocorrelation needs >= 3, got %d", ErrInsufficientData, c.Len())
	}

	cfg = normalizeConfig(cfg)

	sorted := c.SortedByTime()

	flux, dt, err := resampleUniform(sorted)
	if err != nil {
		return nil, err
	}

	n := len(flux)

	var mean float64
	for _, y := range flux {
		mean += y
	}

	mean /= float64(n)

	for i := range flux {
		flux[i] -= mean
	}

	// Hann taper to suppress edge leakage in the power spectrum.
	taper := make([]float64, n)
	for i := range taper {
		taper[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	vecmath.MulBlockInPlace(flux, taper)

	// Zero-pad to avoid circular wrap-around in the correlation.
	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("periodogram: create fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, y := range flux {
		in[i] = complex(y, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("periodogram: forward fft: %w", err)
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)

	for i, x := range freq {
		re[i] = real(x)
		im[i] = imag(x)
	}

	power := make([]float64, fftSize)
	vecmath.Power(power, re, im)

	for i := range freq {
		freq[i] = complex(power[i], 0)
	}

	acf := make([]complex128, fftSize)
	if err := plan.Inverse(acf, freq); err != nil {
		return nil, fmt.Errorf("periodogram: inverse fft: %w", err)
	}

	zeroLag := real(acf[0])
	if zeroLag == 0 {
		return nil, fmt.Errorf("%w: flux has no variance", ErrInsufficientData)
	}

	maxPeriod := cfg.MaxPeriod

	halfSpan := float64(n-1) * dt / 2
	if maxPeriod > halfSpan {
		maxPeriod = halfSpan
	}

	res := &Result{}

	for k := 1; k < n; k++ {
		lag := float64(k) * dt
		if lag < cfg.MinPeriod {
			continue
		}

		if lag > maxPeriod {
			break
		}

		res.Period = append(res.Period, lag)
		res.Power = append(res.Power, real(acf[k])/zeroLag)
	}

	if len(res.Period) == 0 {
		return nil, fmt.Errorf("%w: no lags inside the period range", ErrInsufficientData)
	}

	return res, nil
}

// resampleUniform linearly interpolates a time-sorted curve onto a
// uniform grid at the median observing cadence. Duplicate timestamps
// collapse to their first sample.
func resampleUniform(c *lightcurve.Curve) (flux []float64, dt float64, err error) {
	times := make([]float64, 0, c.Len())
	values := make([]float64, 0, c.Len())

	for i, t := range c.Time {
		if i > 0 && t == times[len(times)-1] {
			continue
		}

		times = append(times, t)
		values = append(values, c.Flux[i])
	}

	if len(times) < 3 {
		return nil, 0, fmt.Errorf("%w: fewer than 3 distinct timestamps", ErrInsufficientData)
	}

	diffs := make([]float64, len(times)-1)
	for i := 1; i < len(times); i++ {
		diffs[i-1] = times[i] - times[i-1]
	}

	sort.Float64s(diffs)

	dt = diffs[len(diffs)/2]
	if dt <= 0 {
		return nil, 0, ErrNoBaseline
	}

	span := times[len(times)-1] - times[0]
	n := int(span/dt) + 1

	flux = make([]float64, n)

	j := 0

	for i := range flux {
		t := times[0] + float64(i)*dt

		for j < len(times)-2 && times[j+1] <= t {
			j++
		}

		t0, t1 := times[j], times[j+1]

		switch {
		case t <= t0:
			flux[i] = values[j]
		case t >= t1:
			flux[i] = values[j+1]
		default:
			frac := (t - t0) / (t1 - t0)
			flux[i] = values[j] + frac*(values[j+1]-values[j])
		}
	}

	return flux, dt, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
