// Package smooth provides running-window smoothers for flux series.
//
// The period refiner compares folded flux against its median-filtered
// version; [MedianFilter] matches the usual zero-padded convention, so
// reference values computed elsewhere carry over directly.
package smooth

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by smoothing functions.
var (
	ErrEmptyInput = errors.New("smooth: empty input")
	ErrEvenKernel = errors.New("smooth: kernel size must be odd and > 0")
)

// MedianFilter returns the running median of x with the given odd
// kernel size. Windows reaching past either end are zero-padded, so
// output values near the edges are biased toward zero. A kernel of 1
// returns a plain copy.
func MedianFilter(x []float64, kernel int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	if kernel <= 0 || kernel%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEvenKernel, kernel)
	}

	out := make([]float64, len(x))
	if kernel == 1 {
		copy(out, x)

		return out, nil
	}

	half := kernel / 2
	window := make([]float64, kernel)

	for i := range x {
		window = window[:0]

		for j := i - half; j <= i+half; j++ {
			if j < 0 || j >= len(x) {
				window = append(window, 0)
			} else {
				window = append(window, x[j])
			}
		}

		sort.Float64s(window)
		out[i] = window[half]
	}

	return out, nil
}
