// Package periodogram provides period-search tools for unevenly
// sampled light curves.
//
// Three estimators are available:
//
//   - [BoxLeastSquares]: phase-binned box search, sensitive to the
//     sharp, shallow dips of eclipsing binaries and transits
//   - [LombScargle]:     generalized (floating-mean) Lomb-Scargle,
//     sensitive to sinusoidal variability
//   - [Autocorrelation]: FFT autocorrelation of the uniformly
//     resampled curve, robust for quasi-periodic signals
//
// Each returns a [Result] holding trial periods and their powers.
// [Refine] sharpens a period estimate by bracket descent on the
// residual scatter of the folded, median-smoothed curve, and
// [FindPeriod] composes the two steps: periodogram maximum as the
// initial guess, then refinement, with a final check whether twice or
// half the period folds more cleanly.
package periodogram
