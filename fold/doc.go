// Package fold implements phase folding of light curves.
//
// Folding maps every observation time onto its phase within a trial
// period, overlaying all cycles so periodic structure (eclipses,
// pulsations) lines up. The core operation is [Fold]:
//
//	folded, err := fold.Fold(curve, fold.Params{Period: 2.47, Epoch: 1325.8})
//
// [Fold] is a pure function: it retains no state between calls and is
// O(n) in the number of observations, so interactive callers can
// re-fold on every parameter change. Two phase conventions are
// supported, [NormZeroToOne] ([0,1), default) and [NormCentered]
// ([-0.5,0.5), eclipse-centered plots).
//
// [Folded.SortByPhase] reorders the result for plotting or smoothing,
// and [Folded.Bin] collapses it into an averaged phase profile.
package fold
