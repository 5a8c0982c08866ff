// Package lightcurve provides the light-curve data model shared by the
// folding and period-search packages.
//
// A [Curve] is an ordered sequence of brightness observations: a time
// column, a flux column, and optional per-sample flux uncertainties and
// quality flags. Curves are constructed once, via [New] or the CSV
// readers, and treated as read-only afterwards; every transforming
// operation ([Curve.Clean], [Curve.Normalize], [Curve.SortedByTime])
// returns a new curve.
//
// Times carry no unit of their own. Whatever unit the input uses (days
// for TESS/Kepler data) is the unit periods and epochs are expressed in
// throughout the module.
package lightcurve
