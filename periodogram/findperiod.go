package periodogram

import (
	"fmt"

	"github.com/d-giles/phase-folder/lightcurve"
)

// Method selects the periodogram used for the initial period guess.
type Method int

const (
	// MethodBoxLeastSquares uses [BoxLeastSquares] (default, best for
	// eclipses and transits).
	MethodBoxLeastSquares Method = iota

	// MethodLombScargle uses [LombScargle].
	MethodLombScargle

	// MethodAutocorrelation uses [Autocorrelation].
	MethodAutocorrelation
)

// String returns the method name as accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodBoxLeastSquares:
		return "bls"
	case MethodLombScargle:
		return "ls"
	case MethodAutocorrelation:
		return "acf"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name ("bls", "ls", "acf") to a [Method].
func ParseMethod(name string) (Method, error) {
	switch name {
	case "bls":
		return MethodBoxLeastSquares, nil
	case "ls":
		return MethodLombScargle, nil
	case "acf":
		return MethodAutocorrelation, nil
	default:
		return 0, fmt.Errorf("periodogram: unknown method %q", name)
	}
}

// FindPeriod estimates the period of a light curve.
//
// The curve is cleaned of flagged samples and median-normalized, the
// selected periodogram supplies an initial guess at its power maximum,
// and [Refine] sharpens that guess within the configured bounds.
func FindPeriod(c *lightcurve.Curve, method Method, cfg Config) (float64, error) {
	cfg = normalizeConfig(cfg)

	clean, err := c.Clean()
	if err != nil {
		return 0, err
	}

	norm, err := clean.Normalize(lightcurve.UnitPPM)
	if err != nil {
		return 0, err
	}

	var res *Result

	switch method {
	case MethodBoxLeastSquares:
		res, err = BoxLeastSquares(norm, cfg)
	case MethodLombScargle:
		res, err = LombScargle(norm, cfg)
	case MethodAutocorrelation:
		res, err = Autocorrelation(norm, cfg)
	default:
		return 0, fmt.Errorf("periodogram: unknown method %d", int(method))
	}

	if err != nil {
		return 0, err
	}

	guess := res.PeriodAtMaxPower()

	return Refine(c, guess, RefineConfig{
		MinPeriod: cfg.MinPeriod,
		MaxPeriod: cfg.MaxPeriod,
	})
}
