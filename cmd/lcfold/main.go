// Command lcfold phase-folds light curves from CSV files.
//
// Usage:
//
//	lcfold [flags] lightcurve.csv
//
// Without -period it searches for the best period first.
//
// Examples:
//
//	lcfold tic12345.csv
//	lcfold -method ls tic12345.csv
//	lcfold -period 2.47 -epoch 1325.8 -o folded.csv tic12345.csv
//	lcfold -period 2.47 -refine -centered tic12345.csv
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/d-giles/phase-folder/fold"
	"github.com/d-giles/phase-folder/lightcurve"
	"github.com/d-giles/phase-folder/periodogram"
)

func main() {
	period := flag.Float64("period", 0, "folding period in input time units (0 = search for it)")
	epoch := flag.Float64("epoch", math.NaN(), "reference epoch, phase zero (default: time of minimum flux)")
	method := flag.String("method", "bls", "period search method: bls, ls, or acf")
	refine := flag.Bool("refine", false, "refine a given -period before folding")
	centered := flag.Bool("centered", false, "use the [-0.5, 0.5) phase range instead of [0, 1)")
	minPeriod := flag.Float64("min-period", 0, "lower period search bound (0 = default)")
	maxPeriod := flag.Float64("max-period", 0, "upper period search bound (0 = default)")
	output := flag.String("o", "", "write the folded curve to this CSV file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lcfold [flags] lightcurve.csv\n\n")
		fmt.Fprintf(os.Stderr, "Phase-folds a light curve, searching for the period when none is given.\n")
		fmt.Fprintf(os.Stderr, "The CSV needs time and flux columns; flux_err and quality are optional.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lcfold tic12345.csv\n")
		fmt.Fprintf(os.Stderr, "  lcfold -method ls tic12345.csv\n")
		fmt.Fprintf(os.Stderr, "  lcfold -period 2.47 -o folded.csv tic12345.csv\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	curve, err := lightcurve.ReadCSVFile(flag.Arg(0))
	if err != nil {
		fail(err)
	}

	clean, err := curve.Clean()
	if err != nil {
		fail(err)
	}

	cfg := periodogram.Config{
		MinPeriod: *minPeriod,
		MaxPeriod: *maxPeriod,
	}

	m, err := periodogram.ParseMethod(*method)
	if err != nil {
		fail(err)
	}

	foldPeriod := *period
	searched := false

	switch {
	case foldPeriod == 0:
		foldPeriod, err = periodogram.FindPeriod(curve, m, cfg)
		if err != nil {
			fail(err)
		}

		searched = true
	case *refine:
		foldPeriod, err = periodogram.Refine(curve, foldPeriod, periodogram.RefineConfig{
			MinPeriod: *minPeriod,
			MaxPeriod: *maxPeriod,
		})
		if err != nil {
			fail(err)
		}
	}

	foldEpoch := *epoch
	if math.IsNaN(foldEpoch) {
		stats := clean.Stats()
		foldEpoch = clean.Time[stats.MinPos]
	}

	params := fold.Params{Period: foldPeriod, Epoch: foldEpoch}
	if *centered {
		params.Norm = fold.NormCentered
	}

	folded, err := fold.Fold(clean, params)
	if err != nil {
		fail(err)
	}

	folded.SortByPhase()

	printSummary(curve, clean, folded, m, searched)

	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fail(err)
		}

		if err := folded.WriteCSV(f); err != nil {
			_ = f.Close()
			fail(err)
		}

		if err := f.Close(); err != nil {
			fail(err)
		}

		fmt.Printf("wrote %s\n", *output)
	}
}

func printSummary(curve, clean *lightcurve.Curve, folded *fold.Folded, m periodogram.Method, searched bool) {
	minT, maxT := clean.TimeSpan()
	stats := clean.Stats()

	periodSource := "given"
	if searched {
		periodSource = "searched (" + m.String() + ")"
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Label\t%s\n", curve.Label)
	fmt.Fprintf(tw, "Samples\t%d (%d good)\n", curve.Len(), clean.Len())
	fmt.Fprintf(tw, "Time span\t%.6g .. %.6g\n", minT, maxT)
	fmt.Fprintf(tw, "Median flux\t%.6g\n", stats.Median)
	fmt.Fprintf(tw, "Flux scatter\t%.6g (MAD)\n", stats.MAD)
	fmt.Fprintf(tw, "Period\t%.6g (%s)\n", folded.Period, periodSource)
	fmt.Fprintf(tw, "Epoch\t%.6g\n", folded.Epoch)

	if err := tw.Flush(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
