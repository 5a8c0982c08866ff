package lightcurve

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSV column names recognized by [ReadCSV].
const (
	colTime    = "time"
	colFlux    = "flux"
	colFluxErr = "flux_err"
	colQuality = "quality"
)

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("lightcurve: missing csv column")

// ReadCSV reads a light curve from CSV data with a header row. The
// columns "time" and "flux" are required; "flux_err" and "quality" are
// attached when present. Column order does not matter and unknown
// columns are ignored.
func ReadCSV(r io.Reader) (*Curve, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("lightcurve: read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	timeIdx, ok := cols[colTime]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, colTime)
	}

	fluxIdx, ok := cols[colFlux]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, colFlux)
	}

	errIdx, hasErr := cols[colFluxErr]
	qualIdx, hasQual := cols[colQuality]

	var (
		times   []float64
		flux    []float64
		fluxErr []float64
		quality []int32
	)

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("lightcurve: read csv line %d: %w", line, err)
		}

		t, err := strconv.ParseFloat(record[timeIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("lightcurve: csv line %d: bad time %q: %w", line, record[timeIdx], err)
		}

		f, err := strconv.ParseFloat(record[fluxIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("lightcurve: csv line %d: bad flux %q: %w", line, record[fluxIdx], err)
		}

		times = append(times, t)
		flux = append(flux, f)

		if hasErr {
			fe, err := strconv.ParseFloat(record[errIdx], 64)
			if err != nil {
				return nil, fmt.Errorf("lightcurve: csv line %d: bad flux_err %q: %w", line, record[errIdx], err)
			}

			fluxErr = append(fluxErr, fe)
		}

		if hasQual {
			q, err := strconv.ParseInt(record[qualIdx], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("lightcurve: csv line %d: bad quality %q: %w", line, record[qualIdx], err)
			}

			quality = append(quality, int32(q))
		}
	}

	var opts []Option
	if hasErr {
		opts = append(opts, WithFluxErr(fluxErr))
	}

	if hasQual {
		opts = append(opts, WithQuality(quality))
	}

	return New(times, flux, opts...)
}

// ReadCSVFile reads a light curve from a CSV file and labels it with
// the file name stem.
func ReadCSVFile(path string) (*Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lightcurve: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("lightcurve: %s: %w", path, err)
	}

	base := filepath.Base(path)
	c.Label = strings.TrimSuffix(base, filepath.Ext(base))

	return c, nil
}

// WriteCSV writes the curve as CSV with a header row. Optional columns
// are written only when present.
func (c *Curve) WriteCSV(w io.Writer) error {
	if c.Len() == 0 {
		return ErrEmptyCurve
	}

	cw := csv.NewWriter(w)

	header := []string{colTime, colFlux}
	if c.FluxErr != nil {
		header = append(header, colFluxErr)
	}

	if c.Quality != nil {
		header = append(header, colQuality)
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("lightcurve: write csv header: %w", err)
	}

	record := make([]string, 0, len(header))

	for i := range c.Time {
		record = record[:0]
		record = append(record,
			strconv.FormatFloat(c.Time[i], 'g', -1, 64),
			strconv.FormatFloat(c.Flux[i], 'g', -1, 64),
		)

		if c.FluxErr != nil {
			record = append(record, strconv.FormatFloat(c.FluxErr[i], 'g', -1, 64))
		}

		if c.Quality != nil {
			record = append(record, strconv.FormatInt(int64(c.Quality[i]), 10))
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("lightcurve: write csv row %d: %w", i, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("lightcurve: flush csv: %w", err)
	}

	return nil
}
