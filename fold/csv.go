package fold

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the folded curve as CSV with a phase,flux[,flux_err]
// header. Observations are written in their current order; call
// [Folded.SortByPhase] first for phase-ordered output.
func (f *Folded) WriteCSV(w io.Writer) error {
	if f.Len() == 0 {
		return fmt.Errorf("fold: cannot write an empty folded curve")
	}

	cw := csv.NewWriter(w)

	header := []string{"phase", "flux"}
	if f.FluxErr != nil {
		header = append(header, "flux_err")
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("fold: write csv header: %w", err)
	}

	record := make([]string, 0, len(header))

	for i := range f.Phase {
		record = record[:0]
		record = append(record,
			strconv.FormatFloat(f.Phase[i], 'g', -1, 64),
			strconv.FormatFloat(f.Flux[i], 'g', -1, 64),
		)

		if f.FluxErr != nil {
			record = append(record, strconv.FormatFloat(f.FluxErr[i], 'g', -1, 64))
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("fold: write csv row %d: %w", i, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("fold: flush csv: %w", err)
	}

	return nil
}
