package periodogram_test

import (
	"testing"

	"github.com/d-giles/phase-folder/periodogram"
)

func BenchmarkLombScargle(b *testing.B) {
	c := sineCurve(b, 2.5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := periodogram.LombScargle(c, searchConfig); err != nil {
			b.Fatalf("LombScargle: %v", err)
		}
	}
}

func BenchmarkBoxLeastSquares(b *testing.B) {
	c := transitCurve(b, 2.0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := periodogram.BoxLeastSquares(c, searchConfig); err != nil {
			b.Fatalf("BoxLeastSquares: %v", err)
		}
	}
}

func BenchmarkAutocorrelation(b *testing.B) {
	c := sineCurve(b, 2.5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := periodogram.Autocorrelation(c, searchConfig); err != nil {
			b.Fatalf("Autocorrelation: %v", err)
		}
	}
}

func BenchmarkRefine(b *testing.B) {
	c := sineCurve(b, 2.5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := periodogram.Refine(c, 2.4, periodogram.RefineConfig{}); err != nil {
			b.Fatalf("Refine: %v", err)
		}
	}
}
