package analytics

import (
	"github.com/fundview/analytics/date"
)

// ComparisonEntry holds the cumulative returns of the portfolio and its
// benchmark on one date, and the spread between the two.
type ComparisonEntry struct {
	Date      date.Date
	Portfolio Percent
	Benchmark Percent
	Spread    Percent
}

// ComparisonReport compares a portfolio value series against a benchmark
// series, both normalized to cumulative return from their own first
// observation.
type ComparisonReport struct {
	Asset     string
	Benchmark string
	Entries   []ComparisonEntry
}

// NewComparisonReport normalizes both series and aligns them on the union
// of their dates. When one series has no observation on a date, its last
// known cumulative return carries over. Dates before both series have
// started are skipped.
func NewComparisonReport(asset, benchmark string, portfolio, bench *date.History[float64]) *ComparisonReport {
	report := &ComparisonReport{
		Asset:     asset,
		Benchmark: benchmark,
		Entries:   []ComparisonEntry{},
	}

	cumrets := func(h *date.History[float64]) *date.History[float64] {
		c := new(date.History[float64])
		for _, p := range Normalize(Observations(h)) {
			c.Append(p.Date, float64(p.CumulativeReturn))
		}
		return c
	}
	p, b := cumrets(portfolio), cumrets(bench)

	for on := range date.Iterate(p, b) {
		pv, pok := p.ValueAsOf(on)
		bv, bok := b.ValueAsOf(on)
		if !pok || !bok {
			continue
		}
		report.Entries = append(report.Entries, ComparisonEntry{
			Date:      on,
			Portfolio: Percent(pv),
			Benchmark: Percent(bv),
			Spread:    Percent(pv - bv),
		})
	}
	return report
}
