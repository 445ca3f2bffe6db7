package analytics

import (
	"testing"
	"time"

	"github.com/fundview/analytics/date"
)

func seriesOf(points map[string]float64) *date.History[float64] {
	h := new(date.History[float64])
	for d, v := range points {
		h.Append(date.MustParse(d), v)
	}
	return h
}

func TestNewHistoryReport(t *testing.T) {
	h := seriesOf(map[string]float64{
		"2025-01-01": 100,
		"2025-01-02": 110,
		"2025-01-03": 90,
	})

	report := NewHistoryReport("FUND", "EUR", h)
	if report.Asset != "FUND" {
		t.Errorf("Asset = %q want %q", report.Asset, "FUND")
	}
	if len(report.Entries) != 3 {
		t.Fatalf("len(Entries) = %d want 3", len(report.Entries))
	}
	if !report.Entries[2].Drawdown.Equal(-18.181818) {
		t.Errorf("Entries[2].Drawdown = %v want -18.18%%", report.Entries[2].Drawdown)
	}
}

func TestNewComparisonReport(t *testing.T) {
	portfolio := seriesOf(map[string]float64{
		"2025-01-01": 100,
		"2025-01-03": 120,
	})
	benchmark := seriesOf(map[string]float64{
		"2025-01-01": 200,
		"2025-01-02": 210,
		"2025-01-03": 220,
	})

	report := NewComparisonReport("Fund", "Index", portfolio, benchmark)
	if len(report.Entries) != 3 {
		t.Fatalf("len(Entries) = %d want 3 (union of dates)", len(report.Entries))
	}

	// On Jan 2 the portfolio has no observation: its last known
	// cumulative return (0% from Jan 1) carries over.
	e := report.Entries[1]
	if e.Date != date.New(2025, time.January, 2) {
		t.Errorf("Entries[1].Date = %v want 2025-01-02", e.Date)
	}
	if !e.Portfolio.Equal(0) {
		t.Errorf("Entries[1].Portfolio = %v want 0%%", e.Portfolio)
	}
	if !e.Benchmark.Equal(5) {
		t.Errorf("Entries[1].Benchmark = %v want 5%%", e.Benchmark)
	}
	if !e.Spread.Equal(-5) {
		t.Errorf("Entries[1].Spread = %v want -5%%", e.Spread)
	}

	last := report.Entries[2]
	if !last.Portfolio.Equal(20) || !last.Benchmark.Equal(10) || !last.Spread.Equal(10) {
		t.Errorf("Entries[2] = %+v want portfolio 20%%, benchmark 10%%, spread 10%%", last)
	}
}

func TestNewComparisonReport_SkipsBeforeBothStart(t *testing.T) {
	portfolio := seriesOf(map[string]float64{
		"2025-01-05": 100,
		"2025-01-06": 110,
	})
	benchmark := seriesOf(map[string]float64{
		"2025-01-01": 200,
		"2025-01-06": 220,
	})

	report := NewComparisonReport("Fund", "Index", portfolio, benchmark)
	for _, e := range report.Entries {
		if e.Date.Before(date.New(2025, time.January, 5)) {
			t.Errorf("entry on %v predates the portfolio series", e.Date)
		}
	}
}

func TestNewPnLReport(t *testing.T) {
	report := NewPnLReport(sampleTrades(), "USD")
	if len(report.Groups) != 3 {
		t.Fatalf("len(Groups) = %d want 3", len(report.Groups))
	}
	if len(report.Slices) != 3 {
		t.Fatalf("len(Slices) = %d want 3", len(report.Slices))
	}
	// 60 + 15 - 5
	if !report.Total.Equal(M(70, "USD")) {
		t.Errorf("Total = %v want %v", report.Total, M(70, "USD"))
	}
	// biggest magnitude first
	if report.Slices[0].Key != "A" {
		t.Errorf("Slices[0].Key = %q want %q", report.Slices[0].Key, "A")
	}
}

func TestNewRiskReport(t *testing.T) {
	points := Normalize([]Observation{
		{Date: day(1), Value: 100},
		{Date: day(2), Value: 110},
		{Date: day(3), Value: 90},
		{Date: day(4), Value: 95},
	})

	report := NewRiskReport("FUND", points)
	if !report.MaxDrawdown.Equal(-18.181818) {
		t.Errorf("MaxDrawdown = %v want -18.18%%", report.MaxDrawdown)
	}
	if report.TroughDate != day(3) {
		t.Errorf("TroughDate = %v want %v", report.TroughDate, day(3))
	}
	if report.PeakValue != 110 {
		t.Errorf("PeakValue = %v want 110", report.PeakValue)
	}
	if report.PeakDate != day(2) {
		t.Errorf("PeakDate = %v want %v", report.PeakDate, day(2))
	}
	if !report.TotalReturn.Equal(-5) {
		t.Errorf("TotalReturn = %v want -5%%", report.TotalReturn)
	}
	if !report.BestReturn.Equal(10) || report.BestDate != day(2) {
		t.Errorf("BestReturn = %v on %v want 10%% on %v", report.BestReturn, report.BestDate, day(2))
	}
	if !report.WorstReturn.Equal(-18.181818) || report.WorstDate != day(3) {
		t.Errorf("WorstReturn = %v on %v want -18.18%% on %v", report.WorstReturn, report.WorstDate, day(3))
	}
}

func TestNewRiskReport_Empty(t *testing.T) {
	report := NewRiskReport("FUND", nil)
	if report.MaxDrawdown != 0 || report.Volatility != 0 {
		t.Errorf("empty series: got %+v want zero metrics", report)
	}
}
