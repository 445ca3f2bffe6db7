package analytics

import (
	"math"

	"github.com/fundview/analytics/date"
)

// RiskReport summarizes the downside and variability of a value series.
type RiskReport struct {
	Asset       string
	MaxDrawdown Percent   // deepest decline from a running peak
	TroughDate  date.Date // date the deepest decline was reached
	PeakValue   float64   // highest value of the whole series
	PeakDate    date.Date // first date the highest value was reached
	Volatility  Percent   // standard deviation of point-to-point returns
	BestReturn  Percent   // best single-step return
	BestDate    date.Date
	WorstReturn Percent // worst single-step return
	WorstDate   date.Date
	TotalReturn Percent // cumulative return of the last point
}

// NewRiskReport computes risk metrics from an already normalized series.
// Non-finite steps (a NaN observation, a zero previous value) are skipped
// in the return statistics instead of poisoning them.
func NewRiskReport(asset string, points []NormalizedPoint) *RiskReport {
	report := &RiskReport{Asset: asset}
	if len(points) == 0 {
		return report
	}

	report.TotalReturn = points[len(points)-1].CumulativeReturn

	for _, p := range points {
		if p.Drawdown < report.MaxDrawdown {
			report.MaxDrawdown = p.Drawdown
			report.TroughDate = p.Date
		}
		if p.Value > report.PeakValue || report.PeakDate.IsZero() {
			report.PeakValue = p.Value
			report.PeakDate = p.Date
		}
	}

	// Point-to-point returns, in percent.
	returns := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Value
		if prev <= 0 {
			continue
		}
		r := (points[i].Value - prev) / prev * 100
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		returns = append(returns, r)
		if len(returns) == 1 || r > float64(report.BestReturn) {
			report.BestReturn = Percent(r)
			report.BestDate = points[i].Date
		}
		if len(returns) == 1 || r < float64(report.WorstReturn) {
			report.WorstReturn = Percent(r)
			report.WorstDate = points[i].Date
		}
	}
	report.Volatility = Percent(stddev(returns))
	return report
}

// stddev returns the population standard deviation of xs, 0 when empty.
func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)))
}
