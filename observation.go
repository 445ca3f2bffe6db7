package analytics

import (
	"github.com/fundview/analytics/date"
)

// Observation is one dated numeric sample (NAV, index level, or price).
// Series handed to Normalize must be ordered ascending by date; the
// decoding layer canonicalizes through date.History to guarantee it.
type Observation struct {
	Date  date.Date
	Value float64
}

// NormalizedPoint is an Observation enriched with the derived per-point
// metrics displayed by value-history views.
type NormalizedPoint struct {
	Observation
	CumulativeReturn Percent // change relative to the first observation
	RunningPeak      float64 // highest value observed up to and including this point
	Drawdown         Percent // decline from the running peak, always <= 0
}

// Normalize derives per-point metrics for a NAV-like series in a single
// left-to-right pass. The cumulative return is anchored on the first
// observation; when the first value is zero or negative the cumulative
// return is reported as 0 for every point, because a non-positive base
// makes the ratio meaningless. The drawdown is measured against the peak
// as of each point, so a new maximum reads as a drawdown of 0.
//
// An empty series yields an empty result. Non-finite values propagate as
// NaN in the derived fields rather than aborting the whole series.
func Normalize(observations []Observation) []NormalizedPoint {
	points := make([]NormalizedPoint, 0, len(observations))
	if len(observations) == 0 {
		return points
	}
	first := observations[0].Value
	peak := observations[0].Value
	for _, o := range observations {
		if o.Value > peak {
			peak = o.Value
		}
		p := NormalizedPoint{Observation: o, RunningPeak: peak}
		if first > 0 {
			p.CumulativeReturn = Percent((o.Value - first) / first * 100)
		}
		if peak != 0 {
			p.Drawdown = Percent((o.Value - peak) / peak * 100)
		}
		points = append(points, p)
	}
	return points
}

func (p NormalizedPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("on", p.Date)
	w.Append("value", p.Value)
	w.Append("cumulativeReturnPct", float64(p.CumulativeReturn))
	w.Append("runningPeak", p.RunningPeak)
	w.Append("drawdownPct", float64(p.Drawdown))
	return w.MarshalJSON()
}
