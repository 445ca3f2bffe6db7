package analytics

import (
	"sort"
)

// MonthlySummary is one calendar month's trade performance. Unlike the
// generic GroupSummary it keeps winning and losing counts separately,
// for month-over-month trend rendering.
type MonthlySummary struct {
	Month       string // "2006-01"
	TotalPnL    float64
	Count       int
	Winning     int
	Losing      int
	WinRate     Percent
	TotalVolume float64
}

// MonthlyBuckets rebuckets trade records by calendar month and returns
// one summary per month, chronologically ordered. Same totality policy
// as Aggregate: every record lands in exactly one month, sums accumulate
// in input order.
func MonthlyBuckets(records []TradeRecord) []MonthlySummary {
	type monthAcc struct {
		accumulator
		losing int
	}
	accs := make(map[string]*monthAcc)
	months := make([]string, 0)
	for _, r := range records {
		k := ByMonth(r)
		acc, ok := accs[k]
		if !ok {
			acc = new(monthAcc)
			accs[k] = acc
			months = append(months, k)
		}
		acc.add(r)
		if !r.Won {
			acc.losing++
		}
	}

	// "2006-01" keys sort chronologically as plain strings.
	sort.Strings(months)

	out := make([]MonthlySummary, 0, len(months))
	for _, k := range months {
		acc := accs[k]
		out = append(out, MonthlySummary{
			Month:       k,
			TotalPnL:    acc.sumPnl,
			Count:       acc.count,
			Winning:     acc.wonCount,
			Losing:      acc.losing,
			WinRate:     acc.winRate(),
			TotalVolume: acc.sumVolume,
		})
	}
	return out
}

func (m MonthlySummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("month", m.Month)
	w.Append("totalPnl", m.TotalPnL)
	w.Append("count", m.Count)
	w.Append("winning", m.Winning)
	w.Append("losing", m.Losing)
	w.Append("winRatePct", float64(m.WinRate))
	w.Append("totalVolume", m.TotalVolume)
	return w.MarshalJSON()
}
