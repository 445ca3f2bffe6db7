package analytics

import (
	"github.com/fundview/analytics/date"
)

// TradeRecord is one closed or open position's contribution to performance.
type TradeRecord struct {
	Asset  string    // asset symbol (ticker)
	Date   date.Date // date the contribution applies to
	PnL    float64   // signed profit and loss
	Volume float64   // traded volume
	Won    bool      // true if the position is counted as a win
}

// KeyFunc selects the bucketing key for a trade record.
type KeyFunc func(TradeRecord) string

// ByAsset buckets records by their asset symbol.
func ByAsset(r TradeRecord) string { return r.Asset }

// ByMonth buckets records by the calendar month of their date (e.g. "2025-07").
func ByMonth(r TradeRecord) string {
	return date.NewRange(r.Date, date.Monthly).Identifier()
}

// GroupSummary is one aggregation bucket.
type GroupSummary struct {
	Key         string
	TotalPnL    float64
	Count       int
	WinRate     Percent // won records over total, 0 for an empty bucket
	TotalVolume float64
}

type accumulator struct {
	sumPnl    float64
	count     int
	wonCount  int
	sumVolume float64
}

func (a *accumulator) add(r TradeRecord) {
	a.sumPnl += r.PnL
	a.count++
	if r.Won {
		a.wonCount++
	}
	a.sumVolume += r.Volume
}

func (a *accumulator) winRate() Percent {
	if a.count == 0 {
		return 0
	}
	return Percent(100 * float64(a.wonCount) / float64(a.count))
}

// Aggregate reduces records into one GroupSummary per distinct key.
// Every record is counted in exactly one bucket. Sums accumulate in
// input order, so re-running on the same input yields bit-identical
// results. Output buckets appear in first-seen key order; ranking for
// presentation is the job of ToChartSlices.
func Aggregate(records []TradeRecord, key KeyFunc) []GroupSummary {
	accs := make(map[string]*accumulator)
	order := make([]string, 0)
	for _, r := range records {
		k := key(r)
		acc, ok := accs[k]
		if !ok {
			acc = new(accumulator)
			accs[k] = acc
			order = append(order, k)
		}
		acc.add(r)
	}

	summaries := make([]GroupSummary, 0, len(order))
	for _, k := range order {
		acc := accs[k]
		summaries = append(summaries, GroupSummary{
			Key:         k,
			TotalPnL:    acc.sumPnl,
			Count:       acc.count,
			WinRate:     acc.winRate(),
			TotalVolume: acc.sumVolume,
		})
	}
	return summaries
}

func (g GroupSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("key", g.Key)
	w.Append("totalPnl", g.TotalPnL)
	w.Append("count", g.Count)
	w.Append("winRatePct", float64(g.WinRate))
	w.Append("totalVolume", g.TotalVolume)
	return w.MarshalJSON()
}
