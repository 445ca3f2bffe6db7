package analytics

// PnLReport aggregates trade records by asset for the profit and loss view.
type PnLReport struct {
	Currency string
	Groups   []GroupSummary // one per asset, first-seen order
	Slices   []ChartSlice   // same buckets, magnitude-ranked for the pie chart
	Total    Money
}

// NewPnLReport buckets records by asset and prepares the chart ranking.
func NewPnLReport(records []TradeRecord, currency string) *PnLReport {
	groups := Aggregate(records, ByAsset)

	total := 0.0
	for _, g := range groups {
		total += g.TotalPnL
	}

	return &PnLReport{
		Currency: currency,
		Groups:   groups,
		Slices:   ToChartSlices(groups),
		Total:    M(total, currency),
	}
}

// MonthlyReport holds one summary row per calendar month, chronologically
// ordered.
type MonthlyReport struct {
	Currency string
	Rows     []MonthlySummary
	Total    Money
}

// NewMonthlyReport rebuckets trade records by calendar month.
func NewMonthlyReport(records []TradeRecord, currency string) *MonthlyReport {
	rows := MonthlyBuckets(records)

	total := 0.0
	for _, r := range rows {
		total += r.TotalPnL
	}

	return &MonthlyReport{
		Currency: currency,
		Rows:     rows,
		Total:    M(total, currency),
	}
}
