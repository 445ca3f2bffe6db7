// Package chart renders analytics reports as PNG images.
package chart

import (
	"errors"

	"github.com/fundview/analytics"
	"github.com/vicanso/go-charts/v2"
)

// History renders the cumulative return and drawdown of a normalized
// series as a line chart. Both series share the percent unit, so they
// fit on a single y-axis.
func History(r *analytics.HistoryReport) ([]byte, error) {
	if len(r.Entries) == 0 {
		return nil, errors.New("no data")
	}

	labels := make([]string, len(r.Entries))
	cumret := make([]float64, len(r.Entries))
	drawdown := make([]float64, len(r.Entries))
	for i, e := range r.Entries {
		labels[i] = e.Date.String()
		cumret[i] = float64(e.CumulativeReturn)
		drawdown[i] = float64(e.Drawdown)
	}

	painter, err := charts.LineRender([][]float64{cumret, drawdown},
		charts.TitleTextOptionFunc(r.Asset+" • cumulative return & drawdown"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Cumulative %", "Drawdown %"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// Compare renders the portfolio and benchmark cumulative returns in one
// line chart.
func Compare(r *analytics.ComparisonReport) ([]byte, error) {
	if len(r.Entries) == 0 {
		return nil, errors.New("no data")
	}

	labels := make([]string, len(r.Entries))
	portfolio := make([]float64, len(r.Entries))
	benchmark := make([]float64, len(r.Entries))
	for i, e := range r.Entries {
		labels[i] = e.Date.String()
		portfolio[i] = float64(e.Portfolio)
		benchmark[i] = float64(e.Benchmark)
	}

	painter, err := charts.LineRender([][]float64{portfolio, benchmark},
		charts.TitleTextOptionFunc(r.Asset+" vs "+r.Benchmark+" • cumulative %"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{r.Asset, r.Benchmark}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// PnLPie renders the ranked chart slices as a pie sized by magnitude.
// The slices are already sorted and colored by rank; labels keep the
// signed P&L so a big losing asset reads as a loss, not a gain.
func PnLPie(r *analytics.PnLReport) ([]byte, error) {
	if len(r.Slices) == 0 {
		return nil, errors.New("no data")
	}

	values := make([]float64, len(r.Slices))
	labels := make([]string, len(r.Slices))
	for i, s := range r.Slices {
		values[i] = s.Magnitude
		labels[i] = s.Key + " " + analytics.M(s.TotalPnL, r.Currency).SignedString()
	}

	painter, err := charts.PieRender(values,
		charts.TitleTextOptionFunc("P&L by asset ("+r.Currency+")"),
		charts.LegendOptionFunc(charts.LegendOption{Data: labels}),
		charts.PieSeriesShowLabel(),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// MonthlyBars renders monthly P&L as a bar chart.
func MonthlyBars(r *analytics.MonthlyReport) ([]byte, error) {
	if len(r.Rows) == 0 {
		return nil, errors.New("no data")
	}

	months := make([]string, len(r.Rows))
	pnl := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		months[i] = row.Month
		pnl[i] = row.TotalPnL
	}

	painter, err := charts.BarRender([][]float64{pnl},
		charts.TitleTextOptionFunc("Monthly P&L ("+r.Currency+")"),
		charts.XAxisDataOptionFunc(months),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"P&L"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
