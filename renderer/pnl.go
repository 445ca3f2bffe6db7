package renderer

import (
	"fmt"
	"strings"

	"github.com/fundview/analytics"
)

func PnLMarkdown(r *analytics.PnLReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Profit & Loss by Asset (%s)\n\n", r.Currency)

	fmt.Fprintln(&b, "| Asset | P&L | Trades | Win Rate | Volume |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, g := range r.Groups {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %.2f |\n",
			g.Key,
			analytics.M(g.TotalPnL, r.Currency).SignedString(),
			g.Count,
			g.WinRate.String(),
			g.TotalVolume,
		)
	}
	fmt.Fprintf(&b, "| **%s** | **%s** | | | |\n", "Total", r.Total.SignedString())

	return b.String()
}

func MonthlyMarkdown(r *analytics.MonthlyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Monthly Performance (%s)\n\n", r.Currency)

	fmt.Fprintln(&b, "| Month | P&L | Trades | Won | Lost | Win Rate | Volume |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %s | %.2f |\n",
			row.Month,
			analytics.M(row.TotalPnL, r.Currency).SignedString(),
			row.Count,
			row.Winning,
			row.Losing,
			row.WinRate.String(),
			row.TotalVolume,
		)
	}
	fmt.Fprintf(&b, "| **%s** | **%s** | | | | | |\n", "Total", r.Total.SignedString())

	return b.String()
}
