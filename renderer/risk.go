package renderer

import (
	"bytes"
	"fmt"

	"github.com/fundview/analytics"
	md "github.com/nao1215/markdown"
)

func RiskMarkdown(r *analytics.RiskReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Risk Metrics for %s", r.Asset))

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Return", r.TotalReturn.SignedString()},
			{"Max Drawdown", fmt.Sprintf("%s (%s)", r.MaxDrawdown.String(), r.TroughDate)},
			{"Peak", fmt.Sprintf("%.2f (%s)", r.PeakValue, r.PeakDate)},
			{"Volatility", r.Volatility.String()},
			{"Best Day", fmt.Sprintf("%s (%s)", r.BestReturn.SignedString(), r.BestDate)},
			{"Worst Day", fmt.Sprintf("%s (%s)", r.WorstReturn.SignedString(), r.WorstDate)},
		},
	}
	doc.Table(table)

	return doc.String()
}
