// Package renderer turns analytics reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/fundview/analytics"
	md "github.com/nao1215/markdown"
)

func HistoryMarkdown(r *analytics.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", r.Asset))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Value", "Cumulative", "Peak", "Drawdown"},
		Rows:   [][]string{},
	}
	for _, entry := range r.Entries {
		table.Rows = append(table.Rows, []string{
			entry.Date.String(),
			fmt.Sprintf("%.2f", entry.Value),
			entry.CumulativeReturn.SignedString(),
			fmt.Sprintf("%.2f", entry.RunningPeak),
			entry.Drawdown.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
