package renderer

import (
	"bytes"
	"fmt"

	"github.com/fundview/analytics"
	md "github.com/nao1215/markdown"
)

func CompareMarkdown(r *analytics.ComparisonReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s vs %s", r.Asset, r.Benchmark))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", r.Asset, r.Benchmark, "Spread"},
		Rows:   [][]string{},
	}
	for _, entry := range r.Entries {
		table.Rows = append(table.Rows, []string{
			entry.Date.String(),
			entry.Portfolio.SignedString(),
			entry.Benchmark.SignedString(),
			entry.Spread.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
