package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundview/analytics"
	"github.com/fundview/analytics/chart"
	"github.com/fundview/analytics/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct {
	png string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display trade performance bucketed by calendar month" }
func (*monthlyCmd) Usage() string {
	return `fva monthly [-png <file>]

  Rebuckets the trade records by calendar month, with winning and losing
  counts per month for trend reading.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.png, "png", "", "also write a bar chart to this file")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := DecodeTrades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := analytics.NewMonthlyReport(records, *reportingCurrency)
	printMarkdown(renderer.MonthlyMarkdown(report))

	if c.png != "" {
		png, err := chart.MonthlyBars(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		return writePNG(c.png, png)
	}
	return subcommands.ExitSuccess
}
