package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fundview/analytics"
	"github.com/fundview/analytics/chart"
	"github.com/fundview/analytics/renderer"
	"github.com/google/subcommands"
)

type pnlCmd struct {
	png      string
	jsonDump bool
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "display profit and loss aggregated by asset" }
func (*pnlCmd) Usage() string {
	return `fva pnl [-png <file>] [-json]

  Aggregates the trade records by asset: total P&L, trade count, win
  rate, and volume per asset, ranked chart slices, and the grand total.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.png, "png", "", "also write a pie chart to this file")
	f.BoolVar(&c.jsonDump, "json", false, "emit the ranked slices as JSON instead of markdown")
}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := DecodeTrades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := analytics.NewPnLReport(records, *reportingCurrency)

	if c.jsonDump {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Slices); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.PnLMarkdown(report))
	}

	if c.png != "" {
		png, err := chart.PnLPie(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		return writePNG(c.png, png)
	}
	return subcommands.ExitSuccess
}
