package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundview/analytics"
	"github.com/fundview/analytics/renderer"
	"github.com/google/subcommands"
)

type riskCmd struct {
	asset string
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display risk metrics of the value series" }
func (*riskCmd) Usage() string {
	return `fva risk [-a <asset>]

  Displays max drawdown, volatility, and best/worst single-step returns
  derived from the value series.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "Portfolio", "asset name to report on")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := DecodeSeries(*seriesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	points := analytics.Normalize(analytics.Observations(series))
	report := analytics.NewRiskReport(c.asset, points)
	printMarkdown(renderer.RiskMarkdown(report))

	return subcommands.ExitSuccess
}
