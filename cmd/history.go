package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundview/analytics"
	"github.com/fundview/analytics/chart"
	"github.com/fundview/analytics/date"
	"github.com/fundview/analytics/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	asset      string
	currency   string
	url        string
	datesPath  string
	valuesPath string
	png        string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the normalized value history of an asset" }
func (*historyCmd) Usage() string {
	return `fva history -a <asset> [-url <addr> -dates <path> -values <path>] [-png <file>]

  Displays the value history of an asset with cumulative return, running
  peak, and drawdown per point. The series is read from the series file,
  or extracted from a backend JSON document when -url is given.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "asset name to report on")
	f.StringVar(&c.currency, "c", "", "currency of the series (defaults to the reporting currency)")
	f.StringVar(&c.url, "url", "", "backend URL serving a JSON document containing the series")
	f.StringVar(&c.datesPath, "dates", "$.history[*].date", "jsonpath selecting the dates in the backend document")
	f.StringVar(&c.valuesPath, "values", "$.history[*].value", "jsonpath selecting the values in the backend document")
	f.StringVar(&c.png, "png", "", "also write a line chart to this file")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		fmt.Fprintln(os.Stderr, "-a <asset> must be provided")
		return subcommands.ExitUsageError
	}
	if c.currency == "" {
		c.currency = *reportingCurrency
	}

	series, err := c.series()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := analytics.NewHistoryReport(c.asset, c.currency, series)
	printMarkdown(renderer.HistoryMarkdown(report))

	if c.png != "" {
		png, err := chart.History(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		return writePNG(c.png, png)
	}
	return subcommands.ExitSuccess
}

// series loads the asset series from the backend URL or the series file.
func (c *historyCmd) series() (*date.History[float64], error) {
	if c.url == "" {
		return DecodeSeries(*seriesFile)
	}
	var jobj any
	if err := analytics.Jwget(analytics.Daily(), c.url, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch %q: %w", c.url, err)
	}
	return analytics.ExtractObservations(jobj, c.datesPath, c.valuesPath)
}
