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

type compareCmd struct {
	asset         string
	benchmark     string
	benchmarkFile string
	png           string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the portfolio series against a benchmark" }
func (*compareCmd) Usage() string {
	return `fva compare -b <file> [-a <name>] [-bn <name>] [-png <file>]

  Normalizes the portfolio series and a benchmark series to cumulative
  returns and aligns them on the union of their dates.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "Portfolio", "display name of the portfolio series")
	f.StringVar(&c.benchmark, "bn", "Benchmark", "display name of the benchmark series")
	f.StringVar(&c.benchmarkFile, "b", "", "path to the benchmark series file (JSONL format)")
	f.StringVar(&c.png, "png", "", "also write a line chart to this file")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.benchmarkFile == "" {
		fmt.Fprintln(os.Stderr, "-b <benchmark file> must be provided")
		return subcommands.ExitUsageError
	}

	portfolio, err := DecodeSeries(*seriesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	benchmark, err := DecodeSeries(c.benchmarkFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := analytics.NewComparisonReport(c.asset, c.benchmark, portfolio, benchmark)
	printMarkdown(renderer.CompareMarkdown(report))

	if c.png != "" {
		png, err := chart.Compare(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		return writePNG(c.png, png)
	}
	return subcommands.ExitSuccess
}
