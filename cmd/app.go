// Package cmd implements the CLI application to inspect portfolio analytics.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fundview/analytics"
	"github.com/fundview/analytics/date"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&historyCmd{},
	&compareCmd{},
	&pnlCmd{},
	&monthlyCmd{},
	&riskCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var seriesFile = flag.String("series-file", "series.jsonl", "Path to the value series file (JSONL format)")
var tradesFile = flag.String("trades-file", "trades.jsonl", "Path to the trade records file (JSONL format)")
var reportingCurrency = flag.String("currency", "USD", "Reporting currency for P&L totals")

// DecodeSeries reads the value series from a JSONL file.
func DecodeSeries(filename string) (*date.History[float64], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open series file %q: %w", filename, err)
	}
	defer f.Close()
	return analytics.DecodeObservations(filename, f)
}

// DecodeTrades reads the trade records from the app trades file.
func DecodeTrades() ([]analytics.TradeRecord, error) {
	f, err := os.Open(*tradesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open trades file %q: %w", *tradesFile, err)
	}
	defer f.Close()
	return analytics.DecodeTradeRecords(*tradesFile, f)
}

// printMarkdown renders a markdown report to the terminal. When fancy
// rendering fails (dumb terminal, pipe), the raw markdown is still valid
// output, so print it as is.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// writePNG writes chart bytes next to the report output.
func writePNG(filename string, png []byte) subcommands.ExitStatus {
	if err := os.WriteFile(filename, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Chart written to %s\n", filename)
	return subcommands.ExitSuccess
}
