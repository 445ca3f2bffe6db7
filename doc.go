// Package analytics derives display-ready performance metrics from raw
// portfolio data: dated value series (NAV, index levels, prices) and flat
// trade records.
//
// The core is two pure, synchronous stages:
//   - Normalize turns an ordered value series into per-point cumulative
//     return, running peak, and drawdown.
//   - Aggregate buckets trade records by a key (asset, calendar month)
//     and reduces each bucket to summary statistics (total P&L, count,
//     win rate, volume); ToChartSlices ranks and scales the buckets for
//     chart consumption.
//
// Reports (history, comparison, P&L, monthly, risk) compose the two
// stages into the shapes consumed by the renderer and chart packages.
// Each computation is total and referentially transparent: a new input
// produces a fresh result, nothing is cached or mutated in place.
//
// This package is the foundational logic for the `fva` command-line tool.
package analytics
