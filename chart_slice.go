package analytics

import (
	"math"
	"sort"
)

// PaletteSize is the number of distinct colors a chart can cycle through.
const PaletteSize = 20

// ChartSlice is a GroupSummary prepared for chart consumption: the
// magnitude sizes the slice while the signed TotalPnL keeps the
// profit/loss semantics for coloring and labels.
type ChartSlice struct {
	GroupSummary
	Magnitude  float64 // abs(TotalPnL), used only for visual sizing
	ColorIndex int     // stable palette index by rank
}

// ToChartSlices ranks summaries for a pie or bar chart. Slices are
// sorted descending by magnitude (stable, ties keep input order) and
// colored by rank, not by identity: the same asset can get a different
// color across refreshes if its rank changes.
func ToChartSlices(summaries []GroupSummary) []ChartSlice {
	out := make([]ChartSlice, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ChartSlice{GroupSummary: s, Magnitude: math.Abs(s.TotalPnL)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Magnitude > out[j].Magnitude })
	for i := range out {
		out[i].ColorIndex = i % PaletteSize
	}
	return out
}

func (s ChartSlice) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(s.GroupSummary)
	w.Append("magnitude", s.Magnitude)
	w.Append("colorIndex", s.ColorIndex)
	return w.MarshalJSON()
}
