package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/fundview/analytics"
	"github.com/fundview/analytics/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parseMarkdown parses a rendered report and returns the H1 title and the
// number of table rows (header excluded). Parsing the output instead of
// string-matching keeps the tests stable across cosmetic changes.
func parseMarkdown(t *testing.T, source string) (title string, rows int) {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 1 {
				title = string(v.Lines().Value(src))
			}
		case *east.TableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return title, rows
}

func sampleHistoryReport() *analytics.HistoryReport {
	h := new(date.History[float64])
	h.Append(date.New(2025, time.January, 1), 100)
	h.Append(date.New(2025, time.January, 2), 110)
	h.Append(date.New(2025, time.January, 3), 90)
	return analytics.NewHistoryReport("FUND", "EUR", h)
}

func TestHistoryMarkdown(t *testing.T) {
	out := HistoryMarkdown(sampleHistoryReport())

	title, rows := parseMarkdown(t, out)
	if want := "History for FUND"; title != want {
		t.Errorf("title = %q want %q", title, want)
	}
	if rows != 3 {
		t.Errorf("table rows = %d want 3", rows)
	}
	if !strings.Contains(out, "-18.18%") {
		t.Errorf("output does not contain the drawdown value:\n%s", out)
	}
}

func TestPnLMarkdown(t *testing.T) {
	records := []analytics.TradeRecord{
		{Asset: "A", Date: date.New(2025, time.January, 10), PnL: 50, Volume: 100, Won: true},
		{Asset: "B", Date: date.New(2025, time.January, 15), PnL: -20, Volume: 30, Won: false},
		{Asset: "A", Date: date.New(2025, time.February, 2), PnL: 10, Volume: 40, Won: true},
	}
	out := PnLMarkdown(analytics.NewPnLReport(records, "USD"))

	title, rows := parseMarkdown(t, out)
	if want := "Profit & Loss by Asset (USD)"; !strings.Contains(title, "Profit") {
		t.Errorf("title = %q want %q", title, want)
	}
	// two asset rows plus the total row
	if rows != 3 {
		t.Errorf("table rows = %d want 3", rows)
	}
	if !strings.Contains(out, "100.00%") {
		t.Errorf("output does not contain A's win rate:\n%s", out)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	records := []analytics.TradeRecord{
		{Asset: "A", Date: date.New(2025, time.January, 10), PnL: 50, Won: true},
		{Asset: "B", Date: date.New(2025, time.February, 15), PnL: -20, Won: false},
	}
	out := MonthlyMarkdown(analytics.NewMonthlyReport(records, "USD"))

	_, rows := parseMarkdown(t, out)
	// two month rows plus the total row
	if rows != 3 {
		t.Errorf("table rows = %d want 3", rows)
	}
	if !strings.Contains(out, "2025-01") || !strings.Contains(out, "2025-02") {
		t.Errorf("output does not contain both months:\n%s", out)
	}
}

func TestRiskMarkdown(t *testing.T) {
	points := analytics.Normalize(analytics.Observations(func() *date.History[float64] {
		h := new(date.History[float64])
		h.Append(date.New(2025, time.January, 1), 100)
		h.Append(date.New(2025, time.January, 2), 110)
		h.Append(date.New(2025, time.January, 3), 90)
		return h
	}()))
	out := RiskMarkdown(analytics.NewRiskReport("FUND", points))

	title, rows := parseMarkdown(t, out)
	if want := "Risk Metrics for FUND"; title != want {
		t.Errorf("title = %q want %q", title, want)
	}
	if rows != 6 {
		t.Errorf("table rows = %d want 6", rows)
	}
}
