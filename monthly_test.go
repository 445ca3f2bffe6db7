package analytics

import (
	"testing"
	"time"

	"github.com/fundview/analytics/date"
)

func TestMonthlyBuckets(t *testing.T) {
	// records deliberately out of chronological order
	records := []TradeRecord{
		{Asset: "A", Date: date.New(2025, time.February, 2), PnL: 10, Volume: 40, Won: true},
		{Asset: "B", Date: date.New(2025, time.January, 15), PnL: -20, Volume: 30, Won: false},
		{Asset: "A", Date: date.New(2025, time.January, 10), PnL: 50, Volume: 100, Won: true},
		{Asset: "C", Date: date.New(2025, time.February, 20), PnL: -5, Volume: 10, Won: false},
	}

	rows := MonthlyBuckets(records)
	if len(rows) != 2 {
		t.Fatalf("MonthlyBuckets() returned %d rows, want 2", len(rows))
	}

	jan := rows[0]
	if jan.Month != "2025-01" {
		t.Errorf("rows[0].Month = %q want %q", jan.Month, "2025-01")
	}
	if jan.TotalPnL != 30 {
		t.Errorf("jan.TotalPnL = %v want 30", jan.TotalPnL)
	}
	if jan.Winning != 1 || jan.Losing != 1 {
		t.Errorf("jan.Winning/Losing = %d/%d want 1/1", jan.Winning, jan.Losing)
	}
	if !jan.WinRate.Equal(50) {
		t.Errorf("jan.WinRate = %v want 50%%", jan.WinRate)
	}

	feb := rows[1]
	if feb.Month != "2025-02" {
		t.Errorf("rows[1].Month = %q want %q", feb.Month, "2025-02")
	}
	if feb.TotalPnL != 5 {
		t.Errorf("feb.TotalPnL = %v want 5", feb.TotalPnL)
	}
	if feb.Count != 2 {
		t.Errorf("feb.Count = %v want 2", feb.Count)
	}
}

func TestMonthlyBuckets_Empty(t *testing.T) {
	rows := MonthlyBuckets(nil)
	if len(rows) != 0 {
		t.Errorf("MonthlyBuckets(nil) returned %d rows, want 0", len(rows))
	}
}

func TestMonthlyBuckets_YearBoundary(t *testing.T) {
	records := []TradeRecord{
		{Asset: "A", Date: date.New(2025, time.January, 5), PnL: 1, Won: true},
		{Asset: "A", Date: date.New(2024, time.December, 30), PnL: 2, Won: true},
	}
	rows := MonthlyBuckets(records)
	if len(rows) != 2 {
		t.Fatalf("MonthlyBuckets() returned %d rows, want 2", len(rows))
	}
	if rows[0].Month != "2024-12" || rows[1].Month != "2025-01" {
		t.Errorf("months = %q, %q want chronological 2024-12, 2025-01", rows[0].Month, rows[1].Month)
	}
}
