package date

import (
	"slices"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", New(2025, time.July, 1)},
		{"2025-7-1", New(2025, time.July, 1)}, // permissive single-digit form
		{"2024-02-29", New(2024, time.February, 29)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse(\"not-a-date\") expected an error, got nil")
	}
}

func TestString(t *testing.T) {
	d := New(2025, time.July, 1)
	if got, want := d.String(), "2025-07-01"; got != want {
		t.Errorf("String() = %q want %q", got, want)
	}
}

func TestNew_Normalizes(t *testing.T) {
	// day 0 means last day of the previous month
	d := New(2025, time.March, 0)
	if got, want := d, New(2025, time.February, 28); got != want {
		t.Errorf("New(2025, March, 0) = %v want %v", got, want)
	}
}

func TestStartOfEndOf_Monthly(t *testing.T) {
	d := New(2024, time.February, 15)
	if got, want := d.StartOf(Monthly), New(2024, time.February, 1); got != want {
		t.Errorf("StartOf(Monthly) = %v want %v", got, want)
	}
	if got, want := d.EndOf(Monthly), New(2024, time.February, 29); got != want {
		t.Errorf("EndOf(Monthly) = %v want %v", got, want)
	}
}

func TestRangeIdentifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{NewRange(New(2025, time.July, 15), Monthly), "2025-07"},
		{NewRange(New(2025, time.July, 15), Yearly), "2025"},
		{NewRange(New(2025, time.July, 15), Quarterly), "2025-Q3"},
		{NewRange(New(2025, time.July, 15), Daily), "2025-07-15"},
	}
	for _, tt := range tests {
		if got := tt.r.Identifier(); got != tt.want {
			t.Errorf("Identifier() = %q want %q", got, tt.want)
		}
	}
}

func TestIterate(t *testing.T) {
	a := new(History[float64])
	a.Append(New(2025, time.January, 1), 1)
	a.Append(New(2025, time.January, 3), 3)

	b := new(History[float64])
	b.Append(New(2025, time.January, 2), 2)
	b.Append(New(2025, time.January, 3), 30)

	got := slices.Collect(Iterate(a, b))
	want := []Date{
		New(2025, time.January, 1),
		New(2025, time.January, 2),
		New(2025, time.January, 3),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Iterate() = %v want %v", got, want)
	}
}
