package date

import (
	"testing"
	"time"
)

func TestRangeEnding(t *testing.T) {
	today := New(2024, time.June, 15)
	testCases := []struct {
		name   string
		period Period
		want   Range
	}{
		{name: "week", period: Week, want: Range{From: New(2024, time.June, 8), To: today}},
		{name: "month", period: Month, want: Range{From: New(2024, time.May, 15), To: today}},
		{name: "quarter", period: Quarter, want: Range{From: New(2024, time.March, 15), To: today}},
		{name: "half-year", period: HalfYear, want: Range{From: New(2023, time.December, 15), To: today}},
		{name: "year", period: Year, want: Range{From: New(2023, time.June, 15), To: today}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.period.RangeEnding(today)
			if !ok {
				t.Fatalf("RangeEnding() ok = false, want true")
			}
			if got != tc.want {
				t.Errorf("RangeEnding() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRangeEndingAll(t *testing.T) {
	if _, ok := All.RangeEnding(Today()); ok {
		t.Error("All.RangeEnding() ok = true, want false: the all period is unbounded")
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{From: New(2024, time.June, 8), To: New(2024, time.June, 15)}
	if !r.Contains(New(2024, time.June, 8)) || !r.Contains(New(2024, time.June, 15)) {
		t.Error("Contains() should include both boundaries")
	}
	if r.Contains(New(2024, time.June, 7)) || r.Contains(New(2024, time.June, 16)) {
		t.Error("Contains() should exclude dates outside the range")
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"all": All, "": All, "week": Week, "Month": Month,
		"quarterly": Quarter, "half-year": HalfYear, "year": Year,
	} {
		got, err := ParsePeriod(in)
		if err != nil {
			t.Errorf("ParsePeriod(%q) returned an unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(\"fortnight\") expected an error")
	}
}
