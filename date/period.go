package date

import (
	"fmt"
	"strings"
)

// Period is a named trailing window used to scope checkbook reports.
type Period int

const (
	All Period = iota
	Week
	Month
	Quarter
	HalfYear
	Year
)

func (p Period) String() string {
	switch p {
	case All:
		return "all"
	case Week:
		return "week"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case HalfYear:
		return "half-year"
	case Year:
		return "year"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a string into a Period.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "all", "":
		return All, nil
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	case "quarter", "quarterly":
		return Quarter, nil
	case "half-year", "halfyear":
		return HalfYear, nil
	case "year", "yearly":
		return Year, nil
	default:
		return All, fmt.Errorf("unknown period %q", p)
	}
}

// RangeEnding returns the trailing window of the period anchored at 'today',
// boundaries included. ok is false for All, which is unbounded.
func (p Period) RangeEnding(today Date) (r Range, ok bool) {
	switch p {
	case Week:
		return Range{From: today.Add(-7), To: today}, true
	case Month:
		return Range{From: today.AddMonths(-1), To: today}, true
	case Quarter:
		return Range{From: today.AddMonths(-3), To: today}, true
	case HalfYear:
		return Range{From: today.AddMonths(-6), To: today}, true
	case Year:
		return Range{From: today.AddMonths(-12), To: today}, true
	default:
		return Range{}, false
	}
}
