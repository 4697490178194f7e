package expense

import (
	"time"
)

// DateRange selects the calendar window applied by Filter.
type DateRange string

const (
	RangeToday     DateRange = "today"
	RangeThisWeek  DateRange = "this_week"
	RangeThisMonth DateRange = "this_month"
	RangeAllTime   DateRange = "all_time"
	RangeCustom    DateRange = "custom"
)

// AllCategories is the sentinel that disables category filtering.
const AllCategories = "All Categories"

// DateSelector pairs a range with the chosen day for custom selection. A
// custom selector with a zero Day applies no date filter: the picker can be
// open before a day is chosen and the list must not go empty.
type DateSelector struct {
	Range DateRange
	Day   time.Time
}

// DayOf truncates a timestamp to its calendar day in the system's local
// zone. The instant is converted first, so a UTC-carrying value from JSON or
// the sql driver buckets the same as an equivalent local one.
func DayOf(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// StartOfWeek returns the Monday on or before t's calendar day. The list
// filter week runs Monday through Sunday; the weekly report uses its own
// Sunday-start window.
func StartOfWeek(t time.Time) time.Time {
	day := DayOf(t)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, -(wd - 1))
}

func (s DateSelector) matches(t, now time.Time) bool {
	day := DayOf(t)

	switch s.Range {
	case RangeToday:
		return day.Equal(DayOf(now))
	case RangeThisWeek:
		start := StartOfWeek(now)
		end := start.AddDate(0, 0, 6)
		return !day.Before(start) && !day.After(end)
	case RangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, -1)
		return !day.Before(start) && !day.After(end)
	case RangeCustom:
		if s.Day.IsZero() {
			return true
		}
		return day.Equal(DayOf(s.Day))
	default:
		return true
	}
}

// Filter reduces expenses to those matching the date selector and the
// category. Both predicates are per-record and independent, so the order of
// application does not matter. The output carries no ordering guarantee;
// callers re-sort downstream.
func Filter(expenses []*Expense, sel DateSelector, category string, now time.Time) []*Expense {
	filtered := make([]*Expense, 0, len(expenses))
	for _, e := range expenses {
		if !sel.matches(e.Date, now) {
			continue
		}
		if category != AllCategories && category != "" && e.Category != category {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
