package expense

import (
	"sort"
	"time"
)

// GroupMode selects how the list view partitions expenses into sections.
type GroupMode string

const (
	GroupByTime     GroupMode = "by_time"
	GroupByCategory GroupMode = "by_category"
)

// Section is a named, totaled, ordered sub-list produced for display.
type Section struct {
	Title       string     `json:"title"`
	TotalAmount float64    `json:"total_amount"`
	Items       []*Expense `json:"items"`
}

// Group partitions expenses into sections. It is a pure transform invoked
// fresh on every filter or view-type change; no incremental update is
// attempted.
func Group(expenses []*Expense, mode GroupMode, now time.Time) []Section {
	if mode == GroupByCategory {
		return groupByCategory(expenses)
	}
	return groupByTime(expenses, now)
}

// groupByCategory makes one section per observed category value. Sections are
// ordered by total descending; the stable sort keeps discovery order as the
// tie-break so the result is deterministic.
func groupByCategory(expenses []*Expense) []Section {
	sections, index := make([]Section, 0), make(map[string]int)
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(sections)
			index[e.Category] = i
			sections = append(sections, Section{Title: e.Category})
		}
		sections[i].Items = append(sections[i].Items, e)
		sections[i].TotalAmount += e.Amount
	}

	for i := range sections {
		sortItemsByDateDesc(sections[i].Items)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].TotalAmount > sections[j].TotalAmount
	})
	return sections
}

// groupByTime buckets expenses by day label: "Today", "Yesterday", or the
// formatted day ("3 Aug"). Today comes first, then Yesterday, then dated
// sections ordered by their most recent item.
func groupByTime(expenses []*Expense, now time.Time) []Section {
	today := DayOf(now)
	yesterday := today.AddDate(0, 0, -1)

	sections, index := make([]Section, 0), make(map[string]int)
	for _, e := range expenses {
		label := dayLabel(e.Date, today, yesterday)
		i, ok := index[label]
		if !ok {
			i = len(sections)
			index[label] = i
			sections = append(sections, Section{Title: label})
		}
		sections[i].Items = append(sections[i].Items, e)
		sections[i].TotalAmount += e.Amount
	}

	for i := range sections {
		sortItemsByDateDesc(sections[i].Items)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		pi, pj := labelPriority(sections[i].Title), labelPriority(sections[j].Title)
		if pi != pj {
			return pi < pj
		}
		return topItemTime(sections[i]).After(topItemTime(sections[j]))
	})
	return sections
}

func dayLabel(t, today, yesterday time.Time) string {
	day := DayOf(t)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(yesterday):
		return "Yesterday"
	default:
		return day.Format("2 Jan")
	}
}

func labelPriority(label string) int {
	switch label {
	case "Today":
		return 0
	case "Yesterday":
		return 1
	default:
		return 2
	}
}

// topItemTime is the timestamp of the most recent item; items are already
// sorted date descending when this runs.
func topItemTime(s Section) time.Time {
	if len(s.Items) == 0 {
		return time.Time{}
	}
	return s.Items[0].Date
}

func sortItemsByDateDesc(items []*Expense) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}
