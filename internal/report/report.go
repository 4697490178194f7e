package report

import (
	"time"

	"github.com/smartexpense/expense-tracker/internal/expense"
)

// DailyTotal is one bar of the weekly chart: a 3-letter day abbreviation and
// that day's spending sum.
type DailyTotal struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

// CategoryShare is one row of the category breakdown over the weekly window.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// WeeklyReport summarizes spending for the Sunday-through-Saturday week
// containing the reference date. Note the window deliberately differs from
// the list filter's Monday-start week; the two conventions are independent.
type WeeklyReport struct {
	StartOfWeek  time.Time       `json:"start_of_week"`
	EndOfWeek    time.Time       `json:"end_of_week"`
	TotalAmount  float64         `json:"total_amount"`
	AverageDaily float64         `json:"average_daily"`
	DailyData    []DailyTotal    `json:"daily_data"`
	CategoryData []CategoryShare `json:"category_data"`
	VsLastWeek   string          `json:"vs_last_week"`
	ChangeType   string          `json:"change_type"`
}

// Weekly computes the report over the week containing ref. Pure: safe to
// re-invoke on every snapshot.
func Weekly(expenses []*expense.Expense, ref time.Time) WeeklyReport {
	// Most recent Sunday on or before ref's local calendar day; Go's
	// Weekday already counts Sunday as 0.
	refDay := expense.DayOf(ref)
	start := refDay.AddDate(0, 0, -int(refDay.Weekday()))
	end := start.AddDate(0, 0, 6)

	weekly := make([]*expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		day := expense.DayOf(e.Date)
		if !day.Before(start) && !day.After(end) {
			weekly = append(weekly, e)
		}
	}

	total := expense.Aggregate(weekly).Total

	// Fixed divisor: the weekly average is always over 7 days, not over the
	// days that happen to have data.
	averageDaily := total / 7

	daily := make([]DailyTotal, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		var sum float64
		for _, e := range weekly {
			if expense.DayOf(e.Date).Equal(day) {
				sum += e.Amount
			}
		}
		daily = append(daily, DailyTotal{Day: day.Format("Mon"), Amount: sum})
	}

	return WeeklyReport{
		StartOfWeek:  start,
		EndOfWeek:    end,
		TotalAmount:  total,
		AverageDaily: averageDaily,
		DailyData:    daily,
		CategoryData: categoryShares(weekly, total),
		// TODO: compute the previous-week delta instead of these placeholders
		VsLastWeek: "0",
		ChangeType: "Increased spending",
	}
}

// categoryShares breaks the weekly window down per category, largest total
// first. Percentage of a zero total is defined as 0.
func categoryShares(weekly []*expense.Expense, total float64) []CategoryShare {
	sections := expense.Group(weekly, expense.GroupByCategory, time.Time{})

	shares := make([]CategoryShare, 0, len(sections))
	for _, sec := range sections {
		var percentage float64
		if total > 0 {
			percentage = sec.TotalAmount / total * 100
		}
		shares = append(shares, CategoryShare{
			Category:   sec.Title,
			Amount:     sec.TotalAmount,
			Percentage: percentage,
		})
	}
	return shares
}
