package expense

import (
	"fmt"
)

// Summary holds the aggregate figures for a collection. Accumulation stays in
// full float64 precision; rounding happens only at formatting time so that
// repeated aggregations do not compound rounding error.
type Summary struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// Aggregate computes total, count and average over the input. The empty
// collection yields zeros; average is defined as 0 rather than NaN so display
// code never has to guard.
func Aggregate(expenses []*Expense) Summary {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	count := len(expenses)
	var average float64
	if count > 0 {
		average = total / float64(count)
	}

	return Summary{Total: total, Count: count, Average: average}
}

// FormatAmount renders a monetary value for display, rounded to zero decimal
// places.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// CountLabel renders the expense count the way the list header shows it.
func CountLabel(count int) string {
	return fmt.Sprintf("%d expenses", count)
}
