package billing

import "time"

// Total sums the item amounts. Negative amounts are not rejected; the sum
// is whatever the arithmetic yields.
func Total(items []Item) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Amount
	}
	return sum
}

// DueDate is the issue date plus exactly 30 calendar days, with standard
// month and year rollover. Not business days.
func DueDate(issue time.Time) time.Time {
	return issue.AddDate(0, 0, 30)
}
