package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD. Dates are kept in UTC so whole-day
// arithmetic is not affected by DST transitions.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.UTC)
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(layoutDate)
}

// RentalDays returns the whole-day difference between two dates, clamped
// to a minimum of one billable day.
func RentalDays(start, end time.Time) int64 {
	days := int64(end.Sub(start) / (24 * time.Hour))
	if days < 1 {
		return 1
	}
	return days
}
