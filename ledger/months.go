// Package ledger derives summary views from an in-memory expense list. All
// functions are pure: they never mutate their input and are safe to call
// repeatedly with the same arguments.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/WaleiChang/expense-tracker/models"
)

// UnknownMonth is the bucket for expenses whose date cannot be parsed.
const UnknownMonth = "unknown"

// FilterAll is the wildcard value for month and category filters.
const FilterAll = "all"

// MonthKey extracts the "YYYY-MM" key from a yyyy-MM-dd date string. Absent or
// malformed dates map to UnknownMonth.
func MonthKey(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return UnknownMonth
	}
	if !allDigits(parts[0]) || !allDigits(parts[1]) {
		return UnknownMonth
	}
	return parts[0] + "-" + parts[1]
}

// CurrentMonthKey returns the month key for the given instant.
func CurrentMonthKey(now time.Time) string {
	return now.Format("2006-01")
}

// DistinctMonths returns the month keys present in the list, most recent
// first. UnknownMonth is never included.
func DistinctMonths(expenses []models.Expense) []string {
	seen := map[string]bool{}
	months := []string{}
	for _, e := range expenses {
		key := MonthKey(e.Date)
		if key == UnknownMonth || seen[key] {
			continue
		}
		seen[key] = true
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// MonthLabel renders a month key as a human label, e.g. "2024-05" becomes
// "2024 年 05 月". Values without a dash pass through unchanged.
func MonthLabel(key string) string {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) < 2 {
		return key
	}
	return parts[0] + " 年 " + parts[1] + " 月"
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
