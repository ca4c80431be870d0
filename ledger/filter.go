package ledger

import (
	"github.com/WaleiChang/expense-tracker/models"
)

// Filter returns the expenses matching both selections. FilterAll (or the
// empty string) is a wildcard for either axis; matching is exact string
// equality on month key and category.
func Filter(expenses []models.Expense, month, category string) []models.Expense {
	matched := []models.Expense{}
	for _, e := range expenses {
		if !wildcard(month) && MonthKey(e.Date) != month {
			continue
		}
		if !wildcard(category) && e.Category != category {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

func wildcard(filter string) bool {
	return filter == "" || filter == FilterAll
}
