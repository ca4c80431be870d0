package ledger

import (
	"time"

	"github.com/WaleiChang/expense-tracker/models"
)

// CategoryTotal is one category's summed amount.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthSummary is the total and per-category breakdown for one month.
// Categories appear in first-seen order among the month's records.
type MonthSummary struct {
	Month      string          `json:"month"`
	Label      string          `json:"label"`
	Total      float64         `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

// MonthlySummary sums the expenses whose month key equals monthKey. An empty
// or wildcard monthKey defaults to the month containing now.
func MonthlySummary(expenses []models.Expense, monthKey string, now time.Time) MonthSummary {
	if wildcard(monthKey) {
		monthKey = CurrentMonthKey(now)
	}

	summary := MonthSummary{
		Month:      monthKey,
		Label:      MonthLabel(monthKey),
		Categories: []CategoryTotal{},
	}

	index := map[string]int{}
	for _, e := range expenses {
		if MonthKey(e.Date) != monthKey {
			continue
		}
		summary.Total += e.Amount
		i, ok := index[e.Category]
		if !ok {
			i = len(summary.Categories)
			index[e.Category] = i
			summary.Categories = append(summary.Categories, CategoryTotal{Category: e.Category})
		}
		summary.Categories[i].Total += e.Amount
	}

	return summary
}
