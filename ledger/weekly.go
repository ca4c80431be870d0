package ledger

import (
	"fmt"
	"time"

	"github.com/WaleiChang/expense-tracker/models"
)

// DayTotal is one calendar day's summed amount within the week window.
type DayTotal struct {
	Date  string  `json:"date"`  // yyyy-MM-dd
	Label string  `json:"label"` // "M/D"
	Total float64 `json:"total"`
}

// WeekSummary aggregates the Monday-to-now window of the current week: a
// per-category breakdown and a fixed 7-slot daily series. Days after the
// reference instant stay at zero.
type WeekSummary struct {
	Start      string          `json:"start"` // Monday, yyyy-MM-dd
	Categories []CategoryTotal `json:"categories"`
	Days       []DayTotal      `json:"days"`
}

// WeeklySummary buckets the expenses falling inside the week containing ref.
// The week starts Monday at midnight and is truncated at ref; the comparison
// ignores time-of-day on both sides.
func WeeklySummary(expenses []models.Expense, ref time.Time) WeekSummary {
	refDay := midnight(ref)
	offset := int(ref.Weekday())
	if offset == 0 { // Sunday
		offset = 7
	}
	start := refDay.AddDate(0, 0, -(offset - 1))

	summary := WeekSummary{
		Start:      start.Format("2006-01-02"),
		Categories: []CategoryTotal{},
		Days:       make([]DayTotal, 7),
	}

	slot := map[string]int{}
	for i := range summary.Days {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		summary.Days[i] = DayTotal{
			Date:  key,
			Label: fmt.Sprintf("%d/%d", int(d.Month()), d.Day()),
		}
		slot[key] = i
	}

	index := map[string]int{}
	for _, e := range expenses {
		day, err := time.ParseInLocation("2006-01-02", e.Date, ref.Location())
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(refDay) {
			continue
		}

		i, ok := index[e.Category]
		if !ok {
			i = len(summary.Categories)
			index[e.Category] = i
			summary.Categories = append(summary.Categories, CategoryTotal{Category: e.Category})
		}
		summary.Categories[i].Total += e.Amount

		if s, ok := slot[day.Format("2006-01-02")]; ok {
			summary.Days[s].Total += e.Amount
		}
	}

	return summary
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
