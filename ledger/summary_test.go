package ledger

import (
	"testing"
	"time"

	"github.com/WaleiChang/expense-tracker/models"
)

func TestMonthlySummary(t *testing.T) {
	expenses := []models.Expense{
		{Title: "A", Amount: 100, Date: "2024-03-01", Category: "餐飲"},
		{Title: "B", Amount: 50, Date: "2024-03-02", Category: "餐飲"},
		{Title: "C", Amount: 30, Date: "2024-04-01", Category: "其他"},
	}
	now := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)

	t.Run("target month", func(t *testing.T) {
		got := MonthlySummary(expenses, "2024-03", now)
		if got.Total != 150 {
			t.Errorf("Total = %v, want 150", got.Total)
		}
		if len(got.Categories) != 1 {
			t.Fatalf("Categories = %v, want one entry", got.Categories)
		}
		if got.Categories[0].Category != "餐飲" || got.Categories[0].Total != 150 {
			t.Errorf("Categories[0] = %+v, want 餐飲 150", got.Categories[0])
		}
		if got.Label != "2024 年 03 月" {
			t.Errorf("Label = %q", got.Label)
		}
	})

	t.Run("wildcard defaults to current month", func(t *testing.T) {
		got := MonthlySummary(expenses, FilterAll, now)
		if got.Month != "2024-04" {
			t.Errorf("Month = %q, want 2024-04", got.Month)
		}
		if got.Total != 30 {
			t.Errorf("Total = %v, want 30", got.Total)
		}
	})

	t.Run("empty month key defaults to current month", func(t *testing.T) {
		got := MonthlySummary(expenses, "", now)
		if got.Month != "2024-04" {
			t.Errorf("Month = %q, want 2024-04", got.Month)
		}
	})

	t.Run("month with no records", func(t *testing.T) {
		got := MonthlySummary(expenses, "2020-01", now)
		if got.Total != 0 || len(got.Categories) != 0 {
			t.Errorf("got %+v, want zero summary", got)
		}
	})

	t.Run("categories keep first-seen order", func(t *testing.T) {
		mixed := []models.Expense{
			{Amount: 10, Date: "2024-03-05", Category: "購物"},
			{Amount: 20, Date: "2024-03-01", Category: "餐飲"},
			{Amount: 30, Date: "2024-03-09", Category: "購物"},
		}
		got := MonthlySummary(mixed, "2024-03", now)
		if len(got.Categories) != 2 {
			t.Fatalf("Categories = %v", got.Categories)
		}
		if got.Categories[0].Category != "購物" || got.Categories[0].Total != 40 {
			t.Errorf("Categories[0] = %+v, want 購物 40", got.Categories[0])
		}
		if got.Categories[1].Category != "餐飲" || got.Categories[1].Total != 20 {
			t.Errorf("Categories[1] = %+v, want 餐飲 20", got.Categories[1])
		}
	})
}
