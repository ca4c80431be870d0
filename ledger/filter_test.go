package ledger

import (
	"reflect"
	"testing"

	"github.com/WaleiChang/expense-tracker/models"
)

func TestFilter(t *testing.T) {
	expenses := []models.Expense{
		{Title: "午餐", Date: "2024-03-01", Category: "餐飲"},
		{Title: "電影", Date: "2024-03-02", Category: "娛樂"},
		{Title: "早餐", Date: "2024-04-01", Category: "餐飲"},
	}

	t.Run("both wildcards return input unchanged", func(t *testing.T) {
		got := Filter(expenses, FilterAll, FilterAll)
		if !reflect.DeepEqual(got, expenses) {
			t.Errorf("Filter(all, all) = %v, want %v", got, expenses)
		}
	})

	t.Run("month filter", func(t *testing.T) {
		got := Filter(expenses, "2024-03", FilterAll)
		if len(got) != 2 || got[0].Title != "午餐" || got[1].Title != "電影" {
			t.Errorf("Filter(2024-03, all) = %v", got)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		got := Filter(expenses, FilterAll, "餐飲")
		if len(got) != 2 || got[0].Title != "午餐" || got[1].Title != "早餐" {
			t.Errorf("Filter(all, 餐飲) = %v", got)
		}
	})

	t.Run("both filters", func(t *testing.T) {
		got := Filter(expenses, "2024-03", "餐飲")
		if len(got) != 1 || got[0].Title != "午餐" {
			t.Errorf("Filter(2024-03, 餐飲) = %v", got)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		got := Filter(expenses, "2020-01", FilterAll)
		if len(got) != 0 {
			t.Errorf("Filter(2020-01, all) = %v, want empty", got)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := make([]models.Expense, len(expenses))
		copy(before, expenses)
		Filter(expenses, "2024-03", "餐飲")
		if !reflect.DeepEqual(expenses, before) {
			t.Error("Filter mutated its input")
		}
	})
}
