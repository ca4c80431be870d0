package ledger

import (
	"reflect"
	"testing"

	"github.com/WaleiChang/expense-tracker/models"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"full date", "2024-03-15", "2024-03"},
		{"first of month", "2024-12-01", "2024-12"},
		{"empty", "", UnknownMonth},
		{"no separator", "20240315", UnknownMonth},
		{"short year", "24-03-15", UnknownMonth},
		{"non numeric", "abcd-ef-gh", UnknownMonth},
		{"month only", "2024-03", "2024-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthKey(tt.date); got != tt.want {
				t.Errorf("MonthKey(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestDistinctMonths(t *testing.T) {
	expenses := []models.Expense{
		{Date: "2024-03-15", Category: "餐飲"},
		{Date: "2024-05-02", Category: "娛樂"},
		{Date: "2024-03-01", Category: "購物"},
		{Date: "", Category: "其他"},
		{Date: "not-a-date", Category: "其他"},
		{Date: "2023-12-31", Category: "餐飲"},
	}

	got := DistinctMonths(expenses)
	want := []string{"2024-05", "2024-03", "2023-12"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctMonths() = %v, want %v", got, want)
	}
}

func TestDistinctMonthsExcludesUnknown(t *testing.T) {
	expenses := []models.Expense{
		{Date: ""},
		{Date: "garbage"},
	}

	if got := DistinctMonths(expenses); len(got) != 0 {
		t.Errorf("DistinctMonths() = %v, want empty", got)
	}
}

func TestDistinctMonthsEmpty(t *testing.T) {
	if got := DistinctMonths(nil); len(got) != 0 {
		t.Errorf("DistinctMonths(nil) = %v, want empty", got)
	}
}

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"2024-05", "2024 年 05 月"},
		{"2023-12", "2023 年 12 月"},
		{"all", "all"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := MonthLabel(tt.key); got != tt.want {
			t.Errorf("MonthLabel(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
