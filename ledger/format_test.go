package ledger

import "testing"

func TestFormatNTD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "NT$ 0"},
		{80, "NT$ 80"},
		{1234, "NT$ 1,234"},
		{1234567, "NT$ 1,234,567"},
		{1234.5, "NT$ 1,234.50"},
		{0.25, "NT$ 0.25"},
		{-500, "-NT$ 500"},
	}

	for _, tt := range tests {
		if got := FormatNTD(tt.amount); got != tt.want {
			t.Errorf("FormatNTD(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
