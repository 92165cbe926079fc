package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"0", "USD", "$0.00"},
		{"2.25", "USD", "$2.25"},
		{"1234.5", "USD", "$1,234.50"},
		{"9000", "USD", "$9,000.00"},
		{"12.999", "USD", "$13.00"},
		{"1500", "JPY", "¥1,500"},
		{"3.5", "NOPE", "$3.50"},
	}
	for _, tt := range tests {
		got := FormatAmount(decimal.RequireFromString(tt.amount), tt.currency)
		if got != tt.want {
			t.Errorf("FormatAmount(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range tests {
		if got := FormatNumber(n); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestGoalProgress(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		savings, goal string
		want          float64
	}{
		{"1500", "6000", 0.25},
		{"7000", "6000", 1},
		{"0", "6000", 0},
		{"10", "0", 1},
	}
	for _, tt := range tests {
		if got := GoalProgress(d(tt.savings), d(tt.goal)); got != tt.want {
			t.Errorf("GoalProgress(%s, %s) = %v, want %v", tt.savings, tt.goal, got, tt.want)
		}
	}
}
