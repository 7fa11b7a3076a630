package core

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"1500", 1500},
		{"200.50", 200.5},
		{" 2.50 ", 2.5},
		{"1,25", 1.25},
		{"0.01", 0.01},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"1.2.3", 0},
		{"12abc", 0},
		{"1e400", 0},
		{"-1e400", 0},
		{"1e3", 1000},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.out {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.out)
		}
	}
}

func TestMoneyNonFinite(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := Money(f); !got.IsZero() {
			t.Fatalf("Money(%v) = %v, want 0", f, got)
		}
	}
}

func TestFormatDollars(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.Zero, "$0.00"},
		{decimal.RequireFromString("1299.5"), "$1299.50"},
		{decimal.RequireFromString("0.005"), "$0.01"},
		{decimal.RequireFromString("-12"), "-$12.00"},
	}
	for _, tc := range cases {
		if got := FormatDollars(tc.in); got != tc.want {
			t.Fatalf("FormatDollars(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
