// Package core provides the ledger records and the pure operations over them.
//
// This file contains the single permissive coercion used for every amount
// entering the system, whether from a form field or from the stored document.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts user input to an amount, returning 0 when the input
// cannot be parsed.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted.
// Surrounding whitespace is ignored. Nothing is rejected: the form is
// permissive and malformed input simply degrades to zero.
//
// Examples:
//
//	ParseAmount("200.50") -> 200.5
//	ParseAmount("1,5")    -> 1.5
//	ParseAmount("abc")    -> 0
//	ParseAmount("1e400")  -> 0 (out of float64 range)
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// Money wraps a decimal for exact summation of float amounts. Non-finite
// values count as zero.
func Money(f float64) decimal.Decimal {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// FormatDollars renders an amount with exactly two decimals, e.g. "$1299.50"
// or "-$12.00".
func FormatDollars(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
