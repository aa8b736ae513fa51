// Package core provides the noumi record model.
//
// This file contains the decimal helpers shared by every derived value:
// parsing amounts from loosely formatted strings and rounding for display.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to two decimal places, matching how
// amounts and percentages are shown on every card.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns part/whole*100 rounded to two places. A zero whole yields
// zero rather than an undefined ratio.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return Round2(part.Mul(hundred).Div(whole))
}

// ParseAmount converts a user or spreadsheet supplied amount to a decimal.
//
// It accepts an optional leading "$", thousands separators ("1,234.50") and
// surrounding whitespace. Negative values are rejected: spending amounts
// are magnitudes.
//
// Examples:
//
//	ParseAmount("12.34")     -> 12.34, nil
//	ParseAmount("$1,200")    -> 1200, nil
//	ParseAmount("-1")        -> error
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
