package analytics

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var dollarAmount = regexp.MustCompile(`\$\d+(?:\.\d{2})?`)

// FormatDollarAmountsInText rewrites every "$123" or "$123.45" in a
// narrative sentence with thousands separators and two decimals.
func FormatDollarAmountsInText(text string) string {
	p := message.NewPrinter(language.English)
	return dollarAmount.ReplaceAllStringFunc(text, func(match string) string {
		v, err := strconv.ParseFloat(match[1:], 64)
		if err != nil {
			return match
		}
		return p.Sprintf("$%.2f", v)
	})
}

// FormatDollars renders an amount as "$1,234.50".
func FormatDollars(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	f, _ := d.Abs().Round(2).Float64()
	if d.IsNegative() {
		return p.Sprintf("-$%.2f", f)
	}
	return p.Sprintf("$%.2f", f)
}

// FormatTrendAmount labels a decrease for the trend card: a drop in
// spending shows as "-$30.00", an increase as "+$12.50".
func FormatTrendAmount(decrease decimal.Decimal) string {
	switch {
	case decrease.IsZero():
		return FormatDollars(decrease)
	case decrease.IsNegative():
		return "+" + FormatDollars(decrease.Neg())
	default:
		return "-" + FormatDollars(decrease)
	}
}
