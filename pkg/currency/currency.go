// Package currency formats decimal amounts with ISO 4217 conventions.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Default is used when a code is empty or unknown.
const Default = "USD"

func lookup(code string) *money.Currency {
	if c := money.GetCurrency(code); c != nil {
		return c
	}
	return money.GetCurrency(Default)
}

// Format renders d in code with the currency's minor-unit precision,
// e.g. "$1,234.50" or "-$20.00".
func Format(d decimal.Decimal, code string) string {
	c := lookup(code)
	minor := d.Shift(int32(c.Fraction)).Round(0).IntPart()
	return c.Formatter().Format(minor)
}

// FormatWhole renders v rounded to whole units with a thousands separator,
// e.g. "$1,234" or "-$20".
func FormatWhole(v float64, code string) string {
	c := lookup(code)
	f := money.NewFormatter(0, c.Decimal, c.Thousand, c.Grapheme, c.Template)
	return f.Format(decimal.NewFromFloat(v).Round(0).IntPart())
}

// Symbol returns the currency's grapheme, e.g. "$".
func Symbol(code string) string {
	return lookup(code).Grapheme
}
