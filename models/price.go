package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount as US dollars, e.g. 1234.5 -> "$1,234.50".
func FormatPrice(amount float64) string {
	return FormatAmount(decimal.NewFromFloat(amount))
}

// FormatAmount is FormatPrice for decimal amounts.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	whole := rounded.IntPart()
	cents := rounded.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, pricePrinter.Sprintf("%d", whole), cents)
}
