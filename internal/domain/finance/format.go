package finance

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatAmount renders d with two decimals and comma thousands separators,
// e.g. 1234567.891 as "1,234,567.89".
func FormatAmount(d decimal.Decimal) string {
	cents := d.Round(2).Abs()
	whole := cents.Truncate(0)
	frac := cents.Sub(whole).Mul(hundred).IntPart()

	out := humanize.BigComma(whole.BigInt()) + "." + twoDigits(frac)
	if d.Round(2).IsNegative() {
		out = "-" + out
	}
	return out
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + humanize.Comma(n)
	}
	return humanize.Comma(n)
}
