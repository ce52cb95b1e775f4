package render

import (
	"strings"

	"quotation_desk/internal/adapter/persistence/schema"
	"quotation_desk/internal/domain/finance"
)

// DefaultCurrency prefixes every formatted amount unless a symbol is given.
const DefaultCurrency = "AED"

// FormatCurrency renders a number or a currency string such as "AED 1,350"
// as "AED 1,350.00". Values that are not numbers render as "".
func FormatCurrency(value any, symbol ...string) string {
	sym := DefaultCurrency
	if len(symbol) > 0 && strings.TrimSpace(symbol[0]) != "" {
		sym = strings.TrimSpace(symbol[0])
	}
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(strings.ReplaceAll(s, sym, ""))
	}
	d, ok := schema.Decimal(value)
	if !ok {
		return ""
	}
	return sym + " " + finance.FormatAmount(d)
}
