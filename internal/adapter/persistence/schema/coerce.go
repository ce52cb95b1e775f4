package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NormalizeKeys trims and lower-cases every column name.
func NormalizeKeys(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// String renders a cell as text. Missing cells and NaN-like blanks become "".
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	case float64:
		// Spreadsheets hand back whole numbers as floats; phone numbers must
		// not gain a ".0" suffix.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case decimal.Decimal:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// Decimal coerces a cell to a number. The second value is false when the cell
// is empty or cannot be parsed.
func Decimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return t, true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case float32:
		return Decimal(float64(t))
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(t), true
	case bool:
		return decimal.Zero, false
	}
	s := strings.ReplaceAll(String(v), ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// DecimalOrZero is Decimal with failures mapped to zero.
func DecimalOrZero(v any) decimal.Decimal {
	d, _ := Decimal(v)
	return d
}

// Int coerces a cell to an integer, truncating fractions. Failures give 0.
func Int(v any) int {
	d, ok := Decimal(v)
	if !ok {
		return 0
	}
	return int(d.IntPart())
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// Date parses a cell as a calendar date. Unparseable values give the zero
// time, which callers treat as "no date".
func Date(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case nil:
		return time.Time{}
	}
	s := String(v)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// firstPresent returns the value of the first key holding a non-blank value.
func firstPresent(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}
