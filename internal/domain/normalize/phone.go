package normalize

import (
	"fmt"
	"strings"
)

const phoneMaskSuffix = "xxxxxxxxxx"

// Digits strips every non-digit character.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone canonicalizes a phone number into the local 10-digit form (05XXXXXXXX)
// used for customer matching and list labels.
//
// Rules, in order:
//   - 971 country code with a mobile prefix: "0" + digits[3:12]
//   - 9 digits starting with 5: "0" + digits
//   - 10 digits starting with 05: unchanged
//   - anything else: the last 10 digits (best effort)
//
// Empty or digit-less input returns "".
func Phone(raw string) string {
	digits := Digits(raw)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "971") && len(digits) >= 12 && digits[3] == '5' {
		return "0" + digits[3:12]
	}
	if len(digits) == 9 && digits[0] == '5' {
		return "0" + digits
	}
	if len(digits) == 10 && strings.HasPrefix(digits, "05") {
		return digits
	}
	if len(digits) > 10 {
		return digits[len(digits)-10:]
	}
	return digits
}

// PhoneLabelMask renders the list label used when picking a quotation.
// The trailing mask is a fixed label, not derived from the input.
func PhoneLabelMask(raw string) string {
	flat := Phone(raw)
	if flat == "" {
		return phoneMaskSuffix
	}
	return flat + " " + phoneMaskSuffix
}

// InternationalMobile formats a UAE mobile number as "+971 XX XXX XXXX".
// The second return value is false when the input is not a valid mobile number.
func InternationalMobile(raw string) (string, bool) {
	digits := Digits(raw)
	digits = strings.TrimPrefix(digits, "0")
	if len(digits) != 9 || digits[0] != '5' {
		return "", false
	}
	return fmt.Sprintf("+971 %s %s %s", digits[:2], digits[2:5], digits[5:]), true
}
