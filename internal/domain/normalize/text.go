package normalize

import (
	"strings"
	"unicode"
)

// ProperCase upper-cases the first letter of every word and lower-cases the rest.
// A word starts after any non-letter, so "o'neil-smith" becomes "O'Neil-Smith".
func ProperCase(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	prevLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		prevLetter = false
		b.WriteRune(r)
	}
	return b.String()
}

// NameKey is the case and whitespace insensitive key used to match client names.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
