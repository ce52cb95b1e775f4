package normalize

import "strings"

const pngDataURLPrefix = "data:image/png;base64,"

// EnsureDataURL normalizes an image reference to an embedded data URL.
//
// Existing data URLs are returned unchanged. http(s) and file URLs are rejected
// because documents never fetch external resources. Anything else is treated as
// raw base64 content and wrapped as PNG. An empty result means "no image".
func EnsureDataURL(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	low := strings.ToLower(s)
	if strings.HasPrefix(low, "data:") {
		return s
	}
	if strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://") || strings.HasPrefix(low, "file://") {
		return ""
	}
	cleaned := strings.Join(strings.Fields(s), "")
	if cleaned == "" {
		return ""
	}
	return pngDataURLPrefix + cleaned
}
