package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeInput converts text to Unicode NFC and trims surrounding
// whitespace. Interior whitespace and line breaks are preserved.
func NormalizeInput(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// Snippet collapses whitespace and caps content at limit runes, appending an
// ellipsis when truncated. Empty input yields "<empty>".
func Snippet(content string, limit int) string {
	clean := strings.Join(strings.Fields(content), " ")
	if clean == "" {
		return "<empty>"
	}
	runes := []rune(clean)
	if limit > 0 && len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return clean
}
