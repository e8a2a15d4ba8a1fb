package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label converts a snake_case key such as "error_kind" into "Error Kind".
func Label(key string) string {
	key = strings.TrimSpace(strings.ReplaceAll(key, "_", " "))
	if key == "" {
		return ""
	}
	return cases.Title(language.Und).String(key)
}
