package strutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsBlank reports whether s is empty or consists entirely of Unicode
// whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Coalesce returns the first non-blank value, or "" when every value is
// blank.
func Coalesce(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// DefaultIfBlank returns s, or def when s is blank.
func DefaultIfBlank(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}

// Truncate cuts s to at most max runes. A non-positive max yields "".
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Title converts s to title case using Unicode casing rules.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
