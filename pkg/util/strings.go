package util

import (
	"strings"
	"unicode"
)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// HasWhitespace reports whether s contains any whitespace rune.
func HasWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// QuoteIfSpaced wraps s in double quotes when it contains whitespace, the
// form the FortiOS CLI needs for names in delete statements.
func QuoteIfSpaced(s string) string {
	if HasWhitespace(s) {
		return `"` + s + `"`
	}
	return s
}
