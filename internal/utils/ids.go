package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldID turns a display name into a lookup id: whitespace is collapsed
// and the result case-folded so "Éowyn" and "éOWYN" share an id.
func FoldID(name string) string {
	return cases.Fold().String(CollapseWhitespace(name))
}

// HasSpace reports whether s contains any whitespace.
func HasSpace(s string) bool {
	return strings.ContainsAny(s, " \t\r\n")
}
