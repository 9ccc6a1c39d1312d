package utils

import (
	"strings"
	"unicode/utf8"
)

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// RuneLen counts runes, which is how length limits are measured.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Center pads s on both sides with fill to width runes. Odd padding puts
// the extra rune on the right.
func Center(s string, width int, fill rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	total := width - n
	left := total / 2
	f := string(fill)
	return strings.Repeat(f, left) + s + strings.Repeat(f, total-left)
}

// PadRight pads s with spaces to width runes.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// CollapseWhitespace trims s, drops line breaks and squeezes each run of
// whitespace into one space.
func CollapseWhitespace(s string) string {
	s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
