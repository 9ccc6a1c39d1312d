package utils

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Fuzzy match thresholds on the Ratio scale.
const (
	MatchAcceptRatio  = 0.9
	MatchSuggestRatio = 0.5
)

// Ratio returns the similarity of a and b in [0, 1] computed as
// 2*M/T over the rune sequences, where M is the number of matched runes
// and T the total length of both inputs.
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	m := difflib.NewMatcherWithJunk(splitRunes(a), splitRunes(b), false, nil)
	return m.Ratio()
}

// FoldRatio is Ratio over lower-cased inputs.
func FoldRatio(a, b string) float64 {
	return Ratio(strings.ToLower(a), strings.ToLower(b))
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
