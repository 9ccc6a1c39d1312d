package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "potion", "potion", 1},
		{"both empty", "", "", 1},
		{"one empty", "potion", "", 0},
		{"typo", "helth potion", "health potion", 24.0 / 25.0},
		{"partial", "potion", "health potion", 12.0 / 19.0},
		{"disjoint", "abc", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatio_CountsRunes(t *testing.T) {
	assert.InDelta(t, 1.0, Ratio("épée", "épée"), 1e-9)
	assert.InDelta(t, 6.0/8.0, Ratio("épée", "épie"), 1e-9)
}

func TestFoldRatio(t *testing.T) {
	assert.InDelta(t, 1.0, FoldRatio("Health Potion", "health potion"), 1e-9)
	assert.Greater(t, FoldRatio("HELTH POTION", "Health Potion"), MatchAcceptRatio)
}
