package shop

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

func shopEntries(n int) []catalog.Entry {
	out := make([]catalog.Entry, n)
	for i := range out {
		out[i] = catalog.Entry{
			ID:   fmt.Sprintf("item_%02d", i),
			Item: domain.Item{Name: fmt.Sprintf("Item %02d", i), InShop: true, BuyPrice: i, SellPrice: i / 2},
		}
	}
	return out
}

func TestMaxPage(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{20, 0},
		{21, 1},
		{25, 1},
		{40, 1},
		{41, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxPage(tt.n), "n=%d", tt.n)
	}
}

func TestSession_Turn(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession("owner", "g1", "", shopEntries(25), start)
	require.Equal(t, 1, s.MaxPage)

	later := start.Add(time.Minute)
	assert.False(t, s.Turn(-1, later), "page -1 is out of range")
	assert.Equal(t, 0, s.Page)
	assert.Equal(t, start, s.LastInteraction)

	assert.True(t, s.Turn(1, later))
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, later, s.LastInteraction)

	assert.False(t, s.Turn(1, later.Add(time.Minute)), "page 2 is out of range")
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, later, s.LastInteraction)
}

func TestSession_Idle(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession("owner", "g1", "", nil, start)

	assert.False(t, s.Idle(start.Add(119*time.Second), 120*time.Second))
	assert.False(t, s.Idle(start.Add(120*time.Second), 120*time.Second))
	assert.True(t, s.Idle(start.Add(121*time.Second), 120*time.Second))
}

func TestSession_Text(t *testing.T) {
	s := NewSession("owner", "g1", "potions", shopEntries(25), time.Now())

	first := s.Text()
	assert.True(t, strings.HasPrefix(first, "```asciidoc\n"))
	assert.True(t, strings.HasSuffix(first, "```"))
	assert.Contains(t, first, Title)
	assert.Contains(t, first, "// potions\n")
	assert.Contains(t, first, "[Page 1 of 2]")
	assert.Contains(t, first, "Item 00")
	assert.Contains(t, first, "Item 19")
	assert.NotContains(t, first, "Item 20")
	assert.Contains(t, first, "[Buy:     1 Sell:     0]")

	s.Turn(1, time.Now())
	second := s.Text()
	assert.Contains(t, second, "[Page 2 of 2]")
	assert.Contains(t, second, "Item 24")
	assert.NotContains(t, second, "Item 19")
}

func TestSession_Text_NoCategory(t *testing.T) {
	s := NewSession("owner", "g1", "", shopEntries(1), time.Now())

	text := s.Text()
	assert.NotContains(t, text, "// ")
	assert.Contains(t, text, "[Page 1 of 1]")
}

func TestRenderRows_PadsOddCount(t *testing.T) {
	rows := renderRows(shopEntries(3))
	require.Len(t, rows, 2)

	lines := strings.Split(rows[1], "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TextWidth, len([]rune(lines[0])))
	assert.Equal(t, "[Buy:     2 Sell:     1][Buy:     0 Sell:     0]", lines[1])
}
