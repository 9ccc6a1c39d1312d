package shop

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// Key identifies a session by the message displaying it.
type Key struct {
	Guild   string
	Message string
}

// Session is one open shop view. Rows are rendered once at creation; only
// the page changes afterwards.
type Session struct {
	Owner           string
	Guild           string
	Channel         string
	Message         string
	Category        string
	Page            int
	MaxPage         int
	Opened          time.Time
	LastInteraction time.Time

	rows   []string
	closed bool
}

// NewSession builds a session over the matching shop items. The caller
// supplies items already filtered to in-shop entries of the category.
func NewSession(owner, guild, category string, items []catalog.Entry, now time.Time) *Session {
	return &Session{
		Owner:           owner,
		Guild:           guild,
		Category:        category,
		MaxPage:         MaxPage(len(items)),
		Opened:          now,
		LastInteraction: now,
		rows:            renderRows(items),
	}
}

// MaxPage is the last valid page index for n matching items.
func MaxPage(n int) int {
	return utils.ClampMin(utils.CeilDiv(n, ItemsPerPage)-1, 0)
}

// Key returns the registry key. It is only meaningful once Message is set.
func (s *Session) Key() Key {
	return Key{Guild: s.Guild, Message: s.Message}
}

// Turn moves delta pages. A target outside [0, MaxPage] leaves the session
// untouched and reports false.
func (s *Session) Turn(delta int, now time.Time) bool {
	target := s.Page + delta
	if target < 0 || target > s.MaxPage {
		return false
	}
	s.Page = target
	s.LastInteraction = now
	return true
}

// Idle reports whether the session went unused for longer than delay.
func (s *Session) Idle(now time.Time, delay time.Duration) bool {
	return now.Sub(s.LastInteraction) > delay
}

// Text renders the current page as an asciidoc code block.
func (s *Session) Text() string {
	var b strings.Builder
	b.WriteString("```asciidoc\n")
	b.WriteString(utils.Center(Title, TextWidth, ' ') + "\n")
	b.WriteString(strings.Repeat("=", TextWidth) + "\n")
	if s.Category != "" {
		b.WriteString("// " + s.Category + "\n\n")
	} else {
		b.WriteString("\n")
	}

	start := utils.ClampMin(s.Page*RowsPerPage, 0)
	end := start + RowsPerPage
	if start > len(s.rows) {
		start = len(s.rows)
	}
	if end > len(s.rows) {
		end = len(s.rows)
	}
	b.WriteString(strings.Join(s.rows[start:end], "\n"))

	footer := fmt.Sprintf(PageFooterFmt, s.Page+1, s.MaxPage+1)
	b.WriteString("\n\n" + utils.Center(footer, TextWidth, ' ') + "```")
	return b.String()
}

// renderRows lays items out two per row. An odd count is padded with a
// blank cell.
func renderRows(entries []catalog.Entry) []string {
	items := lo.Map(entries, func(e catalog.Entry, _ int) domain.Item { return e.Item })
	if len(items)%ItemsPerRow == 1 {
		items = append(items, domain.Item{})
	}

	rows := make([]string, 0, len(items)/ItemsPerRow)
	for _, pair := range lo.Chunk(items, ItemsPerRow) {
		left, right := pair[0], pair[1]
		rows = append(rows,
			utils.Center(left.Name, ColumnWidth, ' ')+utils.Center(right.Name, ColumnWidth, ' ')+"\n"+
				fmt.Sprintf(PriceCellFmt, left.BuyPrice, left.SellPrice)+
				fmt.Sprintf(PriceCellFmt, right.BuyPrice, right.SellPrice)+"\n")
	}
	return rows
}
