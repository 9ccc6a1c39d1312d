package shop

import "time"

// Navigation emoji, in the order they are added to a shop message
const (
	EmojiPrev  = "◀"
	EmojiClose = "🇽"
	EmojiNext  = "▶"
)

// Emojis lists the reactions a shop message is seeded with.
var Emojis = []string{EmojiPrev, EmojiClose, EmojiNext}

// Layout
const (
	RowsPerPage   = 10
	ItemsPerRow   = 2
	ItemsPerPage  = RowsPerPage * ItemsPerRow
	ColumnWidth   = 24
	TextWidth     = ColumnWidth * ItemsPerRow
	Title         = ".🙡Item Shop🙣."
	PageFooterFmt = "[Page %d of %d]"
	PriceCellFmt  = "[Buy: %5d Sell: %5d]"
)

// Registry defaults
const (
	DefaultIdleDelay   = 120 * time.Second
	DefaultMaxSessions = 256
)

// Log Messages
const (
	LogMsgSessionOpened  = "Shop session opened"
	LogMsgSessionClosed  = "Shop session closed"
	LogMsgSessionsSwept  = "Idle shop sessions swept"
	LogMsgSessionEvicted = "Shop session evicted"
	LogMsgEditFailed     = "Failed to edit shop message"
	LogMsgDeleteFailed   = "Failed to delete shop message"
)
