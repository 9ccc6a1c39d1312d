package eventlog

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one recorded domain event
type Entry struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Guild     string          `json:"guild_id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Filter narrows a query. Empty fields match everything.
type Filter struct {
	Guild string
	Type  string
	Since time.Time
	Limit int
}

func (f Filter) limit() int {
	switch {
	case f.Limit <= 0:
		return DefaultLimit
	case f.Limit > MaxLimit:
		return MaxLimit
	default:
		return f.Limit
	}
}

func (f Filter) matches(e Entry) bool {
	return (f.Guild == "" || e.Guild == f.Guild) &&
		(f.Type == "" || e.Type == f.Type) &&
		!e.CreatedAt.Before(f.Since)
}

// Repository defines the interface for event log storage
type Repository interface {
	// LogEvent stores an entry. The repository assigns its ID.
	LogEvent(ctx context.Context, entry Entry) error

	// GetEvents returns matching entries, newest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes entries created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
