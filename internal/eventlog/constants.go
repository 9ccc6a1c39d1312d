package eventlog

import "time"

// Query limits
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// MemoryCapacity bounds the in-process log; the oldest entries are evicted first.
const MemoryCapacity = 10000

// Log messages - service events
const (
	LogMsgFailedToEncodePayload = "Failed to encode event payload"
	LogMsgFailedToLogEvent      = "Failed to record event"
	LogMsgEventLogged           = "Event recorded"
	LogMsgSubscribed            = "Event log subscribed"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType         = "type"
	LogFieldGuild        = "guild_id"
	LogFieldError        = "error"
	LogFieldRetention    = "retention"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deleted_count"
)

// Postgres queries
const (
	queryInsertEvent  = `INSERT INTO event_log (event_type, guild_id, payload, created_at) VALUES ($1, $2, $3, $4)`
	querySelectEvents = `SELECT id, event_type, guild_id, payload, created_at FROM event_log
WHERE ($1 = '' OR guild_id = $1) AND ($2 = '' OR event_type = $2) AND created_at >= $3
ORDER BY id DESC LIMIT $4`
	queryDeleteEvents = `DELETE FROM event_log WHERE created_at < $1`
)

// zeroTime is the lower bound used when a filter has no Since.
var zeroTime = time.Unix(0, 0).UTC()
