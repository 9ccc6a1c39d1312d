package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/eventlog"
	"github.com/osse101/RoleplayBot_Go/internal/metrics"
	"github.com/osse101/RoleplayBot_Go/internal/sse"
)

// EventSinks are the long-lived subscribers the operator API reads from.
type EventSinks struct {
	Log    eventlog.Service
	Stream *sse.Hub
}

// RegisterEventHandlers sets up all event subscribers: the metrics
// collector, the event log and the SSE stream. The log is kept in Postgres
// when db is set and in memory otherwise.
func RegisterEventHandlers(bus event.Bus, db *pgxpool.Pool) (*EventSinks, error) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	var repo eventlog.Repository
	if db != nil {
		repo = eventlog.NewPostgresRepository(db)
	} else {
		mem, err := eventlog.NewMemoryRepository(eventlog.MemoryCapacity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateEventLog, err)
		}
		repo = mem
	}
	log := eventlog.NewService(repo)
	log.Subscribe(bus)
	slog.Info(LogMsgEventLogRegistered, "persistent", db != nil)

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	return &EventSinks{Log: log, Stream: hub}, nil
}
