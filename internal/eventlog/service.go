package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus)

	// Recent returns logged events matching filter, newest first
	Recent(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes events older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range event.Types {
		bus.Subscribe(eventType, s.handleEvent)
	}
	logger.FromContext(context.Background()).Info(LogMsgSubscribed, "types", event.Types)
}

// handleEvent stores the event with its payload encoded as JSON
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Error(LogMsgFailedToEncodePayload, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	entry := Entry{
		Type:      string(evt.Type),
		Guild:     evt.Guild,
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldGuild, evt.Guild)
	return nil
}

func (s *service) Recent(ctx context.Context, filter Filter) ([]Entry, error) {
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, s.now().UTC().Add(-retention))
}
