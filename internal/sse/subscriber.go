package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/RoleplayBot_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every plugin event type to the hub
func (s *Subscriber) Subscribe() {
	for _, t := range event.Types {
		s.bus.Subscribe(t, s.forward)
	}
	slog.Info(LogMsgSubscribed, "types", event.Types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Guild, evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "guild", evt.Guild)
	return nil
}
