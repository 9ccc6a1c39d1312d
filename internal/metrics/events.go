package metrics

import (
	"context"

	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.Types {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.TransferCompleted:
		var p event.TransferPayloadV1
		if p, err = event.DecodePayload[event.TransferPayloadV1](evt.Payload); err == nil {
			recordTransfer(p)
		}

	case event.ShopOpened:
		ShopsOpened.Inc()
		ShopsOpen.Inc()

	case event.ShopClosed:
		var p event.ShopClosedPayloadV1
		if p, err = event.DecodePayload[event.ShopClosedPayloadV1](evt.Payload); err == nil {
			ShopsClosed.WithLabelValues(p.Reason).Inc()
			ShopsOpen.Dec()
			ShopLifetime.Observe(p.Lifetime)
		}

	case event.PrintCompleted:
		var p event.PrintPayloadV1
		if p, err = event.DecodePayload[event.PrintPayloadV1](evt.Payload); err == nil {
			DocumentsPrinted.Inc()
			PostsPrinted.Add(float64(p.Posts))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
	}
	return nil
}

func recordTransfer(p event.TransferPayloadV1) {
	Transfers.WithLabelValues(p.Kind).Inc()
	if p.Amount > 0 {
		ItemsMoved.WithLabelValues(p.Kind).Add(float64(p.Amount))
	}
	switch {
	case p.Money > 0:
		MoneyEarned.Add(float64(p.Money))
	case p.Money < 0:
		MoneySpent.Add(float64(-p.Money))
	}
}
