package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Guild   string      `json:"guild_id"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	TransferCompleted Type = "economy.transfer.completed"
	ShopOpened        Type = "shop.opened"
	ShopClosed        Type = "shop.closed"
	PrintCompleted    Type = "printer.completed"
)

// Types lists every event type the plugins publish.
var Types = []Type{TransferCompleted, ShopOpened, ShopClosed, PrintCompleted}

// TransferPayloadV1 describes a completed economy transfer. Money is the
// balance change of Character; Amount counts items.
type TransferPayloadV1 struct {
	Kind      string `json:"kind"`
	Character string `json:"character"`
	Recipient string `json:"recipient,omitempty"`
	ItemID    string `json:"item_id,omitempty"`
	Amount    int    `json:"amount"`
	Money     int    `json:"money"`
	Timestamp int64  `json:"timestamp"`
}

// ShopClosedPayloadV1 describes why a shop session ended.
type ShopClosedPayloadV1 struct {
	MessageID string  `json:"message_id"`
	Reason    string  `json:"reason"`
	Lifetime  float64 `json:"lifetime_seconds"`
}

// PrintPayloadV1 describes a printed wall document.
type PrintPayloadV1 struct {
	Document string `json:"document"`
	Posts    int    `json:"posts"`
	Files    int    `json:"files"`
}

// NewTransferEvent creates a transfer event with a type-safe payload
func NewTransferEvent(guild string, payload TransferPayloadV1) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{Version: EventSchemaVersion, Type: TransferCompleted, Guild: guild, Payload: payload}
}

// NewShopOpenedEvent creates a shop opened event
func NewShopOpenedEvent(guild, messageID string) Event {
	return Event{Version: EventSchemaVersion, Type: ShopOpened, Guild: guild, Payload: messageID}
}

// NewShopClosedEvent creates a shop closed event
func NewShopClosedEvent(guild, messageID, reason string, lifetime time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShopClosed,
		Guild:   guild,
		Payload: ShopClosedPayloadV1{MessageID: messageID, Reason: reason, Lifetime: lifetime.Seconds()},
	}
}

// NewPrintEvent creates a print completed event
func NewPrintEvent(guild string, payload PrintPayloadV1) Event {
	return Event{Version: EventSchemaVersion, Type: PrintCompleted, Guild: guild, Payload: payload}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit publishes on bus when one is configured. Handler failures are
// logged and never reach the caller: the state change already happened.
func Emit(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
