package economy

import (
	"context"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/event"
)

// Result describes a completed transfer for the reply.
type Result struct {
	Character string // display name of the acting or target character
	Recipient string // display name of the receiving character, if any
	ItemName  string // effective item name, if an item moved
	Amount    int
	Money     int // currency moved
}

// SellResult is a Result plus the no-buyer outcome, which is not an error.
type SellResult struct {
	Result
	NoBuyer bool
}

// Service defines the interface for economy transfers. Character names are
// resolved through the character service, so bio-linked characters are
// created on first use.
type Service interface {
	GiveItem(ctx context.Context, guild, from, to, query string, amount int, key bool) (Result, error)
	SellItem(ctx context.Context, guild, name, query string, amount int, key bool) (SellResult, error)
	BuyItem(ctx context.Context, guild, name, query string, amount int) (Result, error)
	Pay(ctx context.Context, guild, from, to string, amount int) (Result, error)
	AdminGive(ctx context.Context, guild, name, query string, amount int, key bool) (Result, error)
	AdminTake(ctx context.Context, guild, name, query string, amount int, key bool) (Result, error)
	GiveCustom(ctx context.Context, guild, name string, data []byte, key bool) (Result, error)
}

type service struct {
	chars character.Service
	items catalog.Service
	bus   event.Bus
}

// NewService creates a new economy service. bus may be nil.
func NewService(chars character.Service, items catalog.Service, bus event.Bus) Service {
	return &service{chars: chars, items: items, bus: bus}
}

func (s *service) emit(ctx context.Context, guild string, payload event.TransferPayloadV1) {
	event.Emit(ctx, s.bus, event.NewTransferEvent(guild, payload))
}
