package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/osse101/RoleplayBot_Go/internal/bio"
	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/concurrency"
	"github.com/osse101/RoleplayBot_Go/internal/config"
	"github.com/osse101/RoleplayBot_Go/internal/discord"
	"github.com/osse101/RoleplayBot_Go/internal/economy"
	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/printer"
	"github.com/osse101/RoleplayBot_Go/internal/roles"
	"github.com/osse101/RoleplayBot_Go/internal/shop"
	"github.com/osse101/RoleplayBot_Go/internal/validation"
)

// InitializeServices wires the plugin services over the stores. Side
// effects on the chat platform go through platform.
func InitializeServices(cfg *config.Config, stores *Stores, platform *discord.Platform, bus event.Bus) (*discord.Services, error) {
	validator, err := validation.NewSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSchemas, err)
	}
	locks := concurrency.NewLockManager()

	settings := guildcfg.NewService(stores.Settings, locks)
	items := catalog.NewService(stores.Items, locks, validator)
	roleSvc := roles.NewService(settings, platform)
	bios := bio.NewService(stores.Bios, settings, roleSvc, platform, platform, locks, validator)
	chars := character.NewService(stores.Characters, items, bios, locks, validator)
	fetcher := printer.NewHTTPFetcher(&http.Client{Timeout: FetchTimeout}, cfg.PrintMaxFileSize)

	shops, err := shop.NewRegistry(platform, cfg.ShopIdleDelay, cfg.ShopMaxSessions, shop.WithBus(bus))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateShops, err)
	}

	return &discord.Services{
		Catalog:     items,
		Characters:  chars,
		Economy:     economy.NewService(chars, items, bus),
		Shops:       shops,
		Bios:        bios,
		Roles:       roleSvc,
		Printer:     printer.NewService(settings, platform, fetcher, bus, validator),
		Settings:    settings,
		Fetcher:     fetcher,
		Maintainers: cfg.Maintainers,
	}, nil
}
