package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RoleplayBot_Go/internal/bio"
	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/config"
	"github.com/osse101/RoleplayBot_Go/internal/database"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/store"
)

// Stores holds the document collection of every plugin. This provides a
// centralized location for store initialization and makes dependency
// injection clearer.
type Stores struct {
	Items      *store.Collection[catalog.Catalog]
	Characters *store.Collection[character.Roster]
	Bios       *store.Collection[bio.Book]
	Settings   *store.Collection[guildcfg.Settings]
}

// OpenBackend connects the configured store backend. For postgres the pool
// is migrated before use and returned so the caller can probe and close it;
// it is nil for the other backends.
func OpenBackend(ctx context.Context, cfg *config.Config) (store.Backend, *pgxpool.Pool, error) {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemory(), nil, nil
	case "postgres":
		ctx, cancel := context.WithTimeout(ctx, DBConnectTimeout)
		defer cancel()
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, 0, DBMaxIdleTime, DBMaxLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenBackend, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenBackend, err)
		}
		return store.NewPostgres(pool), pool, nil
	default:
		backend, err := store.NewJSONFile(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenBackend, err)
		}
		return backend, nil, nil
	}
}

// InitializeStores loads every plugin namespace from backend.
func InitializeStores(ctx context.Context, backend store.Backend) (*Stores, error) {
	var s Stores
	var err error
	if s.Items, err = store.Open[catalog.Catalog](ctx, backend, store.NamespaceItems); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedOpenNamespace, store.NamespaceItems, err)
	}
	if s.Characters, err = store.Open[character.Roster](ctx, backend, store.NamespaceCharacters); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedOpenNamespace, store.NamespaceCharacters, err)
	}
	if s.Bios, err = store.Open[bio.Book](ctx, backend, store.NamespaceBios); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedOpenNamespace, store.NamespaceBios, err)
	}
	if s.Settings, err = store.Open[guildcfg.Settings](ctx, backend, store.NamespaceSettings); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedOpenNamespace, store.NamespaceSettings, err)
	}

	slog.Info(LogMsgStoreOpened,
		"items_guilds", len(s.Items.Guilds()),
		"character_guilds", len(s.Characters.Guilds()),
		"bio_guilds", len(s.Bios.Guilds()),
		"settings_guilds", len(s.Settings.Guilds()))
	return &s, nil
}
