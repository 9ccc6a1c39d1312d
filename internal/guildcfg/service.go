package guildcfg

import (
	"context"
	"fmt"

	"github.com/osse101/RoleplayBot_Go/internal/concurrency"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/store"
)

// PluginName is used for lock keys.
const PluginName = "settings"

// LogMsgSettingsUpdated is logged after every saved change.
const LogMsgSettingsUpdated = "Guild settings updated"

// Service reads and edits guild settings. Every edit is saved before
// Update returns.
type Service interface {
	Get(guild string) Settings
	Update(ctx context.Context, guild string, fn func(s *Settings) error) (Settings, error)
	Reload(ctx context.Context) error
}

type service struct {
	docs  store.Store[Settings]
	locks *concurrency.LockManager
}

// NewService creates the settings service.
func NewService(docs store.Store[Settings], locks *concurrency.LockManager) Service {
	return &service{docs: docs, locks: locks}
}

// Get returns a copy of the guild settings, falling back to the "default"
// guild and then to empty settings.
func (s *service) Get(guild string) Settings {
	if doc, ok := s.docs.Get(guild); ok {
		return doc.Clone()
	}
	if doc, ok := s.docs.Get(domain.DefaultGuild); ok {
		return doc.Clone()
	}
	return Default()
}

func (s *service) Update(ctx context.Context, guild string, fn func(s *Settings) error) (Settings, error) {
	unlock := s.locks.Lock(concurrency.GuildKey(PluginName, guild))
	defer unlock()

	doc := s.Get(guild)
	if err := fn(&doc); err != nil {
		return Settings{}, err
	}
	if err := s.docs.Put(ctx, guild, doc); err != nil {
		return Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	logger.FromContext(ctx).Debug(LogMsgSettingsUpdated, "guild_id", guild)
	return doc.Clone(), nil
}

func (s *service) Reload(ctx context.Context) error {
	return s.docs.Reload(ctx)
}
