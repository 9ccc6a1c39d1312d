// Package printer stores wall documents and prints them into channels.
package printer

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
	"github.com/osse101/RoleplayBot_Go/internal/validation"
)

// Sender posts printed messages.
type Sender interface {
	SendPost(ctx context.Context, channelID, content string, embed *domain.Embed, file *File) error
}

// Service defines the wall document operations
type Service interface {
	Print(ctx context.Context, guild, channel, name string) (int, error)
	Upload(ctx context.Context, guild, name string, data []byte) (int, error)
	Dump(guild, name string) ([]byte, error)
	Delete(ctx context.Context, guild, name string) error
	List(guild string) []string
	Reload(ctx context.Context) error
}

type service struct {
	settings  guildcfg.Service
	sender    Sender
	fetcher   Fetcher
	bus       event.Bus
	validator validation.SchemaValidator
}

// NewService creates the printer service. bus may be nil.
func NewService(settings guildcfg.Service, sender Sender, fetcher Fetcher, bus event.Bus, validator validation.SchemaValidator) Service {
	return &service{settings: settings, sender: sender, fetcher: fetcher, bus: bus, validator: validator}
}

func (s *service) document(guild, name string) ([]json.RawMessage, error) {
	if name == "" {
		return nil, domain.SyntaxError(ErrMsgDocumentNameEmpty)
	}
	doc, ok := s.settings.Get(guild).Walls[name]
	if !ok {
		return nil, domain.NewNotFoundError(domain.ErrDocumentNotFound, name, nil)
	}
	return doc, nil
}

// Print verifies the whole document before posting anything, then sends
// the posts in order. Attachments that cannot be fetched are dropped.
func (s *service) Print(ctx context.Context, guild, channel, name string) (int, error) {
	log := logger.FromContext(ctx)

	doc, err := s.document(guild, name)
	if err != nil {
		return 0, err
	}
	posts, err := VerifyDocument(doc)
	if err != nil {
		return 0, err
	}

	sent, files := 0, 0
	for _, p := range posts {
		var file *File
		if p.File != "" {
			if file, err = s.fetcher.Fetch(ctx, p.File); err != nil {
				log.Info(LogMsgAttachmentFailed, "guild_id", guild, "document", name, "url", p.File, "error", err)
				file = nil
			}
		}
		if file == nil && p.Empty() {
			continue
		}
		if err := s.sender.SendPost(ctx, channel, p.Content, p.Embed, file); err != nil {
			return sent, fmt.Errorf("failed to send post %d: %w", sent+1, err)
		}
		sent++
		if file != nil {
			files++
		}
	}

	log.Info(LogMsgDocumentPrinted, "guild_id", guild, "document", name, "posts", sent, "files", files)
	event.Emit(ctx, s.bus, event.NewPrintEvent(guild, event.PrintPayloadV1{Document: name, Posts: sent, Files: files}))
	return sent, nil
}

// Upload stores a document after verifying it. It returns the post count.
func (s *service) Upload(ctx context.Context, guild, name string, data []byte) (int, error) {
	if name == "" {
		return 0, domain.SyntaxError(ErrMsgDocumentNameEmpty)
	}
	if err := s.validator.ValidateBytes(data, validation.SchemaWall); err != nil {
		return 0, domain.SyntaxError(ErrMsgNotValidDocFmt, err)
	}
	var doc []json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, domain.SyntaxError(ErrMsgNotValidDocFmt, err)
	}
	if _, err := VerifyDocument(doc); err != nil {
		return 0, err
	}

	_, err := s.settings.Update(ctx, guild, func(cfg *guildcfg.Settings) error {
		cfg.Walls[name] = doc
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info(LogMsgDocumentSaved, "guild_id", guild, "document", name, "posts", len(doc))
	return len(doc), nil
}

func (s *service) Dump(guild, name string) ([]byte, error) {
	doc, err := s.document(guild, name)
	if err != nil {
		return nil, err
	}
	return utils.MarshalIndent(doc)
}

func (s *service) Delete(ctx context.Context, guild, name string) error {
	_, err := s.settings.Update(ctx, guild, func(cfg *guildcfg.Settings) error {
		if _, ok := cfg.Walls[name]; !ok {
			return domain.NewNotFoundError(domain.ErrDocumentNotFound, name, nil)
		}
		delete(cfg.Walls, name)
		return nil
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgDocumentDeleted, "guild_id", guild, "document", name)
	return nil
}

// List returns document names in sorted order.
func (s *service) List(guild string) []string {
	names := lo.Keys(s.settings.Get(guild).Walls)
	sort.Strings(names)
	return names
}

func (s *service) Reload(ctx context.Context) error {
	return s.settings.Reload(ctx)
}
