package bio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/concurrency"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/roles"
	"github.com/osse101/RoleplayBot_Go/internal/store"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
	"github.com/osse101/RoleplayBot_Go/internal/validation"
)

// Book is one guild's bio document: bio id to bio.
type Book map[string]Bio

// Clone copies the map.
func (b Book) Clone() Book {
	out := make(Book, len(b)+1)
	for id, v := range b {
		out[id] = v
	}
	return out
}

// Entry pairs a bio id with its bio.
type Entry struct {
	ID  string
	Bio Bio
}

// Actor is the member invoking a command. Moderators may edit bios they
// do not own.
type Actor struct {
	ID        domain.Snowflake
	Moderator bool
}

func (a Actor) owns(b Bio) bool {
	return a.Moderator || a.ID == b.Author
}

// Publisher posts and maintains pinned bio messages.
type Publisher interface {
	SendEmbed(ctx context.Context, channelID string, e domain.Embed) (string, error)
	EditEmbed(ctx context.Context, channelID, messageID string, e domain.Embed) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// Service defines the bio and race role operations
type Service interface {
	Get(guild, name string) (string, Bio, error)
	Show(ctx context.Context, guild, name string) (domain.Embed, error)
	Create(ctx context.Context, guild string, actor Actor, name string) (string, Bio, error)
	Set(ctx context.Context, guild string, actor Actor, name, field, value string) (Bio, error)
	Rename(ctx context.Context, guild string, actor Actor, name, newName string) (string, error)
	Delete(ctx context.Context, guild string, actor Actor, name string) (string, error)
	Dump(guild, name string) (string, []byte, error)
	Upload(ctx context.Context, guild string, actor Actor, data []byte) (Bio, bool, error)
	List(guild string, owner domain.Snowflake) []Entry
	Reload(ctx context.Context) error

	Pin(ctx context.Context, guild, channel, name string) error
	Unpin(ctx context.Context, guild, messageID string) (string, bool)

	SetRaceRequesting(ctx context.Context, guild string, allow bool) error
	ManageRaceRoles(ctx context.Context, guild string, add, remove []string) (roles.Edit, error)
	ListRaceRoles(ctx context.Context, guild string) ([]string, error)
	GetRaceRole(ctx context.Context, guild, user, query string) (domain.Role, bool, error)

	LinkedBio(guild, id string) (character.BioLink, bool)
}

type service struct {
	bios      store.Store[Book]
	settings  guildcfg.Service
	roles     roles.Service
	platform  roles.Platform
	publisher Publisher
	locks     *concurrency.LockManager
	validator validation.SchemaValidator
}

// NewService creates the bio service.
func NewService(bios store.Store[Book], settings guildcfg.Service, roleSvc roles.Service, platform roles.Platform,
	publisher Publisher, locks *concurrency.LockManager, validator validation.SchemaValidator) Service {
	return &service{
		bios:      bios,
		settings:  settings,
		roles:     roleSvc,
		platform:  platform,
		publisher: publisher,
		locks:     locks,
		validator: validator,
	}
}

func (s *service) view(guild string) Book {
	if b, ok := s.bios.Get(guild); ok {
		return b
	}
	return Book{}
}

// mutate runs fn on a copy of the guild's bios and saves it when fn
// succeeds.
func (s *service) mutate(ctx context.Context, guild string, fn func(book Book) error) error {
	unlock := s.locks.Lock(concurrency.GuildKey(PluginName, guild))
	defer unlock()

	book := s.view(guild).Clone()
	if err := fn(book); err != nil {
		return err
	}
	if err := s.bios.Put(ctx, guild, book); err != nil {
		return fmt.Errorf("failed to save bios: %w", err)
	}
	return nil
}

func notFound(book Book, id, name string) error {
	var suggestions []string
	for _, candidate := range sortedIDs(book) {
		if utils.Ratio(candidate, id) > utils.MatchSuggestRatio {
			suggestions = append(suggestions, candidate)
		}
	}
	return domain.NewNotFoundError(domain.ErrBioNotFound, name, suggestions)
}

func (s *service) Get(guild, name string) (string, Bio, error) {
	id, err := ID(name)
	if err != nil {
		return "", Bio{}, err
	}
	book := s.view(guild)
	b, ok := book[id]
	if !ok {
		return "", Bio{}, notFound(book, id, name)
	}
	return id, b, nil
}

func (s *service) Show(ctx context.Context, guild, name string) (domain.Embed, error) {
	_, b, err := s.Get(guild, name)
	if err != nil {
		return domain.Embed{}, err
	}
	return s.embed(ctx, guild, b), nil
}

// embed resolves the owner and the race role color. Lookup failures only
// drop those parts of the embed.
func (s *service) embed(ctx context.Context, guild string, b Bio) domain.Embed {
	var owner *domain.Member
	if !b.Author.IsZero() {
		if m, err := s.platform.Member(ctx, guild, b.Author.String()); err == nil {
			owner = &m
		} else {
			logger.FromContext(ctx).Debug(LogMsgOwnerLookup, "guild_id", guild, "user_id", b.Author, "error", err)
		}
	}

	color := 0
	if all, err := s.platform.GuildRoles(ctx, guild); err == nil {
		if role, ok := roles.Find(all, b.Race); ok && lo.Contains(s.settings.Get(guild).Roleplay.RaceRoles, role.ID) {
			color = role.Color
		}
	}
	return Render(b, owner, color)
}

func (s *service) Create(ctx context.Context, guild string, actor Actor, name string) (string, Bio, error) {
	id, err := ID(name)
	if err != nil {
		return "", Bio{}, err
	}
	b, err := New(actor.ID, name)
	if err != nil {
		return "", Bio{}, err
	}

	err = s.mutate(ctx, guild, func(book Book) error {
		if _, ok := book[id]; ok {
			return domain.SyntaxError(ErrMsgAlreadyExistsFmt, b.Name)
		}
		book[id] = b
		return nil
	})
	if err != nil {
		return "", Bio{}, err
	}
	logger.FromContext(ctx).Info(LogMsgBioCreated, "guild_id", guild, "bio_id", id, "author", actor.ID)
	return id, b, nil
}

func (s *service) Set(ctx context.Context, guild string, actor Actor, name, field, value string) (Bio, error) {
	id, err := ID(name)
	if err != nil {
		return Bio{}, err
	}

	var out Bio
	err = s.mutate(ctx, guild, func(book Book) error {
		b, ok := book[id]
		if !ok {
			return notFound(book, id, name)
		}
		if !actor.owns(b) {
			return domain.PermissionError(ErrMsgNotOwner)
		}
		if err := b.Set(field, value); err != nil {
			return err
		}
		book[id] = b
		out = b
		return nil
	})
	if err != nil {
		return Bio{}, err
	}

	logger.FromContext(ctx).Info(LogMsgBioUpdated, "guild_id", guild, "bio_id", id, "field", field)
	s.refreshPin(ctx, guild, id, out)
	return out, nil
}

func (s *service) Rename(ctx context.Context, guild string, actor Actor, name, newName string) (string, error) {
	id, err := ID(name)
	if err != nil {
		return "", err
	}
	newID, err := ID(newName)
	if err != nil {
		return "", err
	}

	err = s.mutate(ctx, guild, func(book Book) error {
		b, ok := book[id]
		if !ok {
			return notFound(book, id, name)
		}
		if !actor.owns(b) {
			return domain.PermissionError(ErrMsgNotOwner)
		}
		if _, taken := book[newID]; taken {
			return domain.PermissionError(ErrMsgAlreadyExistsFmt, newID)
		}
		book[newID] = b
		delete(book, id)
		return nil
	})
	if err != nil {
		return "", err
	}

	if _, pinned := s.settings.Get(guild).Roleplay.PinnedBios[id]; pinned {
		_, err = s.settings.Update(ctx, guild, func(cfg *guildcfg.Settings) error {
			if msg, ok := cfg.Roleplay.PinnedBios[id]; ok {
				cfg.Roleplay.PinnedBios[newID] = msg
				delete(cfg.Roleplay.PinnedBios, id)
			}
			return nil
		})
		if err != nil {
			return "", err
		}
	}

	logger.FromContext(ctx).Info(LogMsgBioRenamed, "guild_id", guild, "bio_id", id, "new_id", newID)
	return newID, nil
}

func (s *service) Delete(ctx context.Context, guild string, actor Actor, name string) (string, error) {
	id, err := ID(name)
	if err != nil {
		return "", err
	}

	err = s.mutate(ctx, guild, func(book Book) error {
		b, ok := book[id]
		if !ok {
			return notFound(book, id, name)
		}
		if !actor.owns(b) {
			return domain.PermissionError(ErrMsgNotOwner)
		}
		delete(book, id)
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info(LogMsgBioDeleted, "guild_id", guild, "bio_id", id)

	cfg := s.settings.Get(guild).Roleplay
	if msg, pinned := cfg.PinnedBios[id]; pinned {
		if err := s.publisher.DeleteMessage(ctx, cfg.PinnedBiosChannel, msg); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPinDeleteFailed, "guild_id", guild, "bio_id", id, "error", err)
		}
		s.Unpin(ctx, guild, msg)
	}
	return id, nil
}

// Dump returns the download file name and document of a bio.
func (s *service) Dump(guild, name string) (string, []byte, error) {
	id, b, err := s.Get(guild, name)
	if err != nil {
		return "", nil, err
	}
	data, err := utils.MarshalIndent(b.dump(id))
	if err != nil {
		return "", nil, err
	}
	return id + DumpExtension, data, nil
}

// Upload replaces or creates a bio from a dumped document. The display
// name comes from fullname when present, else from name.
func (s *service) Upload(ctx context.Context, guild string, actor Actor, data []byte) (Bio, bool, error) {
	if err := s.validator.ValidateBytes(data, validation.SchemaBio); err != nil {
		return Bio{}, false, domain.SyntaxError(ErrMsgNotValidJSONFmt, err)
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return Bio{}, false, domain.SyntaxError(ErrMsgNotValidJSONFmt, err)
	}

	rawName, ok := doc["name"]
	if !ok {
		return Bio{}, false, domain.SyntaxError(ErrMsgNoName)
	}
	id, err := ID(rawName)
	if err != nil {
		return Bio{}, false, err
	}
	display := rawName
	if full := doc["fullname"]; full != "" {
		display = full
	}

	var out Bio
	var created bool
	err = s.mutate(ctx, guild, func(book Book) error {
		author := actor.ID
		if old, exists := book[id]; exists {
			if !actor.owns(old) {
				return domain.PermissionError(ErrMsgNotOwner)
			}
			author = old.Author
		} else {
			created = true
		}

		b, err := New(author, display)
		if err != nil {
			return err
		}
		for _, f := range Fields {
			if f == "name" {
				continue
			}
			if v, ok := doc[f]; ok {
				if err := b.Set(f, v); err != nil {
					return err
				}
			}
		}
		book[id] = b
		out = b
		return nil
	})
	if err != nil {
		return Bio{}, false, err
	}

	logger.FromContext(ctx).Info(LogMsgBioUploaded, "guild_id", guild, "bio_id", id, "created", created)
	s.refreshPin(ctx, guild, id, out)
	return out, created, nil
}

// decodeDocument reads a flat JSON object as strings. null reads as empty.
func decodeDocument(data []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out, nil
}

// List returns bios in id order, limited to one author unless owner is zero.
func (s *service) List(guild string, owner domain.Snowflake) []Entry {
	book := s.view(guild)
	var out []Entry
	for _, id := range sortedIDs(book) {
		if owner.IsZero() || book[id].Author == owner {
			out = append(out, Entry{ID: id, Bio: book[id]})
		}
	}
	return out
}

func (s *service) Reload(ctx context.Context) error {
	return s.bios.Reload(ctx)
}

func (s *service) LinkedBio(guild, id string) (character.BioLink, bool) {
	b, ok := s.view(guild)[id]
	if !ok {
		return character.BioLink{}, false
	}
	return character.BioLink{Name: b.Name, Image: b.Image, Author: b.Author}, true
}

func sortedIDs(book Book) []string {
	ids := lo.Keys(book)
	sort.Strings(ids)
	return ids
}
