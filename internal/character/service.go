package character

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/concurrency"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/store"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
	"github.com/osse101/RoleplayBot_Go/internal/validation"
)

// Roster is one guild's character document: character id to record.
type Roster map[string]domain.Character

// Clone copies the map. Records are replaced, never mutated in place.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r)+1)
	for id, c := range r {
		out[id] = c
	}
	return out
}

// BioLink is what a new character borrows from a bio of the same id.
type BioLink struct {
	Name   string
	Image  string
	Author domain.Snowflake
}

// BioSource finds bios that may seed characters.
type BioSource interface {
	LinkedBio(guild, id string) (BioLink, bool)
}

// Entry pairs a character id with its record.
type Entry struct {
	ID        string
	Character domain.Character
}

// Service defines the character record operations
type Service interface {
	GetOrCreate(ctx context.Context, guild, name string) (string, domain.Character, error)
	Update(ctx context.Context, guild string, fn func(b *Batch) error) error
	Render(guild string, c domain.Character) domain.Embed
	Upload(ctx context.Context, guild, name string, data []byte) (domain.Character, bool, error)
	Delete(ctx context.Context, guild, name string) (domain.Character, error)
	List(guild string) []Entry
	Dump(ctx context.Context, guild, name string) (string, []byte, error)
	Dirty() bool
	Flush(ctx context.Context) error
	Reload(ctx context.Context) error
}

type service struct {
	chars     store.Store[Roster]
	items     catalog.Service
	bios      BioSource
	locks     *concurrency.LockManager
	validator validation.SchemaValidator
	dirty     atomic.Bool
}

// NewService creates the character service. bios may be nil when the
// roleplay plugin is not loaded.
func NewService(chars store.Store[Roster], items catalog.Service, bios BioSource, locks *concurrency.LockManager, validator validation.SchemaValidator) Service {
	return &service{chars: chars, items: items, bios: bios, locks: locks, validator: validator}
}

// view returns the guild roster for reading, falling back to the "default"
// guild and then to a roster holding only the base template.
func (s *service) view(guild string) Roster {
	if r, ok := s.chars.Get(guild); ok {
		return r
	}
	if r, ok := s.chars.Get(domain.DefaultGuild); ok {
		return r
	}
	return Roster{domain.DefaultCharacterID: domain.BaseCharacter()}
}

func templateOf(r Roster) domain.Character {
	if c, ok := r[domain.DefaultCharacterID]; ok {
		return c.Clone()
	}
	return domain.BaseCharacter()
}

// GetOrCreate returns the stored record, else one seeded from a linked
// bio. Seeding stores the new record.
func (s *service) GetOrCreate(ctx context.Context, guild, name string) (string, domain.Character, error) {
	id := utils.FoldID(name)
	if c, ok := s.view(guild)[id]; ok {
		c = c.Clone()
		c.Normalize()
		return id, c, nil
	}

	var out domain.Character
	err := s.Update(ctx, guild, func(b *Batch) error {
		var c *domain.Character
		var err error
		id, c, err = b.Character(name)
		if err != nil {
			return err
		}
		out = c.Clone()
		return nil
	})
	if err != nil {
		return "", domain.Character{}, err
	}
	return id, out, nil
}

// Update runs fn against a working copy of the guild's characters under
// the guild lock. Records fn touched are stored only when it succeeds.
func (s *service) Update(ctx context.Context, guild string, fn func(b *Batch) error) error {
	unlock := s.locks.Lock(concurrency.GuildKey(PluginName, guild))
	defer unlock()

	b := &Batch{
		guild:   guild,
		roster:  s.view(guild),
		items:   s.items.Snapshot(guild),
		bios:    s.bios,
		working: map[string]*domain.Character{},
	}
	if err := fn(b); err != nil {
		return err
	}
	if len(b.working) == 0 {
		return nil
	}

	roster := b.roster.Clone()
	for id, c := range b.working {
		roster[id] = *c
	}
	s.chars.Set(guild, roster)
	s.dirty.Store(true)

	log := logger.FromContext(ctx)
	for _, id := range b.created {
		log.Info(LogMsgCharacterCreatedFromBio, "guild_id", guild, "character_id", id)
	}
	return nil
}

func (s *service) Render(guild string, c domain.Character) domain.Embed {
	return Render(c, s.items.Snapshot(guild))
}

// Upload validates a whole record and stores it under the folded name.
// Members absent from the upload come from the guild template.
func (s *service) Upload(ctx context.Context, guild, name string, data []byte) (domain.Character, bool, error) {
	id := utils.FoldID(name)
	if id == "" {
		return domain.Character{}, false, domain.SyntaxError(ErrMsgEmptyName)
	}
	if err := s.validator.ValidateBytes(data, validation.SchemaCharacter); err != nil {
		return domain.Character{}, false, domain.SyntaxError(ErrMsgBadUploadJSON, err)
	}
	raw, err := catalog.DecodeLoose(data)
	if err != nil {
		return domain.Character{}, false, domain.SyntaxError(ErrMsgNotValidJSON, err)
	}

	unlock := s.locks.Lock(concurrency.GuildKey(PluginName, guild))
	defer unlock()

	roster := s.view(guild)
	c, err := ValidateCharacter(raw, templateOf(roster))
	if err != nil {
		return domain.Character{}, false, err
	}
	_, exists := roster[id]

	roster = roster.Clone()
	roster[id] = c
	s.chars.Set(guild, roster)
	s.dirty.Store(true)

	logger.FromContext(ctx).Info(LogMsgCharacterUploaded, "guild_id", guild, "character_id", id, "created", !exists)
	return c.Clone(), !exists, nil
}

// Delete removes a record. A miss reports ids resembling the query.
func (s *service) Delete(ctx context.Context, guild, name string) (domain.Character, error) {
	id := utils.FoldID(name)

	unlock := s.locks.Lock(concurrency.GuildKey(PluginName, guild))
	defer unlock()

	roster := s.view(guild)
	c, ok := roster[id]
	if !ok {
		suggestions := lo.Filter(sortedIDs(roster), func(candidate string, _ int) bool {
			return utils.Ratio(candidate, id) > utils.MatchSuggestRatio
		})
		return domain.Character{}, domain.NewNotFoundError(domain.ErrCharacterNotFound, name, suggestions)
	}

	roster = roster.Clone()
	delete(roster, id)
	s.chars.Set(guild, roster)
	s.dirty.Store(true)

	logger.FromContext(ctx).Info(LogMsgCharacterDeleted, "guild_id", guild, "character_id", id)
	return c, nil
}

func (s *service) List(guild string) []Entry {
	roster := s.view(guild)
	return lo.Map(sortedIDs(roster), func(id string, _ int) Entry {
		return Entry{ID: id, Character: roster[id]}
	})
}

// Dump returns the record as indented JSON along with its id.
func (s *service) Dump(ctx context.Context, guild, name string) (string, []byte, error) {
	id, c, err := s.GetOrCreate(ctx, guild, name)
	if err != nil {
		return "", nil, err
	}
	data, err := utils.MarshalIndent(c)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode character %s: %w", id, err)
	}
	return id, data, nil
}

func (s *service) Dirty() bool {
	return s.dirty.Load()
}

// Flush saves the character store when a mutation happened since the last
// flush. A failed save leaves the store dirty for the next tick.
func (s *service) Flush(ctx context.Context) error {
	if !s.dirty.Swap(false) {
		return nil
	}
	if err := s.chars.Save(ctx); err != nil {
		s.dirty.Store(true)
		return fmt.Errorf("failed to save characters: %w", err)
	}
	logger.FromContext(ctx).Debug(LogMsgCharactersFlushed)
	return nil
}

// Reload drops unsaved changes and rereads the store.
func (s *service) Reload(ctx context.Context) error {
	if err := s.chars.Reload(ctx); err != nil {
		return err
	}
	s.dirty.Store(false)
	return nil
}

func sortedIDs(r Roster) []string {
	ids := lo.Keys(r)
	sort.Strings(ids)
	return ids
}
