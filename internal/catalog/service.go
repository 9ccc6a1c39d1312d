package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/concurrency"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/store"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
	"github.com/osse101/RoleplayBot_Go/internal/validation"
)

// Catalog is one guild's item document: item id to definition.
type Catalog map[string]domain.Item

// Get returns the definition stored under id.
func (c Catalog) Get(id string) (domain.Item, bool) {
	item, ok := c[id]
	return item, ok
}

// Clone copies the map. Items are values and their field lists are never
// mutated in place, so a shallow copy is enough.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c)+1)
	for id, item := range c {
		out[id] = item
	}
	return out
}

// Entry pairs an item id with its definition.
type Entry struct {
	ID   string
	Item domain.Item
}

// FindResult is the outcome of a lookup: either ID is set, or Suggestions
// may list near-miss display names.
type FindResult struct {
	ID          string
	Suggestions []string
}

// Found reports whether the lookup matched an item.
func (r FindResult) Found() bool { return r.ID != "" }

// Service defines the item catalog operations
type Service interface {
	Upsert(ctx context.Context, guild, id string, patch domain.ItemPatch) (domain.Item, bool, error)
	UpsertJSON(ctx context.Context, guild, id string, data []byte) (domain.Item, bool, error)
	Delete(ctx context.Context, guild, id string) (domain.Item, error)
	Find(guild, query string) FindResult
	Resolve(guild, query string) (string, domain.Item, error)
	Get(guild, id string) (domain.Item, bool)
	Snapshot(guild string) Catalog
	List(guild string) []Entry
	ShopItems(guild, category string) []Entry
	Categories(guild string) []string
	Reload(ctx context.Context) error
}

type service struct {
	items     store.Store[Catalog]
	locks     *concurrency.LockManager
	validator validation.SchemaValidator
}

// NewService creates a catalog over the items document store
func NewService(items store.Store[Catalog], locks *concurrency.LockManager, validator validation.SchemaValidator) Service {
	return &service{items: items, locks: locks, validator: validator}
}

// view returns the guild catalog for reading. A guild without a document
// sees the "default" guild's catalog, else one holding the base template.
func (s *service) view(guild string) Catalog {
	if cat, ok := s.items.Get(guild); ok {
		return cat
	}
	if cat, ok := s.items.Get(domain.DefaultGuild); ok {
		return cat
	}
	return Catalog{domain.DefaultItemID: domain.BaseItem()}
}

func (s *service) Upsert(ctx context.Context, guild, id string, patch domain.ItemPatch) (domain.Item, bool, error) {
	log := logger.FromContext(ctx)

	if id == "" || utils.HasSpace(id) {
		return domain.Item{}, false, domain.SyntaxError(ErrMsgEmptyID)
	}

	unlock := s.locks.Lock(concurrency.GuildKey(PluginName, guild))
	defer unlock()

	cat := s.view(guild).Clone()
	base, exists := cat[id]
	if !exists {
		var ok bool
		if base, ok = cat[domain.DefaultItemID]; !ok {
			base = domain.BaseItem()
		}
	}

	item := patch.ApplyTo(base)
	item.BuyPrice = utils.ClampMin(item.BuyPrice, 0)
	item.SellPrice = utils.ClampMin(item.SellPrice, 0)
	if item.Fields == nil {
		item.Fields = domain.Fields{}
	}
	cat[id] = item

	if err := s.items.Put(ctx, guild, cat); err != nil {
		return domain.Item{}, false, fmt.Errorf("failed to save items: %w", err)
	}

	log.Info(LogMsgItemUpserted, "guild_id", guild, "item_id", id, "created", !exists)
	return item, !exists, nil
}

func (s *service) UpsertJSON(ctx context.Context, guild, id string, data []byte) (domain.Item, bool, error) {
	if err := s.validator.ValidateBytes(data, validation.SchemaItem); err != nil {
		logger.FromContext(ctx).Warn("Rejected item upload", "guild_id", guild, "item_id", id, "error", err)
		return domain.Item{}, false, domain.SyntaxError(ErrMsgNotAnObject)
	}
	patch, err := ParsePatch(data)
	if err != nil {
		return domain.Item{}, false, err
	}
	return s.Upsert(ctx, guild, id, patch)
}

func (s *service) Delete(ctx context.Context, guild, id string) (domain.Item, error) {
	unlock := s.locks.Lock(concurrency.GuildKey(PluginName, guild))
	defer unlock()

	cat := s.view(guild)
	item, ok := cat[id]
	if !ok {
		return domain.Item{}, domain.NewNotFoundError(domain.ErrItemNotFound, id, nil)
	}
	cat = cat.Clone()
	delete(cat, id)

	if err := s.items.Put(ctx, guild, cat); err != nil {
		return domain.Item{}, fmt.Errorf("failed to save items: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgItemDeleted, "guild_id", guild, "item_id", id)
	return item, nil
}

// Find matches the exact id first, then scans display names in id order.
// The first name scoring above MatchAcceptRatio wins; names above
// MatchSuggestRatio are collected as suggestions.
func (s *service) Find(guild, query string) FindResult {
	cat := s.view(guild)
	if _, ok := cat[query]; ok {
		return FindResult{ID: query}
	}
	q := strings.ToLower(query)
	if _, ok := cat[q]; ok {
		return FindResult{ID: q}
	}

	var suggestions []string
	for _, id := range sortedIDs(cat) {
		ratio := utils.FoldRatio(q, cat[id].Name)
		if ratio > utils.MatchAcceptRatio {
			return FindResult{ID: id}
		}
		if ratio > utils.MatchSuggestRatio {
			suggestions = append(suggestions, cat[id].Name)
		}
	}
	return FindResult{Suggestions: suggestions}
}

func (s *service) Resolve(guild, query string) (string, domain.Item, error) {
	res := s.Find(guild, query)
	if !res.Found() {
		return "", domain.Item{}, domain.NewNotFoundError(domain.ErrItemNotFound, query, res.Suggestions)
	}
	item, _ := s.Get(guild, res.ID)
	return res.ID, item, nil
}

func (s *service) Get(guild, id string) (domain.Item, bool) {
	item, ok := s.view(guild)[id]
	return item, ok
}

// Snapshot returns the guild catalog as stored. Callers must not modify it.
func (s *service) Snapshot(guild string) Catalog {
	return s.view(guild)
}

func (s *service) List(guild string) []Entry {
	cat := s.view(guild)
	return lo.Map(sortedIDs(cat), func(id string, _ int) Entry {
		return Entry{ID: id, Item: cat[id]}
	})
}

// ShopItems lists in-shop items, optionally limited to one category.
func (s *service) ShopItems(guild, category string) []Entry {
	return lo.Filter(s.List(guild), func(e Entry, _ int) bool {
		return e.Item.InShop && (category == "" || e.Item.Category == category)
	})
}

// Categories lists the distinct non-empty categories of in-shop items.
func (s *service) Categories(guild string) []string {
	cats := lo.Uniq(lo.FilterMap(s.List(guild), func(e Entry, _ int) (string, bool) {
		return e.Item.Category, e.Item.InShop && e.Item.Category != ""
	}))
	sort.Strings(cats)
	return cats
}

func (s *service) Reload(ctx context.Context) error {
	return s.items.Reload(ctx)
}

func sortedIDs(cat Catalog) []string {
	ids := lo.Keys(cat)
	sort.Strings(ids)
	return ids
}
