// Package store keeps per-guild JSON documents in memory and persists them
// through a pluggable backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// Store is the document contract every plugin works against. Set mutations
// are visible immediately but only durable after Save. Put persists first
// and only then makes the document visible. Reload discards unsaved
// mutations.
type Store[T any] interface {
	Get(guild string) (T, bool)
	Set(guild string, doc T)
	Put(ctx context.Context, guild string, doc T) error
	Delete(guild string)
	Guilds() []string
	Save(ctx context.Context) error
	Reload(ctx context.Context) error
}

// Backend persists raw guild documents of one namespace.
type Backend interface {
	Load(ctx context.Context, namespace string) (map[string]json.RawMessage, error)
	Save(ctx context.Context, namespace string, docs map[string]json.RawMessage) error
}

// Collection is the in-memory Store implementation over a Backend.
type Collection[T any] struct {
	mu        sync.RWMutex
	saveMu    sync.Mutex
	namespace string
	backend   Backend
	docs      map[string]T
}

// Open creates a collection and loads its namespace from the backend.
func Open[T any](ctx context.Context, backend Backend, namespace string) (*Collection[T], error) {
	c := &Collection[T]{namespace: namespace, backend: backend, docs: map[string]T{}}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the guild document. The result may share maps and slices
// with the stored copy: treat it as read-only and Set a modified copy.
func (c *Collection[T]) Get(guild string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[guild]
	return doc, ok
}

// Set replaces the guild document.
func (c *Collection[T]) Set(guild string, doc T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[guild] = doc
}

// Delete drops the guild document.
func (c *Collection[T]) Delete(guild string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, guild)
}

// Guilds lists guild ids in sorted order.
func (c *Collection[T]) Guilds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.docs))
	for g := range c.docs {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Put saves the namespace with guild's document replaced by doc, then
// swaps doc in. A failed save leaves the in-memory document untouched.
func (c *Collection[T]) Put(ctx context.Context, guild string, doc T) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	data, err := utils.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s %s/%s: %w", ErrMsgFailedToEncode, c.namespace, guild, err)
	}
	raw, err := c.encode(guild)
	if err != nil {
		return err
	}
	raw[guild] = data

	if err := c.backend.Save(ctx, c.namespace, raw); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToSave, c.namespace, err)
	}

	c.mu.Lock()
	c.docs[guild] = doc
	c.mu.Unlock()
	slog.Default().Debug(LogMsgDocumentsSaved, "namespace", c.namespace, "guilds", len(raw))
	return nil
}

// Save encodes every document and hands them to the backend.
func (c *Collection[T]) Save(ctx context.Context) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	raw, err := c.encode("")
	if err != nil {
		return err
	}
	if err := c.backend.Save(ctx, c.namespace, raw); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToSave, c.namespace, err)
	}
	slog.Default().Debug(LogMsgDocumentsSaved, "namespace", c.namespace, "guilds", len(raw))
	return nil
}

// encode marshals every document except skip's.
func (c *Collection[T]) encode(skip string) (map[string]json.RawMessage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw := make(map[string]json.RawMessage, len(c.docs)+1)
	for guild, doc := range c.docs {
		if guild == skip {
			continue
		}
		data, err := utils.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%s %s/%s: %w", ErrMsgFailedToEncode, c.namespace, guild, err)
		}
		raw[guild] = data
	}
	return raw, nil
}

// Reload replaces the in-memory documents with the backend's copy.
func (c *Collection[T]) Reload(ctx context.Context) error {
	raw, err := c.backend.Load(ctx, c.namespace)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToLoad, c.namespace, err)
	}

	docs := make(map[string]T, len(raw))
	for guild, data := range raw {
		var doc T
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%s %s/%s: %w", ErrMsgFailedToDecode, c.namespace, guild, err)
		}
		docs[guild] = doc
	}

	c.mu.Lock()
	c.docs = docs
	c.mu.Unlock()
	slog.Default().Info(LogMsgDocumentsLoaded, "namespace", c.namespace, "guilds", len(docs))
	return nil
}
