package shop

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// Messenger is the part of the chat client a shop needs.
type Messenger interface {
	EditMessage(ctx context.Context, channelID, messageID, content string) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// Registry owns every open shop session. Capacity is bounded; the least
// recently used session is closed when a new one would exceed it.
type Registry struct {
	mu        sync.Mutex
	sessions  *lru.Cache[Key, *Session]
	evicted   []*Session
	messenger Messenger
	bus       event.Bus
	delay     time.Duration
	now       func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithBus publishes session open and close events.
func WithBus(bus event.Bus) Option {
	return func(r *Registry) { r.bus = bus }
}

// NewRegistry creates a registry. A non-positive delay or capacity takes
// the default.
func NewRegistry(messenger Messenger, delay time.Duration, capacity int, opts ...Option) (*Registry, error) {
	if delay <= 0 {
		delay = DefaultIdleDelay
	}
	if capacity <= 0 {
		capacity = DefaultMaxSessions
	}
	r := &Registry{messenger: messenger, delay: delay, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	// The callback runs for removals as well as capacity evictions, always
	// while r.mu is held by the caller.
	sessions, err := lru.NewWithEvict(capacity, func(_ Key, s *Session) {
		if !s.closed {
			s.closed = true
			r.evicted = append(r.evicted, s)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create shop registry: %w", err)
	}
	r.sessions = sessions
	return r, nil
}

// Now returns the registry clock.
func (r *Registry) Now() time.Time { return r.now() }

// Open registers a session whose message has been posted.
func (r *Registry) Open(ctx context.Context, s *Session) {
	r.mu.Lock()
	r.sessions.Add(s.Key(), s)
	evicted := r.drain()
	r.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgSessionOpened, "guild_id", s.Guild, "message_id", s.Message, "owner", s.Owner)
	event.Emit(ctx, r.bus, event.NewShopOpenedEvent(s.Guild, s.Message))
	for _, old := range evicted {
		logger.FromContext(ctx).Info(LogMsgSessionEvicted, "guild_id", old.Guild, "message_id", old.Message)
		r.finish(ctx, old, event.ShopClosedEvicted)
	}
}

// Get returns the session displayed by a message.
func (r *Registry) Get(key Key) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Peek(key)
}

// Len counts open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Len()
}

// React applies a reaction. It reports whether the reaction reached a
// session; reactions from other users or with unknown emoji do not.
func (r *Registry) React(ctx context.Context, key Key, userID, emoji string) bool {
	r.mu.Lock()
	s, ok := r.sessions.Get(key)
	if !ok || s.Owner != userID {
		r.mu.Unlock()
		return false
	}

	switch emoji {
	case EmojiClose:
		r.sessions.Remove(key)
		r.drain()
		r.mu.Unlock()
		r.finish(ctx, s, event.ShopClosedByOwner)
		return true
	case EmojiPrev, EmojiNext:
		delta := 1
		if emoji == EmojiPrev {
			delta = -1
		}
		changed := s.Turn(delta, r.now())
		text, channel := s.Text(), s.Channel
		r.mu.Unlock()
		if changed {
			if err := r.messenger.EditMessage(ctx, channel, key.Message, text); err != nil {
				logger.FromContext(ctx).Warn(LogMsgEditFailed, "guild_id", key.Guild, "message_id", key.Message, "error", err)
			}
		}
		return true
	default:
		r.mu.Unlock()
		return false
	}
}

// Sweep closes every session idle for longer than the delay and returns
// how many it closed.
func (r *Registry) Sweep(ctx context.Context) int {
	now := r.now()

	r.mu.Lock()
	for _, key := range r.sessions.Keys() {
		if s, ok := r.sessions.Peek(key); ok && s.Idle(now, r.delay) {
			r.sessions.Remove(key)
		}
	}
	idle := r.drain()
	r.mu.Unlock()

	for _, s := range idle {
		r.finish(ctx, s, event.ShopClosedIdle)
	}
	if len(idle) > 0 {
		logger.FromContext(ctx).Debug(LogMsgSessionsSwept, "count", len(idle))
	}
	return len(idle)
}

// Shutdown forgets every session without touching their messages.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range r.sessions.Keys() {
		if s, ok := r.sessions.Peek(key); ok {
			s.closed = true
		}
	}
	r.sessions.Purge()
	r.evicted = nil
}

func (r *Registry) drain() []*Session {
	out := r.evicted
	r.evicted = nil
	return out
}

func (r *Registry) finish(ctx context.Context, s *Session, reason string) {
	if err := r.messenger.DeleteMessage(ctx, s.Channel, s.Message); err != nil {
		logger.FromContext(ctx).Warn(LogMsgDeleteFailed, "guild_id", s.Guild, "message_id", s.Message, "error", err)
	}
	logger.FromContext(ctx).Debug(LogMsgSessionClosed, "guild_id", s.Guild, "message_id", s.Message, "reason", reason)
	event.Emit(ctx, r.bus, event.NewShopClosedEvent(s.Guild, s.Message, reason, r.now().Sub(s.Opened)))
}

// SweepJob runs Sweep from the worker pool.
type SweepJob struct {
	Registry *Registry
}

// Process implements worker.Job.
func (j SweepJob) Process(ctx context.Context) error {
	j.Registry.Sweep(ctx)
	return nil
}
