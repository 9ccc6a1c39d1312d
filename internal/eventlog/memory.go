package eventlog

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryRepository keeps the most recent entries in process. It backs the
// file and memory store backends, where no database is available.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	cache  *lru.Cache[int64, Entry]
}

// NewMemoryRepository creates a log holding at most capacity entries
func NewMemoryRepository(capacity int) (*MemoryRepository, error) {
	cache, err := lru.New[int64, Entry](capacity)
	if err != nil {
		return nil, err
	}
	return &MemoryRepository{cache: cache}, nil
}

func (r *MemoryRepository) LogEvent(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	r.cache.Add(entry.ID, entry)
	return nil
}

func (r *MemoryRepository) GetEvents(_ context.Context, filter Filter) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Keys are never read back through Get, so insertion order is recency order.
	values := r.cache.Values()
	limit := filter.limit()
	out := make([]Entry, 0, min(limit, len(values)))
	for i := len(values) - 1; i >= 0 && len(out) < limit; i-- {
		if filter.matches(values[i]) {
			out = append(out, values[i])
		}
	}
	return out, nil
}

func (r *MemoryRepository) CleanupOldEvents(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for _, e := range r.cache.Values() {
		if e.CreatedAt.Before(cutoff) {
			r.cache.Remove(e.ID)
			deleted++
		}
	}
	return deleted, nil
}
