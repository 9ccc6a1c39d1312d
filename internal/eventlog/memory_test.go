package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logAt(t *testing.T, repo Repository, typ, guild string, at time.Time) {
	t.Helper()
	require.NoError(t, repo.LogEvent(context.Background(), Entry{
		Type:      typ,
		Guild:     guild,
		Payload:   []byte(`{}`),
		CreatedAt: at,
	}))
}

func TestMemoryRepository_NewestFirstAndFilters(t *testing.T) {
	repo, err := NewMemoryRepository(10)
	require.NoError(t, err)
	ctx := context.Background()

	logAt(t, repo, "a", "g1", fixedNow.Add(-3*time.Hour))
	logAt(t, repo, "b", "g1", fixedNow.Add(-2*time.Hour))
	logAt(t, repo, "a", "g2", fixedNow.Add(-time.Hour))
	logAt(t, repo, "a", "g1", fixedNow)

	all, err := repo.GetEvents(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []int64{4, 3, 2, 1}, []int64{all[0].ID, all[1].ID, all[2].ID, all[3].ID})

	g1a, err := repo.GetEvents(ctx, Filter{Guild: "g1", Type: "a"})
	require.NoError(t, err)
	require.Len(t, g1a, 2)
	assert.Equal(t, int64(4), g1a[0].ID)

	recent, err := repo.GetEvents(ctx, Filter{Since: fixedNow.Add(-90 * time.Minute)})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	limited, err := repo.GetEvents(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, int64(4), limited[0].ID)
}

func TestMemoryRepository_EvictsOldest(t *testing.T) {
	repo, err := NewMemoryRepository(2)
	require.NoError(t, err)

	logAt(t, repo, "a", "g1", fixedNow)
	logAt(t, repo, "b", "g1", fixedNow)
	logAt(t, repo, "c", "g1", fixedNow)

	entries, err := repo.GetEvents(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Type)
	assert.Equal(t, "b", entries[1].Type)
}

func TestMemoryRepository_Cleanup(t *testing.T) {
	repo, err := NewMemoryRepository(10)
	require.NoError(t, err)
	ctx := context.Background()

	logAt(t, repo, "old", "g1", fixedNow.Add(-48*time.Hour))
	logAt(t, repo, "new", "g1", fixedNow)

	deleted, err := repo.CleanupOldEvents(ctx, fixedNow.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	entries, err := repo.GetEvents(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].Type)
}

func TestFilter_Limit(t *testing.T) {
	assert.Equal(t, DefaultLimit, Filter{}.limit())
	assert.Equal(t, MaxLimit, Filter{Limit: MaxLimit + 1}.limit())
	assert.Equal(t, 3, Filter{Limit: 3}.limit())
}
