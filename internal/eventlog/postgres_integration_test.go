package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/RoleplayBot_Go/internal/database"
)

func TestPostgresRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil || pgContainer == nil {
		t.Skipf("Skipping integration test: postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, connStr, 4, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, database.Migrate(ctx, pool))

	repo := NewPostgresRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	logAt(t, repo, "economy.transfer.completed", "g1", now.Add(-48*time.Hour))
	logAt(t, repo, "shop.opened", "g1", now)
	logAt(t, repo, "shop.opened", "g2", now)

	t.Run("filters newest first", func(t *testing.T) {
		entries, err := repo.GetEvents(ctx, Filter{Guild: "g1"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "shop.opened", entries[0].Type)
		assert.JSONEq(t, `{}`, string(entries[0].Payload))

		typed, err := repo.GetEvents(ctx, Filter{Type: "shop.opened"})
		require.NoError(t, err)
		assert.Len(t, typed, 2)
	})

	t.Run("cleanup removes old rows", func(t *testing.T) {
		deleted, err := repo.CleanupOldEvents(ctx, now.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		entries, err := repo.GetEvents(ctx, Filter{})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}
