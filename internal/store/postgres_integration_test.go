package store

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

func TestPostgres_Integration(t *testing.T) {
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
	require.NoError(t, database.Migrate(ctx, pool), "migrations must be idempotent")

	backend := NewPostgres(pool)

	c, err := Open[doc](ctx, backend, NamespaceCharacters)
	require.NoError(t, err)
	c.Set("1", doc{Names: []string{"Aria"}})
	c.Set("2", doc{Names: []string{"Bren"}})
	require.NoError(t, c.Save(ctx))

	c.Delete("2")
	c.Set("1", doc{Names: []string{"Aria", "<Cael>"}})
	require.NoError(t, c.Save(ctx))

	again, err := Open[doc](ctx, backend, NamespaceCharacters)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, again.Guilds())
	got, _ := again.Get("1")
	assert.Equal(t, []string{"Aria", "<Cael>"}, got.Names)

	other, err := Open[doc](ctx, backend, NamespaceBios)
	require.NoError(t, err)
	assert.Empty(t, other.Guilds())
}
