package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/RoleplayBot_Go/migrations"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a new PostgreSQL connection pool
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns <= 0 {
		maxConns = DefaultMaxConnections
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = DefaultMinConnections
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase)
	return pool, nil
}

// Migrate applies the embedded goose migrations through the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
