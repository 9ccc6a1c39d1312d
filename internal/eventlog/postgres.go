package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores entries in the event_log table created by the
// goose migrations.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository wraps a connected pool
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) LogEvent(ctx context.Context, entry Entry) error {
	if _, err := r.pool.Exec(ctx, queryInsertEvent, entry.Type, entry.Guild, []byte(entry.Payload), entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetEvents(ctx context.Context, filter Filter) ([]Entry, error) {
	since := filter.Since
	if since.IsZero() {
		since = zeroTime
	}
	rows, err := r.pool.Query(ctx, querySelectEvents, filter.Guild, filter.Type, since, filter.limit())
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var e Entry
		var payload []byte
		err := row.Scan(&e.ID, &e.Type, &e.Guild, &payload, &e.CreatedAt)
		e.Payload = payload
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return entries, nil
}

func (r *PostgresRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, queryDeleteEvents, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events: %w", err)
	}
	return tag.RowsAffected(), nil
}
