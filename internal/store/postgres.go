package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryLoadDocuments  = `SELECT guild_id, body FROM documents WHERE namespace = $1`
	queryUpsertDocument = `INSERT INTO documents (namespace, guild_id, body, updated_at) VALUES ($1, $2, $3, NOW()) ON CONFLICT (namespace, guild_id) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`
	queryPruneDocuments = `DELETE FROM documents WHERE namespace = $1 AND NOT (guild_id = ANY($2))`
)

// Postgres stores one JSONB row per (namespace, guild). The table is created
// by the goose migrations in the migrations package.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps a connected pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Load reads every guild row of the namespace.
func (p *Postgres) Load(ctx context.Context, namespace string) (map[string]json.RawMessage, error) {
	rows, err := p.pool.Query(ctx, queryLoadDocuments, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := map[string]json.RawMessage{}
	for rows.Next() {
		var guild string
		var body []byte
		if err := rows.Scan(&guild, &body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs[guild] = body
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}
	return docs, nil
}

// Save upserts every guild row and prunes guilds no longer present, in a
// single transaction.
func (p *Postgres) Save(ctx context.Context, namespace string, docs map[string]json.RawMessage) error {
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		guilds := make([]string, 0, len(docs))
		batch := &pgx.Batch{}
		for guild, body := range docs {
			guilds = append(guilds, guild)
			batch.Queue(queryUpsertDocument, namespace, guild, []byte(body))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to upsert documents: %w", err)
		}
		if _, err := tx.Exec(ctx, queryPruneDocuments, namespace, guilds); err != nil {
			return fmt.Errorf("failed to prune documents: %w", err)
		}
		return nil
	})
}
