package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

const (
	pgGet    = `SELECT value FROM kv_store WHERE key = $1`
	pgUpsert = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	pgDelete = `DELETE FROM kv_store WHERE key = ANY($1)`
)

// PostgresStore persists blobs in a PostgreSQL table.
// The schema must be migrated before use, see database.MigratePool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an open pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.pool.QueryRow(ctx, pgGet, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetKeyFmt, key, err)
	}
	return []byte(value), nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.pool.Exec(ctx, pgUpsert, key, string(value)); err != nil {
		return fmt.Errorf(ErrMsgPutKeyFmt, key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, keys ...string) error {
	if _, err := s.pool.Exec(ctx, pgDelete, keys); err != nil {
		return fmt.Errorf(ErrMsgDeleteKeysFmt, keys, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
