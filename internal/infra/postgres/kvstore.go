package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

// KVStore keeps key-value pairs in the kv_store table.
type KVStore struct {
	db DBTX
}

// NewKVStore creates a new KVStore on top of a pool or transaction.
func NewKVStore(db DBTX) *KVStore {
	return &KVStore{db: db}
}

// EnsureSchema creates the kv_store table if it does not exist.
func EnsureSchema(ctx context.Context, tr *Transactor) error {
	return tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			CREATE TABLE IF NOT EXISTS kv_store (
				key        TEXT PRIMARY KEY,
				value      BYTEA NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`
		if _, err := tx.Exec(ctx, query); err != nil {
			return fmt.Errorf("create kv_store: %w", err)
		}
		return nil
	})
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	if err := s.db.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	return value, nil
}

// Set replaces the value stored under key.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}
