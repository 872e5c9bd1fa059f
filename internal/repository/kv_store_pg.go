package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgExecer cubre lo que el store necesita de *pgxpool.Pool.
type pgExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgKVStore struct {
	pool pgExecer
}

func NewPgKVStore(pool pgExecer) *PgKVStore {
	return &PgKVStore{pool: pool}
}

func (s *PgKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `
		SELECT value
		FROM kv_entries
		WHERE key = $1
	`
	var value string
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *PgKVStore) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := s.pool.Exec(ctx, query, key, value)
	return err
}

func (s *PgKVStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE key = $1`
	_, err := s.pool.Exec(ctx, query, key)
	return err
}
