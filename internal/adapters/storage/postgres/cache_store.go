package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cat-breed-catalog/internal/domain/breeds"
)

// CacheStore guarda las entradas como JSONB; el valor ya viene serializado por breeds.Cache.
type CacheStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewCacheStore(db *sql.DB) *CacheStore {
	return &CacheStore{db: db, now: time.Now}
}

var _ breeds.Store = (*CacheStore)(nil)

func (s *CacheStore) Set(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("cache key required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, updated_at)
		VALUES ($1, $2::jsonb, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, key, string(value), s.now().UTC())
	return err
}

func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value::text
		FROM cache_entries
		WHERE key = $1
	`, strings.TrimSpace(key)).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, breeds.ErrCacheMiss
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *CacheStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries`)
	return err
}
