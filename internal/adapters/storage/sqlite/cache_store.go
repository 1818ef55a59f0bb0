package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cat-breed-catalog/internal/domain/breeds"
)

type CacheStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewCacheStore(db *sql.DB) *CacheStore {
	return &CacheStore{db: db, now: time.Now}
}

var _ breeds.Store = (*CacheStore)(nil)

func (s *CacheStore) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("cache key required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, s.now().Unix())
	return err
}

func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM cache_entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, breeds.ErrCacheMiss
		}
		return nil, err
	}
	return value, nil
}

func (s *CacheStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries`)
	return err
}
