// Package storage elige el Store del cache según la configuración.
package storage

import (
	"fmt"

	"cat-breed-catalog/internal/adapters/storage/memory"
	"cat-breed-catalog/internal/adapters/storage/postgres"
	"cat-breed-catalog/internal/adapters/storage/sqlite"
	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/platform/config"
)

// Open devuelve el Store y su close (no-op en memoria).
func Open(cfg config.Config) (breeds.Store, func() error, error) {
	switch cfg.CacheBackend {
	case config.CacheMemory:
		return memory.NewCacheStore(), func() error { return nil }, nil

	case config.CachePostgres:
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres cache: %w", err)
		}
		return postgres.NewCacheStore(db), db.Close, nil

	case config.CacheSQLite, "":
		path := cfg.CachePath
		if path == "" {
			path = config.DefaultCachePath()
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite cache: %w", err)
		}
		return sqlite.NewCacheStore(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
