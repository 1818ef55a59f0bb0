package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"cat-breed-catalog/internal/domain/breeds"
)

// cacheStore es el key-value en memoria (se pierde al reiniciar).
type cacheStore struct {
	mu   sync.RWMutex
	byID map[string][]byte
}

func NewCacheStore() breeds.Store {
	return &cacheStore{
		byID: make(map[string][]byte),
	}
}

func (s *cacheStore) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("cache key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// copia: el caller puede reutilizar el buffer
	s.byID[key] = append([]byte(nil), value...)
	return nil
}

func (s *cacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[key]
	if !ok {
		return nil, breeds.ErrCacheMiss
	}
	return append([]byte(nil), v...), nil
}

func (s *cacheStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string][]byte)
	return nil
}
