package breeds

import "context"

// Store es el key-value plano y persistente detrás del cache
// (memory, sqlite o postgres). Sin TTL ni eviction.
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	// Get devuelve ErrCacheMiss si la key no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	Clear(ctx context.Context) error
}
