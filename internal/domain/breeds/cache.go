package breeds

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"

	"cat-breed-catalog/internal/platform/logger"
)

// CacheKeyBreeds es la única key que usa el catálogo.
const CacheKeyBreeds = "breeds"

// Cache serializa a JSON sobre un Store. Ningún fallo es fatal: se registra
// como *CacheError y el estado previo queda intacto.
type Cache struct {
	store Store
	log   logger.Logger
}

func NewCache(store Store, log logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}
	return &Cache{store: store, log: log.With(map[string]any{"component": "cache"})}
}

// Set escribe value bajo key. Si falla el encode no se toca el store.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.store == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.report(&CacheError{Op: "encode", Key: key, Err: err})
		return
	}
	if err := c.store.Set(ctx, key, raw); err != nil {
		c.report(&CacheError{Op: "set", Key: key, Err: err})
		return
	}
	c.log.Info("cache write", map[string]any{"key": key, "bytes": len(raw)})
}

// Get decodifica key en out. false si no existe o si no se pudo leer/parsear.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.store == nil {
		return false
	}
	raw, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		c.log.Debug("cache miss", map[string]any{"key": key})
		return false
	}
	if err != nil {
		c.report(&CacheError{Op: "get", Key: key, Err: err})
		return false
	}
	if err := decodeInto(raw, out); err != nil {
		c.report(&CacheError{Op: "decode", Key: key, Err: err})
		return false
	}
	c.log.Debug("cache hit", map[string]any{"key": key})
	return true
}

// decodeInto decodifica en un valor nuevo y solo lo copia a out si no hubo
// error: un JSON a medio parsear no deja out modificado.
func decodeInto(raw []byte, out any) error {
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Pointer || dst.IsNil() {
		return json.Unmarshal(raw, out) // InvalidUnmarshalError
	}
	fresh := reflect.New(dst.Elem().Type())
	if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
		return err
	}
	dst.Elem().Set(fresh.Elem())
	return nil
}

// Clear borra todas las entradas.
func (c *Cache) Clear(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	if err := c.store.Clear(ctx); err != nil {
		c.report(&CacheError{Op: "clear", Err: err})
		return
	}
	c.log.Info("cache cleared", nil)
}

func (c *Cache) report(err *CacheError) {
	c.log.Warn("cache error (ignored)", map[string]any{"op": err.Op, "key": err.Key, "err": err})
}

// GetAs es la variante tipada de Get. Devuelve el zero value si no hay dato.
func GetAs[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var out T
	if !c.Get(ctx, key, &out) {
		var zero T
		return zero, false
	}
	return out, true
}
