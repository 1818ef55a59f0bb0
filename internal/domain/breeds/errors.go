package breeds

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey = errors.New("api key not configured")
	ErrEmptyResult   = errors.New("breed list is empty")
	ErrNotFound      = errors.New("breed not found")

	// ErrCacheMiss lo devuelven los Store cuando la key no existe.
	ErrCacheMiss = errors.New("cache miss")
)

// ConfigError: credencial ausente o placeholder. Se detecta antes de tocar la red.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingAPIKey
}

// HTTPError: respuesta no-2xx de la API remota.
type HTTPError struct {
	StatusCode int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.StatusText)
}

// CacheError envuelve fallos de lectura/escritura/parseo del cache.
// Nunca sale del paquete: Cache lo registra y lo descarta.
type CacheError struct {
	Op  string // set | get | decode | encode | clear
	Key string
	Err error
}

func (e *CacheError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }
