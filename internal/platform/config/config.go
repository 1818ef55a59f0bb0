package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type CacheBackend string

const (
	CacheMemory   CacheBackend = "memory"
	CacheSQLite   CacheBackend = "sqlite"
	CachePostgres CacheBackend = "postgres"
)

// Config agrupa todo lo que cmd/api y cmd/catctl leen del entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	CatAPIBaseURL string        `env:"CAT_API_BASE_URL" envDefault:"https://api.thecatapi.com/v1"`
	CatAPIKey     string        `env:"CAT_API_KEY"`
	CatAPITimeout time.Duration `env:"CAT_API_TIMEOUT" envDefault:"10s"`

	CacheBackend CacheBackend `env:"CACHE_BACKEND" envDefault:"sqlite"`
	CachePath    string       `env:"CACHE_PATH"`
	DBDSN        string       `env:"DB_DSN"`

	UserName string        `env:"CATALOG_USER_NAME"`
	Debounce time.Duration `env:"CATALOG_DEBOUNCE" envDefault:"300ms"`
	Throttle time.Duration `env:"CATALOG_THROTTLE" envDefault:"1s"`
}

// ParseEnv carga variables de entorno sobre target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parsea el entorno y valida el backend de cache.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize aplica defaults derivados. Lo usa también catctl después de aplicar flags.
func (c *Config) Normalize() error {
	c.CacheBackend = CacheBackend(strings.ToLower(strings.TrimSpace(string(c.CacheBackend))))
	switch c.CacheBackend {
	case "":
		c.CacheBackend = CacheSQLite
	case CacheMemory, CacheSQLite, CachePostgres:
	default:
		return fmt.Errorf("config: unknown cache backend %q", c.CacheBackend)
	}

	if c.CacheBackend == CachePostgres && strings.TrimSpace(c.DBDSN) == "" {
		return fmt.Errorf("config: cache backend postgres requires DB_DSN")
	}
	if c.CacheBackend == CacheSQLite && strings.TrimSpace(c.CachePath) == "" {
		c.CachePath = DefaultCachePath()
	}
	return nil
}

// DefaultCachePath: ~/.cat-breed-catalog/cache.db (o ./ si no hay home).
func DefaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".cat-breed-catalog", "cache.db")
}

// Addr devuelve ":PORT".
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
