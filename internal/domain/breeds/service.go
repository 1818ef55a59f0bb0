package breeds

import (
	"context"
	"strings"

	"cat-breed-catalog/internal/platform/logger"
)

// Service es la capa de acceso a datos: catálogo remoto + cache local + stats.
type Service struct {
	source Source
	cache  *Cache
	log    logger.Logger
}

func NewService(source Source, cache *Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		source: source,
		cache:  cache,
		log:    log.With(map[string]any{"component": "breeds"}),
	}
}

// FetchBreeds consulta siempre la API (sin cache).
func (s *Service) FetchBreeds(ctx context.Context) ([]Breed, error) {
	s.log.Info("fetching breeds from api", nil)
	list, err := s.source.FetchBreeds(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Breed{}
	}
	s.log.Info("breeds received", map[string]any{"count": len(list)})
	return list, nil
}

// FetchImageForBreed devuelve la primera imagen o nil si la búsqueda vino vacía.
func (s *Service) FetchImageForBreed(ctx context.Context, breedID string) (*Image, error) {
	breedID = strings.TrimSpace(breedID)
	s.log.Debug("fetching image", map[string]any{"breed_id": breedID})

	img, err := s.source.FetchImage(ctx, breedID)
	if err != nil {
		return nil, err
	}
	if img == nil || strings.TrimSpace(img.URL) == "" {
		s.log.Info("no image for breed", map[string]any{"breed_id": breedID})
		return nil, nil
	}
	s.log.Info("image received", map[string]any{"breed_id": breedID, "url": img.URL})
	return img, nil
}

func (s *Service) ComputeStats(list []Breed) Stats {
	return ComputeStats(list)
}

// CachedBreeds lee la lista cacheada. ok=false en miss o dato corrupto.
func (s *Service) CachedBreeds(ctx context.Context) ([]Breed, bool) {
	return GetAs[[]Breed](ctx, s.cache, CacheKeyBreeds)
}

func (s *Service) CacheBreeds(ctx context.Context, list []Breed) {
	s.cache.Set(ctx, CacheKeyBreeds, list)
}

func (s *Service) CacheSet(ctx context.Context, key string, value any) {
	s.cache.Set(ctx, key, value)
}

func (s *Service) CacheGet(ctx context.Context, key string, out any) bool {
	return s.cache.Get(ctx, key, out)
}

func (s *Service) CacheClear(ctx context.Context) {
	s.cache.Clear(ctx)
}
