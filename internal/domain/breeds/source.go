package breeds

import "context"

// Source es el catálogo remoto (TheCatAPI en producción).
type Source interface {
	// FetchBreeds devuelve la lista completa. *ConfigError / *HTTPError según el caso.
	FetchBreeds(ctx context.Context) ([]Breed, error)

	// FetchImage devuelve la primera imagen para breedID, o nil si no hay resultados.
	FetchImage(ctx context.Context, breedID string) (*Image, error)
}
