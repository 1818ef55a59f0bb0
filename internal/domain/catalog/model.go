package catalog

import "cat-breed-catalog/internal/domain/breeds"

const (
	PlaceholderNoImage   = "https://via.placeholder.com/400x300?text=No+cat+photo"
	PlaceholderLoadError = "https://via.placeholder.com/400x300?text=Load+error"

	unknown = "Unknown"
)

// Filters es la tupla de filtros activos. Vacío = sin restricción.
type Filters struct {
	Breed  string `json:"breed"`
	Origin string `json:"origin"`
	Weight string `json:"weight"` // peso mínimo tal como lo tipeó el usuario
}

// FilterField identifica el campo en POST /filters/{field}.
type FilterField string

const (
	FieldBreed  FilterField = "breed"
	FieldOrigin FilterField = "origin"
	FieldWeight FilterField = "weight"
)

// Insights son los accesores derivados de la lista completa.
type Insights struct {
	BreedCount            int      `json:"breed_count"`
	FilteredCount         int      `json:"filtered_count"`
	Origins               []string `json:"origins"`
	MostCommonTemperament string   `json:"most_common_temperament"`
	MostCommonCoat        string   `json:"most_common_coat"`
}

// State es una copia del estado del controller (para logs y tests).
type State struct {
	UserName      string  `json:"user_name"`
	BreedsCount   int     `json:"breeds_count"`
	FilteredCount int     `json:"filtered_count"`
	Filters       Filters `json:"filters"`
}

// View es la capa de presentación. El controller le empuja resultados; nunca
// le llega un error como falla, solo como señal ShowError.
type View interface {
	RenderBreeds(list []breeds.Breed)
	RenderStats(stats breeds.Stats)
	RenderGreeting(greeting string)
	ShowModal(breed breeds.Breed, imageURL string)
	ShowError(err error)
}

type nopView struct{}

func (nopView) RenderBreeds([]breeds.Breed)    {}
func (nopView) RenderStats(breeds.Stats)       {}
func (nopView) RenderGreeting(string)          {}
func (nopView) ShowModal(breeds.Breed, string) {}
func (nopView) ShowError(error)                {}
