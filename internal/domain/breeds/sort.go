package breeds

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortCriteria string

const (
	SortNameAsc  SortCriteria = "name-asc"
	SortNameDesc SortCriteria = "name-desc"
	SortLifeAsc  SortCriteria = "life-asc"
	SortLifeDesc SortCriteria = "life-desc"
)

// Valid informa si el criterio es uno de los conocidos.
func (c SortCriteria) Valid() bool {
	switch c {
	case SortNameAsc, SortNameDesc, SortLifeAsc, SortLifeDesc:
		return true
	}
	return false
}

// Sort ordena list in-place (estable). Un criterio desconocido no cambia el orden.
// Nombre: comparación según locale; vida: límite inferior numérico.
func Sort(list []Breed, criteria SortCriteria) {
	switch criteria {
	case SortNameAsc, SortNameDesc:
		// collate.Collator no es seguro para uso concurrente: uno por llamada
		col := collate.New(language.English)
		sign := 1
		if criteria == SortNameDesc {
			sign = -1
		}
		slices.SortStableFunc(list, func(a, b Breed) int {
			return sign * col.CompareString(a.Name, b.Name)
		})
	case SortLifeAsc:
		slices.SortStableFunc(list, func(a, b Breed) int {
			return cmp.Compare(LifeSpanLowerBound(a), LifeSpanLowerBound(b))
		})
	case SortLifeDesc:
		slices.SortStableFunc(list, func(a, b Breed) int {
			return cmp.Compare(LifeSpanLowerBound(b), LifeSpanLowerBound(a))
		})
	}
}
