package breeds

import (
	"math"
	"strings"
)

// Los helpers de consulta son puros: reciben la lista completa y devuelven una
// nueva (nunca nil), preservando el orden. Un campo opcional ausente no matchea.

func where(list []Breed, keep func(Breed) bool) []Breed {
	out := make([]Breed, 0, len(list))
	for _, b := range list {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// ByID busca por identificador exacto.
func ByID(list []Breed, id string) (Breed, bool) {
	for _, b := range list {
		if b.ID == id {
			return b, true
		}
	}
	return Breed{}, false
}

// ByNameContains: substring case-insensitive sobre el nombre. Query vacía => lista completa.
func ByNameContains(list []Breed, query string) []Breed {
	q := strings.ToLower(query)
	return where(list, func(b Breed) bool {
		return strings.Contains(strings.ToLower(b.Name), q)
	})
}

// ByOriginContains: substring case-insensitive sobre origin. Query vacía => lista completa.
func ByOriginContains(list []Breed, query string) []Breed {
	if query == "" {
		return where(list, func(Breed) bool { return true })
	}
	q := strings.ToLower(query)
	return where(list, func(b Breed) bool {
		return b.Origin != "" && strings.Contains(strings.ToLower(b.Origin), q)
	})
}

// ByOrigin: igualdad exacta.
func ByOrigin(list []Breed, origin string) []Breed {
	return where(list, func(b Breed) bool { return b.Origin == origin })
}

// ByMinWeight compara el límite inferior del peso métrico (ausente => 0).
func ByMinWeight(list []Breed, minKg float64) []Breed {
	return where(list, func(b Breed) bool { return WeightLowerBound(b) >= minKg })
}

// ByWeightRange: max <= 0 significa sin tope.
func ByWeightRange(list []Breed, minKg, maxKg float64) []Breed {
	if maxKg <= 0 {
		maxKg = math.Inf(1)
	}
	return where(list, func(b Breed) bool {
		w := WeightLowerBound(b)
		return w >= minKg && w <= maxKg
	})
}

// ByLifeSpanRange: max <= 0 significa sin tope.
func ByLifeSpanRange(list []Breed, minYears, maxYears int) []Breed {
	return where(list, func(b Breed) bool {
		ls := LifeSpanLowerBound(b)
		return ls >= minYears && (maxYears <= 0 || ls <= maxYears)
	})
}

// ByTemperament: substring (case-sensitive) dentro del texto de temperamento.
func ByTemperament(list []Breed, temperament string) []Breed {
	if temperament == "" {
		return where(list, func(Breed) bool { return true })
	}
	return where(list, func(b Breed) bool {
		return b.Temperament != "" && strings.Contains(b.Temperament, temperament)
	})
}

func ByCoat(list []Breed, coat string) []Breed {
	return where(list, func(b Breed) bool { return b.Coat == coat })
}

func byLevel(list []Breed, level int, field func(Breed) int) []Breed {
	return where(list, func(b Breed) bool { return field(b) == level })
}

func ByEnergyLevel(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.EnergyLevel })
}

func ByGrooming(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.Grooming })
}

func BySheddingLevel(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.SheddingLevel })
}

func ByChildFriendly(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.ChildFriendly })
}

func ByDogFriendly(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.DogFriendly })
}

func ByAdaptability(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.Adaptability })
}

func ByHealthIssues(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.HealthIssues })
}

func ByIntelligence(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.Intelligence })
}

func BySocialNeeds(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.SocialNeeds })
}

func ByStrangerFriendly(list []Breed, level int) []Breed {
	return byLevel(list, level, func(b Breed) int { return b.StrangerFriendly })
}

// Query combina helpers; los punteros nil / strings vacíos no restringen.
// Lo usan GET /breeds/query y `catctl query`.
type Query struct {
	Origin      string
	Temperament string
	Coat        string

	MinWeight, MaxWeight     float64
	MinLifeSpan, MaxLifeSpan int

	EnergyLevel      *int
	Grooming         *int
	SheddingLevel    *int
	ChildFriendly    *int
	DogFriendly      *int
	Adaptability     *int
	HealthIssues     *int
	Intelligence     *int
	SocialNeeds      *int
	StrangerFriendly *int
}

// Apply aplica cada restricción presente en orden fijo sobre list.
func (q Query) Apply(list []Breed) []Breed {
	out := where(list, func(Breed) bool { return true })

	if q.Origin != "" {
		out = ByOrigin(out, q.Origin)
	}
	if q.Temperament != "" {
		out = ByTemperament(out, q.Temperament)
	}
	if q.Coat != "" {
		out = ByCoat(out, q.Coat)
	}
	if q.MinWeight > 0 || q.MaxWeight > 0 {
		out = ByWeightRange(out, q.MinWeight, q.MaxWeight)
	}
	if q.MinLifeSpan > 0 || q.MaxLifeSpan > 0 {
		out = ByLifeSpanRange(out, q.MinLifeSpan, q.MaxLifeSpan)
	}

	levels := []struct {
		v  *int
		fn func([]Breed, int) []Breed
	}{
		{q.EnergyLevel, ByEnergyLevel},
		{q.Grooming, ByGrooming},
		{q.SheddingLevel, BySheddingLevel},
		{q.ChildFriendly, ByChildFriendly},
		{q.DogFriendly, ByDogFriendly},
		{q.Adaptability, ByAdaptability},
		{q.HealthIssues, ByHealthIssues},
		{q.Intelligence, ByIntelligence},
		{q.SocialNeeds, BySocialNeeds},
		{q.StrangerFriendly, ByStrangerFriendly},
	}
	for _, l := range levels {
		if l.v != nil {
			out = l.fn(out, *l.v)
		}
	}
	return out
}
