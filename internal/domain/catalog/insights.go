package catalog

import (
	"strings"

	"cat-breed-catalog/internal/domain/breeds"
)

func (c *Controller) BreedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.all)
}

func (c *Controller) FilteredCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filtered)
}

// Origins: orígenes distintos no vacíos, en orden de aparición.
func (c *Controller) Origins() []string {
	return distinctOrigins(c.All())
}

// MostCommonTemperament cuenta cada tag de temperamento ("Active, Playful").
func (c *Controller) MostCommonTemperament() string {
	return mostCommonTemperament(c.All())
}

// MostCommonCoat: coat ausente cuenta como "Unknown".
func (c *Controller) MostCommonCoat() string {
	return mostCommonCoat(c.All())
}

func (c *Controller) Insights() Insights {
	all := c.All()
	return Insights{
		BreedCount:            len(all),
		FilteredCount:         c.FilteredCount(),
		Origins:               distinctOrigins(all),
		MostCommonTemperament: mostCommonTemperament(all),
		MostCommonCoat:        mostCommonCoat(all),
	}
}

func distinctOrigins(list []breeds.Breed) []string {
	seen := make(map[string]bool, len(list))
	out := []string{}
	for _, b := range list {
		if b.Origin == "" || seen[b.Origin] {
			continue
		}
		seen[b.Origin] = true
		out = append(out, b.Origin)
	}
	return out
}

func mostCommonTemperament(list []breeds.Breed) string {
	var tags []string
	for _, b := range list {
		for _, tag := range strings.Split(b.Temperament, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return mostFrequent(tags)
}

func mostCommonCoat(list []breeds.Breed) string {
	coats := make([]string, 0, len(list))
	for _, b := range list {
		coat := b.Coat
		if coat == "" {
			coat = unknown
		}
		coats = append(coats, coat)
	}
	return mostFrequent(coats)
}

// mostFrequent: empate => gana el primero que apareció. Vacío => "Unknown".
func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best, bestN := unknown, 0
	for _, v := range order {
		if counts[v] > bestN {
			best, bestN = v, counts[v]
		}
	}
	return best
}
