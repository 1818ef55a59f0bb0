package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cat-breed-catalog/internal/domain/breeds"
)

// Query corre una consulta ad hoc sobre la lista completa. No toca filtros ni vista.
func (c *Controller) Query(q breeds.Query) []breeds.Breed {
	return q.Apply(c.All())
}

// ParseQuery arma un breeds.Query desde query params (?origin=Egypt&energy_level=5...).
func ParseQuery(v url.Values) (breeds.Query, error) {
	q := breeds.Query{
		Origin:      strings.TrimSpace(v.Get("origin")),
		Temperament: strings.TrimSpace(v.Get("temperament")),
		Coat:        strings.TrimSpace(v.Get("coat")),
	}

	var err error
	if q.MinWeight, err = floatParam(v, "min_weight"); err != nil {
		return breeds.Query{}, err
	}
	if q.MaxWeight, err = floatParam(v, "max_weight"); err != nil {
		return breeds.Query{}, err
	}
	if q.MinLifeSpan, err = intParam(v, "min_life_span"); err != nil {
		return breeds.Query{}, err
	}
	if q.MaxLifeSpan, err = intParam(v, "max_life_span"); err != nil {
		return breeds.Query{}, err
	}

	levels := []struct {
		name string
		dst  **int
	}{
		{"energy_level", &q.EnergyLevel},
		{"grooming", &q.Grooming},
		{"shedding_level", &q.SheddingLevel},
		{"child_friendly", &q.ChildFriendly},
		{"dog_friendly", &q.DogFriendly},
		{"adaptability", &q.Adaptability},
		{"health_issues", &q.HealthIssues},
		{"intelligence", &q.Intelligence},
		{"social_needs", &q.SocialNeeds},
		{"stranger_friendly", &q.StrangerFriendly},
	}
	for _, l := range levels {
		raw := strings.TrimSpace(v.Get(l.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return breeds.Query{}, fmt.Errorf("%s must be an integer", l.name)
		}
		*l.dst = &n
	}
	return q, nil
}

func floatParam(v url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(v.Get(name))
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return f, nil
}

func intParam(v url.Values, name string) (int, error) {
	raw := strings.TrimSpace(v.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}
