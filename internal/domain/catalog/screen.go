package catalog

import (
	"fmt"
	"html/template"
	"io"
	"sync"

	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/platform/textutil"
)

const (
	EmptyListMessage       = "No breeds found. Try adjusting filters or reloading data."
	DescriptionUnavailable = "Description unavailable"

	descriptionMax = 100
)

// Card es una raza lista para mostrar (campos ausentes => "Unknown").
type Card struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	LifeSpan    string `json:"life_span"`
	Weight      string `json:"weight"`
	Temperament string `json:"temperament"`
	Description string `json:"description"`
}

func NewCard(b breeds.Breed) Card {
	return Card{
		ID:          b.ID,
		Name:        textutil.Capitalize(b.Name),
		Origin:      orUnknown(b.Origin),
		LifeSpan:    orUnknown(b.LifeSpan),
		Weight:      orUnknown(b.Weight.Metric) + " kg",
		Temperament: orUnknown(b.Temperament),
		Description: textutil.Truncate(describe(b), descriptionMax),
	}
}

// StatLines son las etiquetas del panel de estadísticas.
type StatLines struct {
	TotalBreeds   string `json:"total_breeds"`
	AvgLifeSpan   string `json:"avg_life_span"`
	AvgWeight     string `json:"avg_weight"`
	UniqueOrigins string `json:"unique_origins"`
}

func NewStatLines(s breeds.Stats) StatLines {
	return StatLines{
		TotalBreeds:   fmt.Sprintf("Total breeds: %d", s.TotalBreeds),
		AvgLifeSpan:   fmt.Sprintf("Average lifespan: %s years", s.AvgLifeSpan),
		AvgWeight:     fmt.Sprintf("Average weight: %s kg", s.AvgWeight),
		UniqueOrigins: fmt.Sprintf("Unique origins: %d", s.UniqueOrigins),
	}
}

// Modal es el detalle de una raza; la descripción va completa, sin truncar.
type Modal struct {
	Breed       breeds.Breed `json:"breed"`
	Name        string       `json:"name"`
	ImageURL    string       `json:"image_url"`
	Description string       `json:"description"`
}

func NewModal(b breeds.Breed, imageURL string) Modal {
	return Modal{
		Breed:       b,
		Name:        textutil.Capitalize(b.Name),
		ImageURL:    imageURL,
		Description: describe(b),
	}
}

func describe(b breeds.Breed) string {
	if b.Description == "" {
		return DescriptionUnavailable
	}
	return b.Description
}

// Snapshot es lo que se ve en pantalla en un momento dado.
type Snapshot struct {
	Greeting     string       `json:"greeting,omitempty"`
	Cards        []Card       `json:"cards"`
	EmptyMessage string       `json:"empty_message,omitempty"`
	Stats        *StatLines   `json:"stats,omitempty"`
	RawStats     breeds.Stats `json:"raw_stats"`
	Modal        *Modal       `json:"modal,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// Screen es la View web: guarda lo último que el controller renderizó para que
// los handlers lo sirvan como JSON o HTML. Gana el último que escribe.
type Screen struct {
	mu       sync.RWMutex
	cards    []Card
	rendered bool
	stats    *breeds.Stats
	modal    *Modal
	errMsg   string
	greeting string
}

func NewScreen() *Screen {
	return &Screen{cards: []Card{}}
}

func (s *Screen) RenderBreeds(list []breeds.Breed) {
	cards := make([]Card, 0, len(list))
	for _, b := range list {
		cards = append(cards, NewCard(b))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = cards
	s.rendered = true
}

// RenderStats solo llega después de una carga exitosa: también baja el banner.
func (s *Screen) RenderStats(stats breeds.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = &stats
	s.errMsg = ""
}

func (s *Screen) RenderGreeting(greeting string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greeting = greeting
}

func (s *Screen) ShowModal(b breeds.Breed, imageURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := NewModal(b, imageURL)
	s.modal = &m
}

// CloseModal equivale a Escape / click fuera del modal.
func (s *Screen) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = nil
}

func (s *Screen) ShowError(err error) {
	msg := "Failed to load breeds. Try reloading data."
	if err != nil {
		msg = "Failed to load breeds: " + err.Error()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

func (s *Screen) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Greeting: s.greeting,
		Cards:    append([]Card{}, s.cards...),
		Error:    s.errMsg,
	}
	if s.rendered && len(s.cards) == 0 {
		snap.EmptyMessage = EmptyListMessage
	}
	if s.stats != nil {
		lines := NewStatLines(*s.stats)
		snap.Stats = &lines
		snap.RawStats = *s.stats
	}
	if s.modal != nil {
		m := *s.modal
		snap.Modal = &m
	}
	return snap
}

// WriteHTML renderiza la página completa del catálogo.
func (s *Screen) WriteHTML(w io.Writer) error {
	return pageTemplate.Execute(w, s.Snapshot())
}

func orUnknown(v string) string {
	if v == "" {
		return unknown
	}
	return v
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Cat Breed Catalog</title></head>
<body>
{{if .Greeting}}<h1 id="greeting">{{.Greeting}}</h1>{{end}}
{{if .Error}}<div id="error-message" role="alert">{{.Error}}</div>{{end}}
{{with .Stats}}<section id="stats">
  <p id="total-breeds">{{.TotalBreeds}}</p>
  <p id="avg-lifespan">{{.AvgLifeSpan}}</p>
  <p id="avg-weight">{{.AvgWeight}}</p>
  <p id="unique-origins">{{.UniqueOrigins}}</p>
</section>{{end}}
<section id="breeds-list">
{{- if .EmptyMessage}}
  <p class="no-results">{{.EmptyMessage}}</p>
{{- end}}
{{- range .Cards}}
  <article class="breed-card" data-id="{{.ID}}">
    <h3>{{.Name}}</h3>
    <p><strong>Origin:</strong> {{.Origin}}</p>
    <p><strong>Life span:</strong> {{.LifeSpan}}</p>
    <p><strong>Weight:</strong> {{.Weight}}</p>
    <p><strong>Temperament:</strong> {{.Temperament}}</p>
    <p>{{.Description}}</p>
  </article>
{{- end}}
</section>
{{with .Modal}}<div id="modal">
  <h2 id="modal-title">{{.Name}}</h2>
  <img id="modal-image" src="{{.ImageURL}}" alt="{{.Name}}">
  <p>{{.Description}}</p>
</div>{{end}}
</body>
</html>
`))
