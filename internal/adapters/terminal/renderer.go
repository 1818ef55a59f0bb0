// Package terminal implementa la View del catálogo para la consola (catctl).
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/domain/catalog"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#8BC34A")
	primary = lipgloss.Color("#2196F3")
	danger  = lipgloss.Color("#e53935")
	muted   = lipgloss.Color("#9e9e9e")
)

type styles struct {
	title  lipgloss.Style
	card   lipgloss.Style
	label  lipgloss.Style
	muted  lipgloss.Style
	errBox lipgloss.Style
	modal  lipgloss.Style
	stats  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(accent),
		card:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1).MarginBottom(1),
		label:  r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(muted),
		errBox: r.NewStyle().Bold(true).Foreground(danger),
		modal:  r.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(1, 2),
		stats:  r.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// Renderer escribe cada señal del controller en out. Los colores dependen de
// si out es una terminal (lipgloss detecta el perfil).
type Renderer struct {
	mu    sync.Mutex
	out   io.Writer
	st    styles
	Width int // 0 = sin límite
}

var _ catalog.View = (*Renderer)(nil)

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, st: newStyles(lipgloss.NewRenderer(out))}
}

func (r *Renderer) RenderBreeds(list []breeds.Breed) {
	var sb strings.Builder
	if len(list) == 0 {
		sb.WriteString(r.st.muted.Render(catalog.EmptyListMessage))
		sb.WriteString("\n")
		r.write(sb.String())
		return
	}

	sb.WriteString(r.st.title.Render(fmt.Sprintf("%d breeds", len(list))))
	sb.WriteString("\n")
	for _, b := range list {
		sb.WriteString(r.cardBlock(catalog.NewCard(b)))
		sb.WriteString("\n")
	}
	r.write(sb.String())
}

func (r *Renderer) cardBlock(c catalog.Card) string {
	lines := []string{
		r.st.title.Render(c.Name) + " " + r.st.muted.Render("("+c.ID+")"),
		r.st.label.Render("Origin:") + " " + c.Origin,
		r.st.label.Render("Life span:") + " " + c.LifeSpan,
		r.st.label.Render("Weight:") + " " + c.Weight,
		r.st.label.Render("Temperament:") + " " + c.Temperament,
		c.Description,
	}
	card := r.st.card
	if r.Width > 0 {
		card = card.Width(r.Width)
	}
	return card.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) RenderStats(s breeds.Stats) {
	l := catalog.NewStatLines(s)
	block := r.st.stats.Render(strings.Join([]string{l.TotalBreeds, l.AvgLifeSpan, l.AvgWeight, l.UniqueOrigins}, "\n"))
	r.write(block + "\n")
}

func (r *Renderer) RenderGreeting(greeting string) {
	r.write(r.st.title.Render(greeting) + "\n")
}

func (r *Renderer) ShowModal(b breeds.Breed, imageURL string) {
	c := catalog.NewCard(b)
	m := catalog.NewModal(b, imageURL)

	lines := []string{
		r.st.title.Render(m.Name),
		r.st.label.Render("Image:") + " " + m.ImageURL,
		r.st.label.Render("Origin:") + " " + c.Origin,
		r.st.label.Render("Life span:") + " " + c.LifeSpan,
		r.st.label.Render("Weight:") + " " + c.Weight,
		r.st.label.Render("Temperament:") + " " + c.Temperament,
	}
	if b.WikipediaURL != "" {
		lines = append(lines, r.st.label.Render("Wikipedia:")+" "+b.WikipediaURL)
	}
	lines = append(lines, "", m.Description)

	modal := r.st.modal
	if r.Width > 0 {
		modal = modal.Width(r.Width)
	}
	r.write(modal.Render(strings.Join(lines, "\n")) + "\n")
}

func (r *Renderer) ShowError(err error) {
	msg := "Failed to load breeds. Try reloading data."
	if err != nil {
		msg = "Failed to load breeds: " + err.Error()
	}
	r.write(r.st.errBox.Render(msg) + "\n")
}

// Message imprime una línea suelta (ayuda del browse, avisos de throttle).
func (r *Renderer) Message(format string, args ...any) {
	r.write(r.st.muted.Render(fmt.Sprintf(format, args...)) + "\n")
}

func (r *Renderer) write(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.out, s)
}
