package catalog

import (
	"context"
	"sync"

	"cat-breed-catalog/internal/adapters/storage/memory"
	"cat-breed-catalog/internal/domain/breeds"
)

func sampleBreeds() []breeds.Breed {
	return []breeds.Breed{
		{ID: "abys", Name: "Abyssinian", Origin: "Egypt", LifeSpan: "14 - 15", Weight: breeds.Weight{Metric: "3 - 5"}, Temperament: "Active, Energetic, Independent", Coat: "Short"},
		{ID: "beng", Name: "Bengal", Origin: "United States", LifeSpan: "12 - 16", Weight: breeds.Weight{Metric: "4 - 7"}, Temperament: "Alert, Agile, Energetic", Coat: "Short"},
		{ID: "mau", Name: "Egyptian Mau", Origin: "Egypt", LifeSpan: "18 - 20", Weight: breeds.Weight{Metric: "3 - 5"}, Temperament: "Agile, Dependent, Gentle"},
		{ID: "mcoo", Name: "Maine Coon", Origin: "United States", LifeSpan: "12 - 15", Weight: breeds.Weight{Metric: "5 - 8"}, Temperament: "Adaptable, Intelligent, Loving", Coat: "Long"},
	}
}

type fakeSource struct {
	mu       sync.Mutex
	breeds   []breeds.Breed
	err      error
	image    *breeds.Image
	imageErr error
	calls    int
}

func (s *fakeSource) FetchBreeds(ctx context.Context) ([]breeds.Breed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.breeds, nil
}

func (s *fakeSource) FetchImage(ctx context.Context, breedID string) (*breeds.Image, error) {
	if s.imageErr != nil {
		return nil, s.imageErr
	}
	return s.image, nil
}

func (s *fakeSource) fetchCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// recordingView guarda la última llamada de cada tipo.
type recordingView struct {
	mu       sync.Mutex
	rendered [][]breeds.Breed
	stats    *breeds.Stats
	greeting string
	modal    *breeds.Breed
	imageURL string
	errs     []error
}

func (v *recordingView) RenderBreeds(list []breeds.Breed) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rendered = append(v.rendered, list)
}

func (v *recordingView) RenderStats(s breeds.Stats) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stats = &s
}

func (v *recordingView) RenderGreeting(g string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.greeting = g
}

func (v *recordingView) ShowModal(b breeds.Breed, imageURL string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = &b
	v.imageURL = imageURL
}

func (v *recordingView) ShowError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errs = append(v.errs, err)
}

func (v *recordingView) last() []breeds.Breed {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.rendered) == 0 {
		return nil
	}
	return v.rendered[len(v.rendered)-1]
}

type fixture struct {
	src   *fakeSource
	store breeds.Store
	svc   *breeds.Service
	view  *recordingView
	ctrl  *Controller
}

func newFixture(list []breeds.Breed) *fixture {
	src := &fakeSource{breeds: list}
	store := memory.NewCacheStore()
	svc := breeds.NewService(src, breeds.NewCache(store, nil), nil)
	view := &recordingView{}
	return &fixture{src: src, store: store, svc: svc, view: view, ctrl: NewController(svc, view, nil)}
}

func ids(list []breeds.Breed) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.ID)
	}
	return out
}
