package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/platform/logger"
	"cat-breed-catalog/internal/platform/textutil"

	"github.com/google/uuid"
)

// Controller es el contenedor explícito del estado de la app: lista completa,
// filtros activos, lista filtrada y nombre de usuario. Se pasa por referencia
// a las vistas; no hay instancia global.
//
// El lock protege solo el estado. Las llamadas de red y las de la View se hacen
// fuera del lock, así que dos operaciones concurrentes pueden pisarse la
// pantalla: gana la última que renderiza.
type Controller struct {
	svc  *breeds.Service
	view View
	log  logger.Logger

	mu       sync.Mutex
	all      []breeds.Breed
	filtered []breeds.Breed
	filters  Filters
	userName string
}

func NewController(svc *breeds.Service, view View, log logger.Logger) *Controller {
	if view == nil {
		view = nopView{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		svc:      svc,
		view:     view,
		log:      log.With(map[string]any{"component": "catalog"}),
		all:      []breeds.Breed{},
		filtered: []breeds.Breed{},
	}
}

// LoadBreeds: cache primero, API si no hay cache (y write-back). Lista vacía o
// cualquier falla terminan en ShowError; el error se devuelve igual para que el
// caller elija status/exit code.
func (c *Controller) LoadBreeds(ctx context.Context) error {
	log := c.log.With(map[string]any{"load_id": uuid.NewString()})

	list, ok := c.svc.CachedBreeds(ctx)
	if ok && list != nil {
		log.Info("breeds loaded from cache", map[string]any{"count": len(list)})
	} else {
		fetched, err := c.svc.FetchBreeds(ctx)
		if err != nil {
			log.Error("load breeds failed", map[string]any{"err": err})
			c.view.ShowError(err)
			return err
		}
		c.svc.CacheBreeds(ctx, fetched)
		list = fetched
		log.Info("breeds loaded from api", map[string]any{"count": len(list)})
	}

	if len(list) == 0 {
		c.mu.Lock()
		c.all = []breeds.Breed{}
		c.filtered = []breeds.Breed{}
		c.mu.Unlock()

		log.Warn("breed list is empty", nil)
		c.view.ShowError(breeds.ErrEmptyResult)
		return breeds.ErrEmptyResult
	}

	c.mu.Lock()
	c.all = list
	c.mu.Unlock()

	c.ApplyAllFilters()
	c.view.RenderStats(c.svc.ComputeStats(list))
	return nil
}

// ApplyAllFilters compone nombre, origen y peso mínimo sobre la lista completa.
func (c *Controller) ApplyAllFilters() {
	c.mu.Lock()
	out := applyFilters(c.all, c.filters)
	c.filtered = out
	f := c.filters
	c.mu.Unlock()

	c.log.Info("filters applied", map[string]any{"filtered": len(out), "breed": f.Breed, "origin": f.Origin, "weight": f.Weight})
	c.view.RenderBreeds(clone(out))
}

func applyFilters(all []breeds.Breed, f Filters) []breeds.Breed {
	out := clone(all)
	if f.Breed != "" {
		out = breeds.ByNameContains(out, f.Breed)
	}
	if f.Origin != "" {
		out = breeds.ByOriginContains(out, f.Origin)
	}
	if f.Weight != "" {
		out = breeds.ByMinWeight(out, breeds.LeadingFloat(f.Weight))
	}
	return out
}

// FilterByBreed, FilterByOrigin y FilterByWeight recalculan desde la lista
// completa usando solo su propio predicado; los otros filtros quedan guardados
// pero no se aplican hasta ApplyAllFilters.
func (c *Controller) FilterByBreed(query string) {
	c.filterBy(func(f *Filters) { f.Breed = query }, func(all []breeds.Breed) []breeds.Breed {
		return breeds.ByNameContains(all, query)
	})
}

func (c *Controller) FilterByOrigin(query string) {
	c.filterBy(func(f *Filters) { f.Origin = query }, func(all []breeds.Breed) []breeds.Breed {
		return breeds.ByOriginContains(all, query)
	})
}

// FilterByWeight recibe el valor tal cual se tipeó; lo no numérico cuenta como 0.
func (c *Controller) FilterByWeight(minWeight string) {
	minKg := breeds.LeadingFloat(minWeight)
	c.filterBy(func(f *Filters) { f.Weight = minWeight }, func(all []breeds.Breed) []breeds.Breed {
		return breeds.ByMinWeight(all, minKg)
	})
}

// Filter despacha por nombre de campo (lo usan handlers y el browse del CLI).
func (c *Controller) Filter(field FilterField, value string) error {
	switch field {
	case FieldBreed:
		c.FilterByBreed(value)
	case FieldOrigin:
		c.FilterByOrigin(value)
	case FieldWeight:
		c.FilterByWeight(value)
	default:
		return errors.New("unknown filter field")
	}
	return nil
}

func (c *Controller) filterBy(set func(*Filters), pred func([]breeds.Breed) []breeds.Breed) {
	c.mu.Lock()
	set(&c.filters)
	out := pred(c.all)
	c.filtered = out
	c.mu.Unlock()

	c.view.RenderBreeds(clone(out))
}

// SetFilters reemplaza los filtros guardados sin recalcular ni renderizar;
// los aplica la próxima LoadBreeds o ApplyAllFilters.
func (c *Controller) SetFilters(f Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f
}

// ResetFilters limpia filtros y vuelve a mostrar la lista completa.
func (c *Controller) ResetFilters() {
	c.mu.Lock()
	c.filters = Filters{}
	c.filtered = clone(c.all)
	out := clone(c.filtered)
	c.mu.Unlock()

	c.view.RenderBreeds(out)
}

// SortBreeds ordena solo la lista filtrada. Criterio desconocido: no mueve nada.
func (c *Controller) SortBreeds(criteria breeds.SortCriteria) {
	c.mu.Lock()
	breeds.Sort(c.filtered, criteria)
	out := clone(c.filtered)
	c.mu.Unlock()

	if !criteria.Valid() {
		c.log.Debug("unknown sort criteria", map[string]any{"criteria": string(criteria)})
	}
	c.view.RenderBreeds(out)
}

// ShowDetails pide la imagen y abre el modal. Nunca falla: sin imagen o con
// error se usa un placeholder. Devuelve la URL mostrada.
func (c *Controller) ShowDetails(ctx context.Context, b breeds.Breed) string {
	imageURL := PlaceholderNoImage

	img, err := c.svc.FetchImageForBreed(ctx, b.ID)
	switch {
	case err != nil:
		c.log.Error("image load failed", map[string]any{"breed_id": b.ID, "err": err})
		imageURL = PlaceholderLoadError
	case img != nil && img.URL != "":
		imageURL = img.URL
	}

	c.view.ShowModal(b, imageURL)
	return imageURL
}

// ShowDetailsByID busca la raza en la lista completa. ErrNotFound si no está.
func (c *Controller) ShowDetailsByID(ctx context.Context, breedID string) (string, error) {
	c.mu.Lock()
	b, ok := breeds.ByID(c.all, strings.TrimSpace(breedID))
	c.mu.Unlock()

	if !ok {
		return "", breeds.ErrNotFound
	}
	return c.ShowDetails(ctx, b), nil
}

// ClearCache borra el cache, resetea filtros y recarga.
func (c *Controller) ClearCache(ctx context.Context) error {
	c.svc.CacheClear(ctx)

	c.mu.Lock()
	c.filters = Filters{}
	c.mu.Unlock()

	err := c.LoadBreeds(ctx)
	c.log.Info("cache cleared, breeds reloaded", map[string]any{"ok": err == nil})
	return err
}

// SetUserName guarda el nombre y actualiza el saludo. Nombre vacío => error.
func (c *Controller) SetUserName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("please enter your name")
	}

	c.mu.Lock()
	c.userName = name
	c.mu.Unlock()

	c.view.RenderGreeting(c.Greeting())
	return nil
}

func (c *Controller) UserName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userName
}

// Greeting: "Hello, <Nombre>!".
func (c *Controller) Greeting() string {
	return "Hello, " + textutil.Capitalize(c.UserName()) + "!"
}

func (c *Controller) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

func (c *Controller) All() []breeds.Breed {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.all)
}

func (c *Controller) Filtered() []breeds.Breed {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.filtered)
}

func (c *Controller) Stats() breeds.Stats {
	return c.svc.ComputeStats(c.All())
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		UserName:      c.userName,
		BreedsCount:   len(c.all),
		FilteredCount: len(c.filtered),
		Filters:       c.filters,
	}
}

// LogState vuelca el estado actual al log.
func (c *Controller) LogState() {
	s := c.State()
	c.log.Info("current state", map[string]any{
		"user_name":      s.UserName,
		"breeds_count":   s.BreedsCount,
		"filtered_count": s.FilteredCount,
		"filter_breed":   s.Filters.Breed,
		"filter_origin":  s.Filters.Origin,
		"filter_weight":  s.Filters.Weight,
	})
}

func clone(list []breeds.Breed) []breeds.Breed {
	out := make([]breeds.Breed, len(list))
	copy(out, list)
	return out
}
