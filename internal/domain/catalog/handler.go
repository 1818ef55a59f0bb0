package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/middleware"
	"cat-breed-catalog/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la vista web. Sin controller o sin screen no se registra
// nada: queda un error en el log y el resto del router sigue andando.
func RegisterRoutes(r chi.Router, ctrl *Controller, screen *Screen, log logger.Logger) bool {
	if log == nil {
		log = logger.Nop()
	}
	if ctrl == nil || screen == nil {
		log.Error("catalog view not wired, routes skipped", map[string]any{
			"controller": ctrl != nil,
			"screen":     screen != nil,
		})
		return false
	}

	r.Get("/", pageHandler(screen))
	r.Get("/screen", screenHandler(screen))
	r.Get("/stats", statsHandler(ctrl))
	r.Get("/insights", insightsHandler(ctrl))
	r.Put("/user", setUserHandler(ctrl, screen))
	r.Delete("/modal", closeModalHandler(screen))
	r.Post("/sort", sortHandler(ctrl, screen))
	r.Post("/cache/clear", clearCacheHandler(ctrl, screen))

	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(ctrl))
		br.Get("/query", queryBreedsHandler(ctrl))
		br.Post("/reload", reloadHandler(ctrl, screen))
		br.Post("/{breedID}/details", detailsHandler(ctrl, screen))
	})

	r.Route("/filters", func(fr chi.Router) {
		fr.Post("/reset", resetFiltersHandler(ctrl, screen))
		fr.Post("/{field}", filterHandler(ctrl, screen))
	})

	return true
}

type breedsResponse struct {
	Filters Filters        `json:"filters"`
	Count   int            `json:"count"`
	Breeds  []breeds.Breed `json:"breeds"`
}

type filterRequest struct {
	Value string `json:"value"`
}

type sortRequest struct {
	Criteria string `json:"criteria"` // name-asc | name-desc | life-asc | life-desc
}

type userRequest struct {
	Name string `json:"name"`
}

type greetingResponse struct {
	Greeting string `json:"greeting"`
}

type statsResponse struct {
	Stats breeds.Stats `json:"stats"`
	Lines StatLines    `json:"lines"`
	State State        `json:"state"`
}

// pageHandler godoc
// @Summary Página del catálogo
// @Description Renderiza en HTML lo último que mostró el controller: saludo, banner de error, estadísticas, tarjetas y modal.
// @Tags view
// @Produce html
// @Success 200 {string} string "text/html"
// @Router / [get]
func pageHandler(screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := screen.WriteHTML(w); err != nil {
			middleware.LoggerFrom(r.Context()).Error("render page failed", map[string]any{"err": err})
		}
	}
}

// screenHandler godoc
// @Summary Estado de pantalla
// @Description Devuelve el view model completo en JSON.
// @Tags view
// @Produce json
// @Success 200 {object} Snapshot
// @Router /screen [get]
func screenHandler(screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, screen.Snapshot())
	}
}

// listBreedsHandler godoc
// @Summary Listar razas filtradas
// @Description Devuelve la lista filtrada actual (en el orden vigente) junto con los filtros activos.
// @Tags breeds
// @Produce json
// @Success 200 {object} breedsResponse
// @Router /breeds [get]
func listBreedsHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		list := ctrl.Filtered()
		writeJSON(w, http.StatusOK, breedsResponse{Filters: ctrl.Filters(), Count: len(list), Breeds: list})
	}
}

// queryBreedsHandler godoc
// @Summary Consultar razas por atributos
// @Description Consulta ad hoc sobre la lista completa. No modifica filtros ni pantalla.
// @Tags breeds
// @Produce json
// @Param origin query string false "Origen exacto"
// @Param temperament query string false "Texto contenido en temperament"
// @Param coat query string false "Coat exacto"
// @Param min_weight query number false "Peso mínimo (kg)"
// @Param max_weight query number false "Peso máximo (kg), 0 = sin tope"
// @Param min_life_span query int false "Vida mínima (años)"
// @Param max_life_span query int false "Vida máxima (años), 0 = sin tope"
// @Param energy_level query int false "Nivel de energía 1-5"
// @Param grooming query int false "Grooming 1-5"
// @Param shedding_level query int false "Shedding 1-5"
// @Param child_friendly query int false "Child friendly 1-5"
// @Param dog_friendly query int false "Dog friendly 1-5"
// @Param adaptability query int false "Adaptabilidad 1-5"
// @Param health_issues query int false "Problemas de salud 1-5"
// @Param intelligence query int false "Inteligencia 1-5"
// @Param social_needs query int false "Necesidades sociales 1-5"
// @Param stranger_friendly query int false "Stranger friendly 1-5"
// @Success 200 {array} breeds.Breed
// @Failure 400 {string} string "parámetro inválido"
// @Router /breeds/query [get]
func queryBreedsHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := ParseQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, ctrl.Query(q))
	}
}

// reloadHandler godoc
// @Summary Recargar razas
// @Description Carga cache-first; si no hay cache consulta la API y guarda el resultado. En error la respuesta trae el banner.
// @Tags breeds
// @Produce json
// @Success 200 {object} Snapshot
// @Failure 502 {object} Snapshot "API remota falló o devolvió lista vacía"
// @Failure 503 {object} Snapshot "API key no configurada"
// @Router /breeds/reload [post]
func reloadHandler(ctrl *Controller, screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := ctrl.LoadBreeds(r.Context())
		writeJSON(w, loadStatus(err), screen.Snapshot())
	}
}

// detailsHandler godoc
// @Summary Detalle de raza
// @Description Busca una imagen de la raza y abre el modal. Sin imagen o con error se usa un placeholder.
// @Tags breeds
// @Produce json
// @Param breedID path string true "ID de la raza (ej: abys)"
// @Success 200 {object} Modal
// @Failure 404 {string} string "breed not found"
// @Router /breeds/{breedID}/details [post]
func detailsHandler(ctrl *Controller, screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breedID := strings.TrimSpace(chi.URLParam(r, "breedID"))
		if _, err := ctrl.ShowDetailsByID(r.Context(), breedID); err != nil {
			middleware.LoggerFrom(r.Context()).Info("details for unknown breed", map[string]any{"breed_id": breedID})
			http.Error(w, "breed not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, screen.Snapshot().Modal)
	}
}

// closeModalHandler godoc
// @Summary Cerrar modal
// @Tags view
// @Success 204
// @Router /modal [delete]
func closeModalHandler(screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		screen.CloseModal()
		w.WriteHeader(http.StatusNoContent)
	}
}

// filterHandler godoc
// @Summary Aplicar un filtro
// @Description Recalcula la lista filtrada desde la lista completa usando solo el campo indicado.
// @Tags filters
// @Accept json
// @Produce json
// @Param field path string true "breed | origin | weight"
// @Param payload body filterRequest true "Valor del filtro; vacío = sin restricción"
// @Success 200 {object} Snapshot
// @Failure 400 {string} string "invalid json / unknown filter field"
// @Router /filters/{field} [post]
func filterHandler(ctrl *Controller, screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req filterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		field := FilterField(strings.ToLower(chi.URLParam(r, "field")))
		if err := ctrl.Filter(field, req.Value); err != nil {
			middleware.LoggerFrom(r.Context()).Warn("filter rejected", map[string]any{"field": string(field)})
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, screen.Snapshot())
	}
}

// resetFiltersHandler godoc
// @Summary Limpiar filtros
// @Tags filters
// @Produce json
// @Success 200 {object} Snapshot
// @Router /filters/reset [post]
func resetFiltersHandler(ctrl *Controller, screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctrl.ResetFilters()
		writeJSON(w, http.StatusOK, screen.Snapshot())
	}
}

// sortHandler godoc
// @Summary Ordenar lista filtrada
// @Description Ordena solo la lista filtrada. Un criterio desconocido no cambia el orden.
// @Tags filters
// @Accept json
// @Produce json
// @Param payload body sortRequest true "Criterio"
// @Success 200 {object} Snapshot
// @Failure 400 {string} string "invalid json"
// @Router /sort [post]
func sortHandler(ctrl *Controller, screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sortRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		ctrl.SortBreeds(breeds.SortCriteria(strings.TrimSpace(req.Criteria)))
		writeJSON(w, http.StatusOK, screen.Snapshot())
	}
}

// clearCacheHandler godoc
// @Summary Limpiar cache
// @Description Borra el cache, resetea filtros y recarga desde la API.
// @Tags cache
// @Produce json
// @Success 200 {object} Snapshot
// @Failure 502 {object} Snapshot
// @Failure 503 {object} Snapshot
// @Router /cache/clear [post]
func clearCacheHandler(ctrl *Controller, screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := ctrl.ClearCache(r.Context())
		writeJSON(w, loadStatus(err), screen.Snapshot())
	}
}

// setUserHandler godoc
// @Summary Nombre de usuario
// @Description Guarda el nombre y devuelve el saludo.
// @Tags view
// @Accept json
// @Produce json
// @Param payload body userRequest true "Nombre"
// @Success 200 {object} greetingResponse
// @Failure 400 {string} string "invalid json / please enter your name"
// @Router /user [put]
func setUserHandler(ctrl *Controller, screen *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := ctrl.SetUserName(req.Name); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, greetingResponse{Greeting: screen.Snapshot().Greeting})
	}
}

// statsHandler godoc
// @Summary Estadísticas
// @Description Estadísticas de la lista completa. También vuelca el estado al log.
// @Tags stats
// @Produce json
// @Success 200 {object} statsResponse
// @Router /stats [get]
func statsHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctrl.LogState()
		s := ctrl.Stats()
		writeJSON(w, http.StatusOK, statsResponse{Stats: s, Lines: NewStatLines(s), State: ctrl.State()})
	}
}

// insightsHandler godoc
// @Summary Insights
// @Description Conteos, orígenes distintos, temperamento y coat más frecuentes.
// @Tags stats
// @Produce json
// @Success 200 {object} Insights
// @Router /insights [get]
func insightsHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, ctrl.Insights())
	}
}

// loadStatus: credencial faltante => 503, cualquier otra falla de carga => 502.
func loadStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, breeds.ErrMissingAPIKey):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
