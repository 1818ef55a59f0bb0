package router

import (
	"net/http"

	_ "cat-breed-catalog/docs"
	"cat-breed-catalog/internal/domain/catalog"
	"cat-breed-catalog/internal/middleware"
	"cat-breed-catalog/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Controller *catalog.Controller
	Screen     *catalog.Screen

	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Sin controller/screen la vista no se monta; /health y /swagger siguen.
	catalog.RegisterRoutes(r, opts.Controller, opts.Screen, log)

	return r
}
