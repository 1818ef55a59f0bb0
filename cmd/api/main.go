package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cat-breed-catalog/internal/adapters/storage"
	"cat-breed-catalog/internal/adapters/thecatapi"
	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/domain/catalog"
	"cat-breed-catalog/internal/platform/config"
	"cat-breed-catalog/internal/platform/logger"
	"cat-breed-catalog/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title Cat Breed Catalog API
// @version 1.0
// @description Vista web del catálogo de razas: carga cache-first desde TheCatAPI, filtros, orden, detalle e insights.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log logger.Logger) error {
	store, closeStore, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("close cache store", map[string]any{"err": err})
		}
	}()

	client, err := thecatapi.NewClient(thecatapi.Config{
		BaseURL: cfg.CatAPIBaseURL,
		APIKey:  cfg.CatAPIKey,
		Timeout: cfg.CatAPITimeout,
	})
	if err != nil {
		return err
	}
	if !client.IsConfigured() {
		log.Warn("CAT_API_KEY not set; only cached data will load", nil)
	}

	svc := breeds.NewService(client, breeds.NewCache(store, log), log)
	screen := catalog.NewScreen()
	ctrl := catalog.NewController(svc, screen, log)
	if cfg.UserName != "" {
		_ = ctrl.SetUserName(cfg.UserName)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Controller: ctrl, Screen: screen, Logger: log}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + cfg.CatAPITimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "cache": string(cfg.CacheBackend)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Carga inicial: un fallo queda en el banner, no tumba el server.
	g.Go(func() error {
		_ = ctrl.LoadBreeds(gctx)
		ctrl.LogState()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
