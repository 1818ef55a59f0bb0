package commands

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"cat-breed-catalog/internal/adapters/storage"
	"cat-breed-catalog/internal/adapters/terminal"
	"cat-breed-catalog/internal/adapters/thecatapi"
	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/domain/catalog"
	"cat-breed-catalog/internal/platform/config"
	"cat-breed-catalog/internal/platform/logger"
)

// session son las dependencias armadas en PersistentPreRunE para el comando actual.
type session struct {
	cfg     config.Config
	log     logger.Logger
	out     *terminal.Renderer
	svc     *breeds.Service
	closeFn func() error
}

// controller arma un Controller nuevo sobre la vista indicada.
func (s *session) controller(view catalog.View) *catalog.Controller {
	ctrl := catalog.NewController(s.svc, view, s.log)
	if s.cfg.UserName != "" {
		_ = ctrl.SetUserName(s.cfg.UserName)
	}
	return ctrl
}

// close libera el store una sola vez.
func (s *session) close() error {
	if s.closeFn == nil {
		return nil
	}
	fn := s.closeFn
	s.closeFn = nil
	return fn()
}

type rootFlags struct {
	apiKey    string
	baseURL   string
	cache     string
	cachePath string
	name      string
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd(logger.NewFromEnv()).ExecuteContext(ctx)
}

func NewRootCmd(log logger.Logger) *cobra.Command {
	root, _ := newRootCmd(log)
	return root
}

func newRootCmd(log logger.Logger) (*cobra.Command, *session) {
	var (
		flags rootFlags
		sess  = &session{log: log}
	)

	root := &cobra.Command{
		Use:          "catctl",
		Short:        "Cat breed catalog in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			if err := config.ParseEnv(&cfg); err != nil {
				return err
			}
			applyFlags(cmd, &cfg, flags)
			if err := cfg.Normalize(); err != nil {
				return err
			}

			store, closeFn, err := storage.Open(cfg)
			if err != nil {
				return err
			}

			client, err := thecatapi.NewClient(thecatapi.Config{
				BaseURL: cfg.CatAPIBaseURL,
				APIKey:  cfg.CatAPIKey,
				Timeout: cfg.CatAPITimeout,
			})
			if err != nil {
				_ = closeFn()
				return err
			}

			sess.cfg = cfg
			sess.out = terminal.NewRenderer(cmd.OutOrStdout())
			sess.svc = breeds.NewService(client, breeds.NewCache(store, sess.log), sess.log)
			sess.closeFn = closeFn
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.apiKey, "api-key", "", "TheCatAPI key (default $CAT_API_KEY)")
	pf.StringVar(&flags.baseURL, "base-url", "", "TheCatAPI base URL (default $CAT_API_BASE_URL)")
	pf.StringVar(&flags.cache, "cache", "", "cache backend: memory | sqlite | postgres (default $CACHE_BACKEND)")
	pf.StringVar(&flags.cachePath, "cache-path", "", "sqlite cache file (default ~/.cat-breed-catalog/cache.db)")
	pf.StringVar(&flags.name, "name", "", "user name for the greeting (default $CATALOG_USER_NAME)")

	root.AddCommand(
		listCmd(sess),
		statsCmd(sess),
		detailsCmd(sess),
		queryCmd(sess),
		clearCacheCmd(sess),
		browseCmd(sess),
	)

	// cobra no corre PersistentPostRunE cuando RunE falla: el store se cierra acá
	for _, c := range root.Commands() {
		if c.RunE == nil {
			continue
		}
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if cerr := sess.close(); err == nil {
					err = cerr
				}
			}()
			return run(cmd, args)
		}
	}
	return root, sess
}

// applyFlags: solo pisan env los flags que se pasaron explícitamente.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f rootFlags) {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = strings.TrimSpace(v)
		}
	}
	set("api-key", &cfg.CatAPIKey, f.apiKey)
	set("base-url", &cfg.CatAPIBaseURL, f.baseURL)
	set("cache-path", &cfg.CachePath, f.cachePath)
	set("name", &cfg.UserName, f.name)
	if cmd.Flags().Changed("cache") {
		cfg.CacheBackend = config.CacheBackend(f.cache)
	}
}

// quietView manda al renderer solo modal, saludo y errores. Los comandos de un
// solo disparo imprimen la lista/estadísticas al final, una vez.
type quietView struct {
	*terminal.Renderer
}

func (quietView) RenderBreeds([]breeds.Breed) {}
func (quietView) RenderStats(breeds.Stats)    {}
