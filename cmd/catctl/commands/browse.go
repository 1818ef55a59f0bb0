package commands

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cat-breed-catalog/internal/adapters/terminal"
	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/domain/catalog"
	"cat-breed-catalog/internal/platform/deferred"
)

const browseHelp = `commands:
  name <name>                 set the greeting name
  breed|origin|weight <text>  filter (applied after a short pause)
  apply                       apply all stored filters together
  sort <criteria>             name-asc | name-desc | life-asc | life-desc
  reset                       clear filters
  details <breed-id>          show one breed with its image
  list | stats | insights     show current data
  reload | clear              reload breeds / clear cache and reload
  help | quit`

func browseCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive catalog reading commands from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newBrowser(s, cmd.InOrStdin()).run(cmd.Context())
		},
	}
}

type browser struct {
	ctrl *catalog.Controller
	out  *terminal.Renderer
	in   io.Reader

	debounce map[catalog.FilterField]*deferred.Debouncer
	throttle *deferred.Throttler

	mu      sync.Mutex
	pending map[catalog.FilterField]string
	ctx     context.Context
}

var filterFields = []catalog.FilterField{catalog.FieldBreed, catalog.FieldOrigin, catalog.FieldWeight}

func newBrowser(s *session, in io.Reader) *browser {
	b := &browser{
		ctrl:     s.controller(s.out),
		out:      s.out,
		in:       in,
		debounce: make(map[catalog.FilterField]*deferred.Debouncer, len(filterFields)),
		throttle: deferred.NewThrottler(s.cfg.Throttle),
		pending:  make(map[catalog.FilterField]string),
	}
	for _, f := range filterFields {
		b.debounce[f] = deferred.NewDebouncer(s.cfg.Debounce)
	}
	return b
}

func (b *browser) run(ctx context.Context) error {
	b.ctx = ctx

	// un fallo de carga ya quedó en pantalla; el browse sigue (reload reintenta)
	_ = b.ctrl.LoadBreeds(ctx)
	b.out.Message("type 'help' for commands")

	sc := bufio.NewScanner(b.in)
	for {
		if !sc.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if quit := b.handle(strings.TrimSpace(sc.Text())); quit {
			break
		}
	}

	b.flush()
	b.throttle.Reset()
	b.ctrl.LogState()

	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (b *browser) handle(line string) bool {
	if line == "" {
		return false
	}
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		b.out.Message("%s", browseHelp)
	case "name":
		if err := b.ctrl.SetUserName(arg); err != nil {
			b.out.Message("Please enter your name!")
		}
	case "breed", "origin", "weight":
		b.schedule(catalog.FilterField(strings.ToLower(verb)), arg)
	case "apply":
		b.flush()
		b.ctrl.ApplyAllFilters()
	case "sort":
		b.ctrl.SortBreeds(breeds.SortCriteria(arg))
	case "reset":
		b.cancelPending()
		b.ctrl.ResetFilters()
	case "details":
		if _, err := b.ctrl.ShowDetailsByID(b.ctx, arg); err != nil {
			b.out.Message("%s: %v", arg, err)
		}
	case "list":
		b.out.RenderBreeds(b.ctrl.Filtered())
	case "stats":
		b.out.RenderStats(b.ctrl.Stats())
		b.ctrl.LogState()
	case "insights":
		in := b.ctrl.Insights()
		b.out.Message("Breeds: %d (showing %d)", in.BreedCount, in.FilteredCount)
		b.out.Message("Most common temperament: %s", in.MostCommonTemperament)
		b.out.Message("Most common coat: %s", in.MostCommonCoat)
		b.out.Message("Origins: %s", strings.Join(in.Origins, ", "))
	case "reload":
		if !b.throttle.Do(func() { _ = b.ctrl.LoadBreeds(b.ctx) }) {
			b.out.Message("reload ignored, try again in a moment")
		}
	case "clear":
		if !b.throttle.Do(func() { _ = b.ctrl.ClearCache(b.ctx) }) {
			b.out.Message("clear ignored, try again in a moment")
		}
	default:
		b.out.Message("unknown command %q (type 'help')", verb)
	}
	return false
}

// schedule guarda el último valor del campo y reinicia su espera.
func (b *browser) schedule(field catalog.FilterField, value string) {
	b.mu.Lock()
	b.pending[field] = value
	b.mu.Unlock()

	b.debounce[field].Debounce(func() { b.fire(field) })
}

func (b *browser) fire(field catalog.FilterField) {
	b.mu.Lock()
	value, ok := b.pending[field]
	delete(b.pending, field)
	b.mu.Unlock()

	if ok {
		_ = b.ctrl.Filter(field, value)
	}
}

// flush aplica ya los filtros que siguen esperando.
func (b *browser) flush() {
	for _, f := range filterFields {
		b.debounce[f].Immediate(func() { b.fire(f) })
	}
}

func (b *browser) cancelPending() {
	for _, f := range filterFields {
		b.debounce[f].Cancel()
	}
	b.mu.Lock()
	clear(b.pending)
	b.mu.Unlock()
}
