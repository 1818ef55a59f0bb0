package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"cat-breed-catalog/internal/platform/logger"
)

func fakeAPI(t *testing.T, calls *int32) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/breeds", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"abys","name":"Abyssinian","origin":"Egypt","life_span":"14 - 15","weight":{"metric":"3 - 5"},"temperament":"Active, Energetic","coat":"Short"},
			{"id":"beng","name":"Bengal","origin":"United States","life_span":"12 - 16","weight":{"metric":"4 - 7"},"temperament":"Alert, Energetic","coat":"Short"}
		]`))
	})
	mux.HandleFunc("/v1/images/search", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts.URL + "/v1"
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(logger.Nop())
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func baseArgs(apiURL string) []string {
	return []string{"--cache", "memory", "--api-key", "test-key", "--base-url", apiURL}
}

func TestList_FiltersAndSort(t *testing.T) {
	var calls int32
	api := fakeAPI(t, &calls)

	out, err := runCLI(t, "", append([]string{"list"}, append(baseArgs(api), "--weight", "4")...)...)
	if err != nil {
		t.Fatalf("list: %v\n%s", err, out)
	}
	if !strings.Contains(out, "1 breeds") || !strings.Contains(out, "Bengal") || strings.Contains(out, "Abyssinian") {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	out, err = runCLI(t, "", append([]string{"list"}, append(baseArgs(api), "--sort", "name-desc")...)...)
	if err != nil {
		t.Fatalf("list sorted: %v", err)
	}
	if strings.Index(out, "Bengal") > strings.Index(out, "Abyssinian") {
		t.Fatalf("expected Bengal before Abyssinian:\n%s", out)
	}
}

func TestFailedCommand_StillClosesStore(t *testing.T) {
	var calls int32
	api := fakeAPI(t, &calls)
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	for _, cmdName := range []string{"list", "stats", "details"} {
		root, sess := newRootCmd(logger.Nop())
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		args := []string{cmdName, "--cache", "sqlite", "--cache-path", cachePath, "--api-key", "", "--base-url", api}
		if cmdName == "details" {
			args = append(args, "abys")
		}
		root.SetArgs(args)

		if err := root.Execute(); err == nil {
			t.Fatalf("%s: expected error without api key", cmdName)
		}
		if sess.svc == nil {
			t.Fatalf("%s: session was never opened", cmdName)
		}
		if sess.closeFn != nil {
			t.Fatalf("%s: store left open after failed run", cmdName)
		}
	}
}

func TestList_MissingKey_Fails(t *testing.T) {
	var calls int32
	api := fakeAPI(t, &calls)

	out, err := runCLI(t, "", "list", "--cache", "memory", "--api-key", "", "--base-url", api)
	if err == nil {
		t.Fatalf("expected error without api key")
	}
	if !strings.Contains(out, "Failed to load breeds") || atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("expected banner and no api call, calls=%d out=\n%s", calls, out)
	}
}

func TestStatsDetailsQuery(t *testing.T) {
	var calls int32
	api := fakeAPI(t, &calls)

	out, err := runCLI(t, "", append([]string{"stats"}, baseArgs(api)...)...)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Total breeds: 2", "Average lifespan: 13.0 years", "Average weight: 3.5 kg", "Most common temperament: Energetic", "Most common coat: Short"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "", append([]string{"details", "beng"}, baseArgs(api)...)...)
	if err != nil || !strings.Contains(out, "No+cat+photo") {
		t.Fatalf("details: err=%v out=\n%s", err, out)
	}
	if _, err := runCLI(t, "", append([]string{"details", "nope"}, baseArgs(api)...)...); err == nil {
		t.Fatalf("expected not found error")
	}

	out, err = runCLI(t, "", append([]string{"query", "--origin", "Egypt"}, baseArgs(api)...)...)
	if err != nil || !strings.Contains(out, "Abyssinian") || strings.Contains(out, "Bengal") {
		t.Fatalf("query: err=%v out=\n%s", err, out)
	}
}

func TestClearCache(t *testing.T) {
	var calls int32
	api := fakeAPI(t, &calls)

	out, err := runCLI(t, "", append([]string{"clear-cache"}, baseArgs(api)...)...)
	if err != nil || !strings.Contains(out, "Cache cleared, 2 breeds reloaded") {
		t.Fatalf("clear-cache: err=%v out=\n%s", err, out)
	}
}

func TestBrowse_DebouncedFiltersAndThrottledReload(t *testing.T) {
	var calls int32
	api := fakeAPI(t, &calls)
	// ventanas largas: nada se dispara solo durante el test
	t.Setenv("CATALOG_DEBOUNCE", "1h")
	t.Setenv("CATALOG_THROTTLE", "1h")

	script := strings.Join([]string{
		"name ana",
		"origin united",
		"apply",
		"reload",
		"reload",
		"details abys",
		"bogus",
		"quit",
	}, "\n")

	out, err := runCLI(t, script, append([]string{"browse"}, baseArgs(api)...)...)
	if err != nil {
		t.Fatalf("browse: %v\n%s", err, out)
	}
	for _, want := range []string{"Hello, Ana!", "1 breeds", "reload ignored", "No+cat+photo", `unknown command "bogus"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("browse output missing %q:\n%s", want, out)
		}
	}
}
