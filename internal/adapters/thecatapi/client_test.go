package thecatapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cat-breed-catalog/internal/domain/breeds"
)

func newTestServer(t *testing.T, hits *int32, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestFetchBreeds_MissingOrPlaceholderKey_NoNetworkCall(t *testing.T) {
	var hits int32
	ts := newTestServer(t, &hits, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	for _, key := range []string{"", "  ", PlaceholderAPIKey} {
		c, err := NewClient(Config{BaseURL: ts.URL, APIKey: key})
		if err != nil {
			t.Fatalf("NewClient: %v", err)
		}
		_, err = c.FetchBreeds(context.Background())

		var ce *breeds.ConfigError
		if !errors.As(err, &ce) || !errors.Is(err, breeds.ErrMissingAPIKey) {
			t.Fatalf("key %q: expected ConfigError, got %v", key, err)
		}
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("expected no network calls, got %d", hits)
	}
}

func TestFetchBreeds_DecodesAndSendsKey(t *testing.T) {
	var hits int32
	ts := newTestServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/breeds" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "live_test" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"abys","name":"Abyssinian","origin":"Egypt","life_span":"14 - 15",
			 "weight":{"imperial":"7  -  10","metric":"3 - 5"},"temperament":"Active, Energetic",
			 "energy_level":5,"grooming":1,"extra_field":"ignored"},
			{"id":"beng","name":"Bengal","life_span":"12 - 15","weight":{"metric":"3 - 7"}}
		]`))
	})

	c, _ := NewClient(Config{BaseURL: ts.URL, APIKey: "live_test", Timeout: time.Second})
	list, err := c.FetchBreeds(context.Background())
	if err != nil {
		t.Fatalf("FetchBreeds: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 breeds, got %d", len(list))
	}
	if list[0].Weight.Metric != "3 - 5" || list[0].EnergyLevel != 5 || list[1].Origin != "" {
		t.Fatalf("unexpected decode: %#v", list)
	}
}

func TestFetchBreeds_Non2xx_ReturnsHTTPError(t *testing.T) {
	var hits int32
	ts := newTestServer(t, &hits, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	c, _ := NewClient(Config{BaseURL: ts.URL, APIKey: "live_test"})
	_, err := c.FetchBreeds(context.Background())

	var he *breeds.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *breeds.HTTPError, got %v", err)
	}
	if he.StatusCode != http.StatusTooManyRequests || he.StatusText != "Too Many Requests" {
		t.Fatalf("unexpected fields %#v", he)
	}
}

func TestFetchImage(t *testing.T) {
	var hits int32
	body := `[{"id":"img1","url":"https://cdn2.thecatapi.com/images/img1.jpg","width":800,"height":600},{"id":"img2","url":"x"}]`
	ts := newTestServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		switch r.URL.Query().Get("breed_ids") {
		case "abys":
			_, _ = w.Write([]byte(body))
		case "none":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	})

	c, _ := NewClient(Config{BaseURL: ts.URL + "/", APIKey: "live_test"})

	img, err := c.FetchImage(context.Background(), "abys")
	if err != nil || img == nil || img.ID != "img1" || img.Width != 800 {
		t.Fatalf("expected first image, got %#v err=%v", img, err)
	}

	img, err = c.FetchImage(context.Background(), "none")
	if err != nil || img != nil {
		t.Fatalf("expected nil image for empty result, got %#v err=%v", img, err)
	}

	_, err = c.FetchImage(context.Background(), "boom")
	var he *breeds.HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected HTTPError 502, got %v", err)
	}

	if _, err := c.FetchImage(context.Background(), " "); err == nil {
		t.Fatalf("expected error for empty breed id")
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "not a url"}); err == nil {
		t.Fatalf("expected error")
	}
	c, err := NewClient(Config{})
	if err != nil || c.http.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %v %v", c, err)
	}
}
