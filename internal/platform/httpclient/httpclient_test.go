package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestDoJSON_DecodesAndSendsHeadersAndQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("missing api key header")
		}
		if r.URL.Path != "/v1/images/search" || r.URL.Query().Get("breed_ids") != "abys" {
			t.Errorf("unexpected url %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"img1","url":"https://cdn/x.jpg"}]`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/v1/", time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL: %v", err)
	}

	var out []struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	err = c.DoJSON(context.Background(), http.MethodGet, "images/search",
		url.Values{"breed_ids": {"abys"}}, map[string]string{"x-api-key": "secret"}, nil, &out)
	if err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if len(out) != 1 || out[0].ID != "img1" {
		t.Fatalf("unexpected decode: %#v", out)
	}
}

func TestDoJSON_Non2xx_ReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, ts.URL+"/breeds", nil, nil, nil, nil)

	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if he.StatusCode != http.StatusUnauthorized || he.StatusText != "Unauthorized" || he.Body != "nope" {
		t.Fatalf("unexpected error fields: %#v", he)
	}
}

func TestDoJSON_RelativeWithoutBaseURL(t *testing.T) {
	c := New(0)
	if err := c.DoJSON(context.Background(), http.MethodGet, "/breeds", nil, nil, nil, nil); err == nil {
		t.Fatalf("expected error for relative path without BaseURL")
	}
	if c.HTTP.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %s", c.HTTP.Timeout)
	}
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	if _, err := NewWithBaseURL("::not a url", time.Second); err == nil {
		t.Fatalf("expected invalid base url error")
	}
}
