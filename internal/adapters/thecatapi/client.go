package thecatapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/platform/httpclient"
)

const (
	DefaultBaseURL = "https://api.thecatapi.com/v1"

	// PlaceholderAPIKey es el valor de ejemplo de la documentación; se trata como ausente.
	PlaceholderAPIKey = "live_your_api_key_here"

	apiKeyHeader = "x-api-key"
)

// Config del cliente. BaseURL y APIKey normalmente vienen de env (CAT_API_*).
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client implementa breeds.Source contra TheCatAPI.
type Client struct {
	http   *httpclient.Client
	apiKey string
}

var _ breeds.Source = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("thecatapi: invalid base url: %w", err)
	}

	hc := httpclient.NewWithTransport(cfg.Timeout, cfg.Transport)
	hc.BaseURL = strings.TrimRight(base, "/")

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

// IsConfigured es false si la key falta o es el placeholder.
func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != "" && c.apiKey != PlaceholderAPIKey
}

// FetchBreeds: GET /breeds. Sin key no hay request.
func (c *Client) FetchBreeds(ctx context.Context) ([]breeds.Breed, error) {
	if err := c.checkKey(); err != nil {
		return nil, err
	}

	var out []breeds.Breed
	if err := c.http.DoJSON(ctx, http.MethodGet, "/breeds", nil, c.headers(), nil, &out); err != nil {
		return nil, mapError(err)
	}
	if out == nil {
		out = []breeds.Breed{}
	}
	return out, nil
}

// FetchImage: GET /images/search?breed_ids=<id>. Devuelve el primer resultado o nil.
func (c *Client) FetchImage(ctx context.Context, breedID string) (*breeds.Image, error) {
	breedID = strings.TrimSpace(breedID)
	if breedID == "" {
		return nil, errors.New("thecatapi: breed id required")
	}

	q := url.Values{"breed_ids": {breedID}}
	var out []breeds.Image
	if err := c.http.DoJSON(ctx, http.MethodGet, "/images/search", q, c.headers(), nil, &out); err != nil {
		return nil, mapError(err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	img := out[0]
	return &img, nil
}

func (c *Client) checkKey() error {
	if c == nil || c.apiKey == "" {
		return &breeds.ConfigError{Reason: "CAT_API_KEY is not set; get a key from TheCatAPI"}
	}
	if c.apiKey == PlaceholderAPIKey {
		return &breeds.ConfigError{Reason: "CAT_API_KEY still holds the placeholder value"}
	}
	return nil
}

// headers: la búsqueda de imágenes funciona también sin key, así que solo se
// manda cuando existe.
func (c *Client) headers() map[string]string {
	if !c.IsConfigured() {
		return nil
	}
	return map[string]string{apiKeyHeader: c.apiKey}
}

func mapError(err error) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		return &breeds.HTTPError{StatusCode: he.StatusCode, StatusText: he.StatusText}
	}
	return fmt.Errorf("thecatapi: %w", err)
}
