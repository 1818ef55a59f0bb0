package breeds

import (
	"context"
	"errors"
	"testing"
)

type testSource struct {
	breeds   []Breed
	image    *Image
	err      error
	imageIDs []string
}

func (s *testSource) FetchBreeds(ctx context.Context) ([]Breed, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.breeds, nil
}

func (s *testSource) FetchImage(ctx context.Context, breedID string) (*Image, error) {
	s.imageIDs = append(s.imageIDs, breedID)
	if s.err != nil {
		return nil, s.err
	}
	return s.image, nil
}

func TestService_FetchBreeds_PropagatesErrors(t *testing.T) {
	src := &testSource{err: &HTTPError{StatusCode: 500, StatusText: "Internal Server Error"}}
	svc := NewService(src, NewCache(newTestStore(), nil), nil)

	_, err := svc.FetchBreeds(context.Background())
	var he *HTTPError
	if !errors.As(err, &he) || he.StatusCode != 500 {
		t.Fatalf("expected *HTTPError 500, got %v", err)
	}

	src.err = &ConfigError{Reason: "missing key"}
	_, err = svc.FetchBreeds(context.Background())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestService_FetchBreeds_NilBecomesEmpty(t *testing.T) {
	svc := NewService(&testSource{}, nil, nil)
	list, err := svc.FetchBreeds(context.Background())
	if err != nil || list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v err=%v", list, err)
	}
}

func TestService_FetchImageForBreed(t *testing.T) {
	src := &testSource{image: &Image{ID: "img", URL: "https://cdn/img.jpg"}}
	svc := NewService(src, nil, nil)

	img, err := svc.FetchImageForBreed(context.Background(), " abys ")
	if err != nil || img == nil || img.URL != "https://cdn/img.jpg" {
		t.Fatalf("unexpected image %#v err=%v", img, err)
	}
	if src.imageIDs[0] != "abys" {
		t.Fatalf("expected trimmed breed id, got %q", src.imageIDs[0])
	}

	src.image = &Image{ID: "blank"}
	img, err = svc.FetchImageForBreed(context.Background(), "abys")
	if err != nil || img != nil {
		t.Fatalf("image without url should be nil, got %#v err=%v", img, err)
	}
}

func TestService_CacheBreeds(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testSource{}, NewCache(newTestStore(), nil), nil)

	if _, ok := svc.CachedBreeds(ctx); ok {
		t.Fatalf("expected empty cache")
	}
	svc.CacheBreeds(ctx, sampleBreeds())
	list, ok := svc.CachedBreeds(ctx)
	if !ok || len(list) != len(sampleBreeds()) {
		t.Fatalf("expected cached list, got %d ok=%v", len(list), ok)
	}

	svc.CacheClear(ctx)
	if _, ok := svc.CachedBreeds(ctx); ok {
		t.Fatalf("expected miss after clear")
	}
}

func TestConfigError_Is(t *testing.T) {
	err := error(&ConfigError{Reason: "placeholder key"})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("ConfigError should match ErrMissingAPIKey")
	}
	if errors.Is(err, ErrEmptyResult) {
		t.Fatalf("ConfigError should not match ErrEmptyResult")
	}
}
