package breeds

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// -------------------------
// Test store (in-memory)
// -------------------------

type testStore struct {
	data     map[string][]byte
	failSet  bool
	failGet  bool
	failWipe bool
}

func newTestStore() *testStore {
	return &testStore{data: map[string][]byte{}}
}

func (s *testStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failSet {
		return errors.New("quota exceeded")
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *testStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet {
		return nil, errors.New("storage disabled")
	}
	v, ok := s.data[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return v, nil
}

func (s *testStore) Clear(ctx context.Context) error {
	if s.failWipe {
		return errors.New("storage disabled")
	}
	s.data = map[string][]byte{}
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestCache_RoundTrip_DeepEqual(t *testing.T) {
	ctx := context.Background()
	c := NewCache(newTestStore(), nil)

	values := []any{
		map[string]any{"a": 1.0, "b": []any{"x", true, nil}},
		[]any{1.5, "two", map[string]any{"three": 3.0}},
		"plain",
		42.0,
	}
	for i, v := range values {
		key := string(rune('a' + i))
		c.Set(ctx, key, v)

		var got any
		if !c.Get(ctx, key, &got) {
			t.Fatalf("expected hit for %q", key)
		}
		if diff := cmp.Diff(v, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}

	c.Set(ctx, CacheKeyBreeds, sampleBreeds())
	list, ok := GetAs[[]Breed](ctx, c, CacheKeyBreeds)
	if !ok {
		t.Fatalf("expected cached breeds")
	}
	if diff := cmp.Diff(sampleBreeds(), list); diff != "" {
		t.Fatalf("breeds round trip (-want +got):\n%s", diff)
	}
}

func TestCache_Get_MissAndCorrupt_ReturnFalse(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	c := NewCache(store, nil)

	var out any
	if c.Get(ctx, "never-set", &out) {
		t.Fatalf("expected miss")
	}

	store.data["broken"] = []byte("{not json")
	if _, ok := GetAs[[]Breed](ctx, c, "broken"); ok {
		t.Fatalf("expected parse failure to be a miss")
	}

	store.failGet = true
	if c.Get(ctx, "broken", &out) {
		t.Fatalf("expected read failure to be a miss")
	}
}

func TestCache_Get_TypeMismatch_LeavesOutUntouched(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	c := NewCache(store, nil)

	store.data["breed"] = []byte(`{"id":"abys","name":5}`)

	prior := Breed{ID: "beng", Name: "Bengal"}
	got := prior
	if c.Get(ctx, "breed", &got) {
		t.Fatalf("expected type mismatch to be a miss")
	}
	if diff := cmp.Diff(prior, got); diff != "" {
		t.Fatalf("out was modified on failed decode (-want +got):\n%s", diff)
	}
}

func TestCache_SetFailure_LeavesPriorState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	c := NewCache(store, nil)

	c.Set(ctx, "k", "v1")
	store.failSet = true
	c.Set(ctx, "k", "v2")

	// valores no serializables tampoco escriben
	store.failSet = false
	c.Set(ctx, "k", math.NaN())

	got, ok := GetAs[string](ctx, c, "k")
	if !ok || got != "v1" {
		t.Fatalf("expected prior value v1, got %q ok=%v", got, ok)
	}
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	c := NewCache(store, nil)

	c.Set(ctx, "a", 1)
	c.Set(ctx, "b", 2)

	store.failWipe = true
	c.Clear(ctx) // no debe paniquear
	if len(store.data) != 2 {
		t.Fatalf("failed clear should leave entries, got %d", len(store.data))
	}

	store.failWipe = false
	c.Clear(ctx)
	if len(store.data) != 0 {
		t.Fatalf("expected empty store, got %d", len(store.data))
	}
}

func TestCache_NilSafe(t *testing.T) {
	var c *Cache
	c.Set(context.Background(), "k", 1)
	c.Clear(context.Background())
	var out int
	if c.Get(context.Background(), "k", &out) {
		t.Fatalf("nil cache should miss")
	}
}
