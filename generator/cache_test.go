package generator

import (
	"context"
	"testing"

	"github.com/viant/afs"
)

func TestCache_PersistAndLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/generator/cache.bin"

	cache := NewCache()
	if err := cache.Put("model-a", "a dense forest with tall trees", []float32{0.1, 0.2, 0.3}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.Put("model-a", "ocean waves and sea water", []float32{0.3, 0.2, 0.1}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.Persist(ctx, fs, URL); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	loaded, err := LoadCache(ctx, fs, URL)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("loaded %d entries, want 2", loaded.Len())
	}
	vector, ok := loaded.Get("model-a", "a dense forest with tall trees")
	if !ok {
		t.Fatalf("cached prompt missing after reload")
	}
	want := []float32{0.1, 0.2, 0.3}
	for i := range want {
		if vector[i] != want[i] {
			t.Fatalf("vector[%d] = %v, want %v", i, vector[i], want[i])
		}
	}
}

func TestCache_ModelScopesKeys(t *testing.T) {
	cache := NewCache()
	if err := cache.Put("model-a", "prompt", []float32{1}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, ok := cache.Get("model-b", "prompt"); ok {
		t.Fatalf("cache returned a vector for a different model")
	}
}

func TestLoadCache_MissingFile(t *testing.T) {
	cache, err := LoadCache(context.Background(), afs.New(), "mem://localhost/generator/absent.bin")
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", cache.Len())
	}
}
