package main

import (
	"testing"

	"github.com/walltag/walltag/embeddings/ollama"
	"github.com/walltag/walltag/embeddings/openai"
	"github.com/walltag/walltag/embeddings/static"
	"github.com/walltag/walltag/generator"
)

func TestParseVector(t *testing.T) {
	vector, err := parseVector("1, 0.5,-0.25")
	if err != nil {
		t.Fatalf("parseVector failed: %v", err)
	}
	want := []float32{1, 0.5, -0.25}
	if len(vector) != len(want) {
		t.Fatalf("parseVector returned %d values, want %d", len(vector), len(want))
	}
	for i := range want {
		if vector[i] != want[i] {
			t.Fatalf("vector[%d] = %v, want %v", i, vector[i], want[i])
		}
	}
	if _, err := parseVector("1,abc"); err == nil {
		t.Fatalf("expected error for malformed vector")
	}
}

func TestSelectEmbedder(t *testing.T) {
	if _, ok := selectEmbedder(&generator.Config{Embedder: "ollama"}).(*ollama.Embedder); !ok {
		t.Fatalf("expected ollama embedder")
	}
	if _, ok := selectEmbedder(&generator.Config{Embedder: "static", Dimension: 16}).(*static.Embedder); !ok {
		t.Fatalf("expected static embedder")
	}
	if _, ok := selectEmbedder(&generator.Config{}).(*openai.Embedder); !ok {
		t.Fatalf("expected openai embedder by default")
	}
}
