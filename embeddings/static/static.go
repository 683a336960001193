// Package static provides a deterministic, offline embedder. It hashes the
// input text into a seed and expands it into a unit-length vector, which
// makes generation runs reproducible without a model server.
package static

import (
	"context"
	"math"
)

// Embedder returns deterministic unit vectors of a fixed dimension.
type Embedder struct {
	Dim int
}

// New constructs a static embedder.
func New(dim int) *Embedder {
	if dim <= 0 {
		dim = 64
	}
	return &Embedder{Dim: dim}
}

// EmbedDocuments embeds each document deterministically.
func (e *Embedder) EmbedDocuments(ctx context.Context, docs []string) ([][]float32, error) {
	out := make([][]float32, len(docs))
	for i, doc := range docs {
		out[i] = embedText(doc, e.Dim)
	}
	return out, nil
}

// EmbedQuery embeds a query deterministically.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return embedText(text, e.Dim), nil
}

func embedText(text string, dim int) []float32 {
	var h uint32 = 2166136261
	for i := 0; i < len(text); i++ {
		h = (h ^ uint32(text[i])) * 16777619
	}
	v := make([]float32, dim)
	seed := h
	var norm float64
	for i := range v {
		seed = seed*1664525 + 1013904223
		// Center around zero so distinct texts spread across directions.
		v[i] = float32(seed%10000)/5000.0 - 1.0
		norm += float64(v[i]) * float64(v[i])
	}
	if norm == 0 {
		v[0] = 1
		return v
	}
	inv := float32(1.0 / math.Sqrt(norm))
	for i := range v {
		v[i] *= inv
	}
	return v
}
