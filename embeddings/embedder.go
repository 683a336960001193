// Package embeddings defines the text encoder abstraction used to turn
// category prompts and queries into vectors.
package embeddings

import "context"

// Embedder computes vector embeddings for category prompts and for ad-hoc
// query text. All vectors returned by one embedder share the same length.
type Embedder interface {
	EmbedDocuments(ctx context.Context, docs []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
