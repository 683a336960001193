// Package generator runs the one-shot batch job that turns the category
// catalog into a binary embedding table: it embeds every prompt, averages
// the prompt vectors per category, renormalizes the mean to unit length and
// uploads the encoded table.
package generator

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/viant/afs"

	"github.com/walltag/walltag/catalog"
	"github.com/walltag/walltag/embeddings"
	"github.com/walltag/walltag/table"
)

// Progress reports per-category generation progress.
type Progress func(category string, current, total int)

// Service generates category embedding tables.
type Service struct {
	embedder embeddings.Embedder
	fs       afs.Service
	model    string
	prompts  map[string][]string
	cacheURL string
	progress Progress
}

// Option configures the service.
type Option func(*Service)

// WithModel sets the model identifier recorded in cache keys.
func WithModel(model string) Option {
	return func(s *Service) { s.model = model }
}

// WithPrompts overrides the default category catalog.
func WithPrompts(prompts map[string][]string) Option {
	return func(s *Service) { s.prompts = prompts }
}

// WithCacheURL enables the persisted prompt embedding cache.
func WithCacheURL(URL string) Option {
	return func(s *Service) { s.cacheURL = URL }
}

// WithProgress sets a progress callback.
func WithProgress(progress Progress) Option {
	return func(s *Service) { s.progress = progress }
}

// WithFS sets the file service used for table and cache IO.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// New creates a generation service backed by the given embedder.
func New(embedder embeddings.Embedder, opts ...Option) (*Service, error) {
	if embedder == nil {
		return nil, fmt.Errorf("generator: embedder is required")
	}
	s := &Service{embedder: embedder}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.prompts == nil {
		s.prompts = catalog.Prompts()
	}
	return s, nil
}

// Generate embeds the catalog, builds the table and uploads it to outputURL.
// The first encoder or IO failure aborts the run; inputs are static, so
// there is nothing to retry.
func (s *Service) Generate(ctx context.Context, outputURL string) (*table.Table, error) {
	if len(s.prompts) == 0 {
		return nil, fmt.Errorf("generator: no categories to embed")
	}
	cache := NewCache()
	if s.cacheURL != "" {
		loaded, err := LoadCache(ctx, s.fs, s.cacheURL)
		if err != nil {
			return nil, err
		}
		cache = loaded
	}

	names := make([]string, 0, len(s.prompts))
	for name := range s.prompts {
		names = append(names, name)
	}
	sort.Strings(names)

	vectors := make(map[string][]float32, len(names))
	for i, name := range names {
		prompts := s.prompts[name]
		if len(prompts) == 0 {
			return nil, fmt.Errorf("generator: category %q has no prompts", name)
		}
		embedded, err := s.embedPrompts(ctx, cache, prompts)
		if err != nil {
			return nil, fmt.Errorf("embed category %q: %w", name, err)
		}
		mean, err := meanVector(embedded)
		if err != nil {
			return nil, fmt.Errorf("average category %q: %w", name, err)
		}
		if err := normalize(mean); err != nil {
			return nil, fmt.Errorf("normalize category %q: %w", name, err)
		}
		vectors[name] = mean
		if s.progress != nil {
			s.progress(name, i+1, len(names))
		}
	}

	result, err := table.New(vectors)
	if err != nil {
		return nil, err
	}
	if outputURL != "" {
		if err := table.Upload(ctx, s.fs, outputURL, result); err != nil {
			return nil, err
		}
	}
	if s.cacheURL != "" {
		if err := cache.Persist(ctx, s.fs, s.cacheURL); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// embedPrompts returns one vector per prompt, consulting the cache first and
// embedding all misses in a single encoder call.
func (s *Service) embedPrompts(ctx context.Context, cache *Cache, prompts []string) ([][]float32, error) {
	out := make([][]float32, len(prompts))
	var missing []string
	var missingAt []int
	for i, prompt := range prompts {
		if vector, ok := cache.Get(s.model, prompt); ok {
			out[i] = vector
			continue
		}
		missing = append(missing, prompt)
		missingAt = append(missingAt, i)
	}
	if len(missing) == 0 {
		return out, nil
	}
	embedded, err := s.embedder.EmbedDocuments(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(missing) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d prompts", len(embedded), len(missing))
	}
	for j, vector := range embedded {
		if len(vector) == 0 {
			return nil, fmt.Errorf("embedder returned empty vector for %q", missing[j])
		}
		out[missingAt[j]] = vector
		if err := cache.Put(s.model, missing[j], vector); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// meanVector averages vectors component-wise; all inputs must share one
// length.
func meanVector(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no vectors to average")
	}
	dim := len(vectors[0])
	sums := make([]float64, dim)
	for _, vector := range vectors {
		if len(vector) != dim {
			return nil, fmt.Errorf("%w: got lengths %d and %d", table.ErrDimensionMismatch, dim, len(vector))
		}
		for i, v := range vector {
			sums[i] += float64(v)
		}
	}
	mean := make([]float32, dim)
	for i, sum := range sums {
		mean[i] = float32(sum / float64(len(vectors)))
	}
	return mean, nil
}

// normalize scales a vector to unit length in place.
func normalize(vector []float32) error {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return fmt.Errorf("zero-magnitude embedding")
	}
	inv := float32(1.0 / math.Sqrt(sum))
	for i := range vector {
		vector[i] *= inv
	}
	return nil
}
