package generator

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/minio/highwayhash"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/bintly"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// promptKey hashes model and prompt into a cache key.
func promptKey(model, prompt string) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err = h.Write([]byte(model + "\n" + prompt)); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// Cache stores prompt embeddings between generation runs so re-runs only
// call the encoder for prompts it has not seen for the current model.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64][]float32
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: map[uint64][]float32{}}
}

// Get returns the cached vector for a model and prompt.
func (c *Cache) Get(model, prompt string) ([]float32, bool) {
	key, err := promptKey(model, prompt)
	if err != nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	vector, ok := c.entries[key]
	return vector, ok
}

// Put stores a vector for a model and prompt.
func (c *Cache) Put(model, prompt string, vector []float32) error {
	key, err := promptKey(model, prompt)
	if err != nil {
		return err
	}
	owned := make([]float32, len(vector))
	copy(owned, vector)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = owned
	return nil
}

// Len returns the number of cached prompts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheSnapshot is the bintly-serialized form of the cache.
type cacheSnapshot struct {
	keys    []uint64
	vectors [][]float32
}

// EncodeBinary encodes the snapshot to a binary stream.
func (s *cacheSnapshot) EncodeBinary(stream *bintly.Writer) error {
	stream.Int(len(s.keys))
	for i := range s.keys {
		stream.Uint64(s.keys[i])
		stream.Float32s(s.vectors[i])
	}
	return nil
}

// DecodeBinary decodes the snapshot from a binary stream.
func (s *cacheSnapshot) DecodeBinary(stream *bintly.Reader) error {
	var count int
	stream.Int(&count)
	s.keys = make([]uint64, count)
	s.vectors = make([][]float32, count)
	for i := 0; i < count; i++ {
		stream.Uint64(&s.keys[i])
		stream.Float32s(&s.vectors[i])
	}
	return nil
}

// Persist uploads the cache to the given URL.
func (c *Cache) Persist(ctx context.Context, fs afs.Service, URL string) error {
	c.mu.RLock()
	snapshot := cacheSnapshot{
		keys:    make([]uint64, 0, len(c.entries)),
		vectors: make([][]float32, 0, len(c.entries)),
	}
	for key := range c.entries {
		snapshot.keys = append(snapshot.keys, key)
	}
	sort.Slice(snapshot.keys, func(i, j int) bool { return snapshot.keys[i] < snapshot.keys[j] })
	for _, key := range snapshot.keys {
		snapshot.vectors = append(snapshot.vectors, c.entries[key])
	}
	c.mu.RUnlock()

	data, err := bintly.Marshal(&snapshot)
	if err != nil {
		return fmt.Errorf("encode embedding cache: %w", err)
	}
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("upload embedding cache to %s: %w", URL, err)
	}
	return nil
}

// LoadCache downloads a previously persisted cache; a missing file yields an
// empty cache.
func LoadCache(ctx context.Context, fs afs.Service, URL string) (*Cache, error) {
	if ok, _ := fs.Exists(ctx, URL); !ok {
		return NewCache(), nil
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download embedding cache from %s: %w", URL, err)
	}
	var snapshot cacheSnapshot
	if err := bintly.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode embedding cache from %s: %w", URL, err)
	}
	cache := NewCache()
	for i, key := range snapshot.keys {
		cache.entries[key] = snapshot.vectors[i]
	}
	return cache, nil
}
