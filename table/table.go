package table

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Entry is a single category with its embedding vector.
type Entry struct {
	Name   string
	Vector []float32
}

// Table is an immutable mapping from category name to a fixed-length
// embedding vector. All vectors in one table share the same dimension.
// A loaded table is never mutated and may be shared across concurrent
// matchers without synchronization.
type Table struct {
	vectors map[string][]float32
	names   []string
	dim     int
}

// New builds a table from a name keyed vector mapping. Every vector must
// have the same non-zero length and every name must be a non-empty UTF-8
// string.
func New(vectors map[string][]float32) (*Table, error) {
	t := &Table{
		vectors: make(map[string][]float32, len(vectors)),
		names:   make([]string, 0, len(vectors)),
	}
	for name, vector := range vectors {
		if name == "" || !utf8.ValidString(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		if len(vector) == 0 {
			return nil, fmt.Errorf("%w: %q has empty vector", ErrDimensionMismatch, name)
		}
		if t.dim == 0 {
			t.dim = len(vector)
		}
		if len(vector) != t.dim {
			return nil, fmt.Errorf("%w: %q has %d values, table dimension is %d", ErrDimensionMismatch, name, len(vector), t.dim)
		}
		owned := make([]float32, len(vector))
		copy(owned, vector)
		t.vectors[name] = owned
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)
	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.names)
}

// Dimension returns the vector length shared by all entries, zero for an
// empty table.
func (t *Table) Dimension() int {
	return t.dim
}

// Names returns category names in canonical (lexicographic) order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Vector returns the stored vector for a category name.
func (t *Table) Vector(name string) ([]float32, bool) {
	vector, ok := t.vectors[name]
	return vector, ok
}

// Entries returns all entries in canonical order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.names))
	for _, name := range t.names {
		out = append(out, Entry{Name: name, Vector: t.vectors[name]})
	}
	return out
}
