// Package table implements the binary category embedding table: a compact,
// immutable mapping from category name to a fixed-length float32 vector.
// It includes:
//   - Table model with canonical (name-sorted) entry order
//   - Encoder producing the little-endian binary layout
//   - Defensive parser with dimension self-discovery
//   - Cosine similarity matcher for query vectors
package table
