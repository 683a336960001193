package table

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/viant/afs"
)

// ParseOption customizes parsing.
type ParseOption func(*parseOptions)

type parseOptions struct {
	dim int
}

// WithDimension pins the vector dimension agreed out-of-band with the
// writer. Without it the parser infers the dimension from the data itself.
func WithDimension(dim int) ParseOption {
	return func(o *parseOptions) {
		o.dim = dim
	}
}

// Parse decodes a binary table produced by Encode. It validates the declared
// entry count against the actual records, rejects any length field that
// overruns the buffer, enforces a single vector dimension across all entries
// and rejects duplicate category names. A table is either loaded completely
// or not at all.
func Parse(data []byte, opts ...ParseOption) (*Table, error) {
	options := parseOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: %d bytes, need at least 4 for entry count", ErrCorrupt, len(data))
	}
	count := int(binary.LittleEndian.Uint32(data))
	body := data[4:]
	if count == 0 {
		if len(body) != 0 {
			return nil, fmt.Errorf("%w: %d trailing bytes after empty table", ErrCorrupt, len(body))
		}
		return &Table{vectors: map[string][]float32{}}, nil
	}
	dim := options.dim
	if dim <= 0 {
		inferred, err := discoverDimension(body, count)
		if err != nil {
			return nil, err
		}
		dim = inferred
	}
	return parseBody(body, count, dim)
}

// Load downloads and parses a table from the given URL.
func Load(ctx context.Context, fs afs.Service, URL string, opts ...ParseOption) (*Table, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download table from %s: %w", URL, err)
	}
	result, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("load table from %s: %w", URL, err)
	}
	return result, nil
}

func parseBody(body []byte, count, dim int) (*Table, error) {
	// Each record is at least a 4 byte name length, 1 name byte and the
	// vector; a declared count beyond that cannot fit and must not drive
	// allocation.
	if minRecord := 5 + dim*4; count > len(body)/minRecord {
		return nil, fmt.Errorf("%w: %d entries cannot fit in %d bytes", ErrCorrupt, count, len(body))
	}
	t := &Table{
		vectors: make(map[string][]float32, count),
		names:   make([]string, 0, count),
		dim:     dim,
	}
	offset := 0
	for i := 0; i < count; i++ {
		name, next, err := readName(body, offset, i)
		if err != nil {
			return nil, err
		}
		offset = next
		if offset+dim*4 > len(body) {
			return nil, fmt.Errorf("%w: entry %d vector needs %d bytes, %d remain", ErrCorrupt, i, dim*4, len(body)-offset)
		}
		vector := make([]float32, dim)
		for j := 0; j < dim; j++ {
			vector[j] = math.Float32frombits(binary.LittleEndian.Uint32(body[offset+j*4:]))
		}
		offset += dim * 4
		if _, ok := t.vectors[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		t.vectors[name] = vector
		t.names = append(t.names, name)
	}
	if offset != len(body) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d entries", ErrCorrupt, len(body)-offset, count)
	}
	sort.Strings(t.names)
	return t, nil
}

func readName(body []byte, offset, record int) (string, int, error) {
	if offset+4 > len(body) {
		return "", 0, fmt.Errorf("%w: entry %d name length truncated", ErrCorrupt, record)
	}
	nameLen := int(binary.LittleEndian.Uint32(body[offset:]))
	offset += 4
	if nameLen == 0 {
		return "", 0, fmt.Errorf("%w: entry %d has empty name", ErrInvalidName, record)
	}
	if offset+nameLen > len(body) {
		return "", 0, fmt.Errorf("%w: entry %d name length %d overruns buffer", ErrCorrupt, record, nameLen)
	}
	name := string(body[offset : offset+nameLen])
	if !utf8.ValidString(name) {
		return "", 0, fmt.Errorf("%w: entry %d name is not valid UTF-8", ErrInvalidName, record)
	}
	return name, offset + nameLen, nil
}

// discoverDimension infers the per-entry vector length. The dimension is not
// stored in the header, so the parser walks the records for each candidate
// and keeps the one layout under which the declared entry count consumes the
// buffer exactly. Anything other than a single consistent layout is treated
// as corruption.
func discoverDimension(body []byte, count int) (int, error) {
	found := 0
	// Each record carries at least a 4 byte length, 1 name byte and the vector.
	for dim := 1; count*(5+dim*4) <= len(body); dim++ {
		if walkRecords(body, count, dim) {
			if found != 0 {
				return 0, fmt.Errorf("%w: ambiguous vector dimension (%d or %d fit)", ErrCorrupt, found, dim)
			}
			found = dim
		}
	}
	if found == 0 {
		return 0, fmt.Errorf("%w: no vector dimension fits %d entries in %d bytes", ErrCorrupt, count, len(body))
	}
	return found, nil
}

func walkRecords(body []byte, count, dim int) bool {
	offset := 0
	for i := 0; i < count; i++ {
		name, next, err := readName(body, offset, i)
		if err != nil || name == "" {
			return false
		}
		offset = next + dim*4
		if offset > len(body) {
			return false
		}
	}
	return offset == len(body)
}
