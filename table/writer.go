package table

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// Encode writes the table in its binary form (little-endian):
//
//	u32 entry count
//	per entry, in lexicographic name order:
//	    u32   name length in bytes
//	    bytes UTF-8 name
//	    f32[] vector values
//
// Entries are always emitted sorted by name, so two tables built from the
// same mapping encode to identical bytes.
func (t *Table) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(t.Len())); err != nil {
		return fmt.Errorf("write entry count: %w", err)
	}
	for _, name := range t.names {
		nameBytes := []byte(name)
		if err := binary.Write(w, binary.LittleEndian, uint32(len(nameBytes))); err != nil {
			return fmt.Errorf("write name length for %q: %w", name, err)
		}
		if _, err := w.Write(nameBytes); err != nil {
			return fmt.Errorf("write name %q: %w", name, err)
		}
		if err := writeVector(w, t.vectors[name]); err != nil {
			return fmt.Errorf("write vector for %q: %w", name, err)
		}
	}
	return nil
}

func writeVector(w io.Writer, vector []float32) error {
	b := make([]byte, len(vector)*4)
	for i, v := range vector {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	_, err := w.Write(b)
	return err
}

// Upload encodes the table and writes it to the destination URL, creating
// parent directories as needed.
func Upload(ctx context.Context, fs afs.Service, URL string, t *Table) error {
	buffer := new(bytes.Buffer)
	if err := t.Encode(buffer); err != nil {
		return err
	}
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, buffer); err != nil {
		return fmt.Errorf("upload table to %s: %w", URL, err)
	}
	return nil
}
