package table

import "errors"

var (
	// ErrCorrupt indicates truncated or structurally invalid table data.
	ErrCorrupt = errors.New("table: corrupt or truncated data")

	// ErrDuplicateName indicates two entries share the same category name.
	ErrDuplicateName = errors.New("table: duplicate category name")

	// ErrInvalidName indicates an empty or non-UTF-8 category name.
	ErrInvalidName = errors.New("table: invalid category name")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// table dimension.
	ErrDimensionMismatch = errors.New("table: vector dimension mismatch")

	// ErrEmptyTable indicates a match was attempted against a table with no
	// entries.
	ErrEmptyTable = errors.New("table: empty table")
)
