// Package export materializes a category embedding table into SQLite so SQL
// consumers can join against category vectors without the binary loader.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/viant/sqlite-vec/vector"
	_ "modernc.org/sqlite" // pure Go sqlite driver

	"github.com/walltag/walltag/table"
)

const tableDDL = `CREATE TABLE IF NOT EXISTS category_embeddings (
	name TEXT PRIMARY KEY,
	dim INTEGER NOT NULL,
	embedding BLOB NOT NULL
)`

// SQLite writes all entries into the category_embeddings table of the
// database at dsn, replacing any previous content. The whole export is one
// transaction; a failed export leaves previous content intact.
func SQLite(ctx context.Context, dsn string, t *table.Table) error {
	db, err := open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tableDDL); err != nil {
		return fmt.Errorf("create category_embeddings: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM category_embeddings"); err != nil {
		return fmt.Errorf("clear category_embeddings: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO category_embeddings(name, dim, embedding) VALUES(?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, entry := range t.Entries() {
		blob, err := vector.EncodeEmbedding(entry.Vector)
		if err != nil {
			return fmt.Errorf("encode embedding for %q: %w", entry.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, entry.Name, len(entry.Vector), blob); err != nil {
			return fmt.Errorf("insert %q: %w", entry.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// LoadSQLite reads a previously exported table back from SQLite.
func LoadSQLite(ctx context.Context, dsn string) (*table.Table, error) {
	db, err := open(dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT name, embedding FROM category_embeddings")
	if err != nil {
		return nil, fmt.Errorf("query category_embeddings: %w", err)
	}
	defer rows.Close()

	vectors := map[string][]float32{}
	for rows.Next() {
		var name string
		var blob []byte
		if err := rows.Scan(&name, &blob); err != nil {
			return nil, fmt.Errorf("scan category_embeddings: %w", err)
		}
		decoded, err := vector.DecodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("decode embedding for %q: %w", name, err)
		}
		vectors[name] = decoded
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read category_embeddings: %w", err)
	}
	return table.New(vectors)
}

func open(dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("export: dsn required")
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	return db, nil
}
