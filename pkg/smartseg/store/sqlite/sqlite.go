// Package sqlite implements store.Store on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/smartseg/pkg/smartseg/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency between indexer and readers
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	url TEXT UNIQUE NOT NULL,
	title TEXT,
	indexed_at TEXT
);

CREATE TABLE IF NOT EXISTS postings (
	doc_id TEXT NOT NULL,
	field TEXT NOT NULL,
	token TEXT NOT NULL,
	position INTEGER NOT NULL,
	start_offset INTEGER NOT NULL,
	end_offset INTEGER NOT NULL,
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_postings_token ON postings(token);
CREATE INDEX IF NOT EXISTS idx_postings_doc_field ON postings(doc_id, field);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) UpsertDoc(ctx context.Context, d store.Doc) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO docs (id, url, title, indexed_at) VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET title=excluded.title, indexed_at=excluded.indexed_at
ON CONFLICT(url) DO UPDATE SET title=excluded.title, indexed_at=excluded.indexed_at`,
		d.ID, d.URL, d.Title, d.IndexedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert doc %s: %w", d.URL, err)
	}
	return nil
}

func (s *sqliteStore) GetDoc(ctx context.Context, id string) (store.Doc, bool, error) {
	return s.scanDoc(s.db.QueryRowContext(ctx,
		"SELECT id, url, title, indexed_at FROM docs WHERE id = ?", id))
}

func (s *sqliteStore) GetDocByURL(ctx context.Context, url string) (store.Doc, bool, error) {
	return s.scanDoc(s.db.QueryRowContext(ctx,
		"SELECT id, url, title, indexed_at FROM docs WHERE url = ?", url))
}

func (s *sqliteStore) scanDoc(row *sql.Row) (store.Doc, bool, error) {
	var d store.Doc
	var indexedAt string
	err := row.Scan(&d.ID, &d.URL, &d.Title, &indexedAt)
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}
	if t, err := time.Parse(time.RFC3339, indexedAt); err == nil {
		d.IndexedAt = t
	}
	return d, true, nil
}

func (s *sqliteStore) DocCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM docs").Scan(&n)
	return n, err
}

// ReplacePostings swaps out all postings for one (doc, field) pair in a
// single transaction, so re-indexing a document never leaves a mix of
// old and new tokens behind.
func (s *sqliteStore) ReplacePostings(ctx context.Context, docID, field string, postings []store.Posting) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM postings WHERE doc_id = ? AND field = ?", docID, field); err != nil {
		return fmt.Errorf("clear postings: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO postings (doc_id, field, token, position, start_offset, end_offset) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range postings {
		if _, err := stmt.ExecContext(ctx, docID, field, p.Text, p.Position, p.Start, p.End); err != nil {
			return fmt.Errorf("insert posting %q: %w", p.Text, err)
		}
	}

	return tx.Commit()
}

func (s *sqliteStore) PostingsForToken(ctx context.Context, text string, limit int) ([]store.Posting, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT doc_id, field, token, position, start_offset, end_offset FROM postings
WHERE token = ? ORDER BY doc_id, field, position LIMIT ?`, text, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Posting
	for rows.Next() {
		var p store.Posting
		if err := rows.Scan(&p.DocID, &p.Field, &p.Text, &p.Position, &p.Start, &p.End); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
