package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY,
	collection TEXT NOT NULL,
	body TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
`

// SQLite stores each document as a JSON body in the documents table.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, newError("open", "", fmt.Errorf("mkdir: %w", err))
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, newError("open", "", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, newError("open", "", fmt.Errorf("schema: %w", err))
	}
	return &SQLite{db: db}, nil
}

// Load returns the first document stored for collection.
func (s *SQLite) Load(ctx context.Context, collection string) (*models.Document, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE collection = ? ORDER BY id LIMIT 1", collection).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, newError("load", collection, err)
	}
	doc, err := decode([]byte(body))
	if err != nil {
		return nil, newError("load", collection, err)
	}
	return doc, nil
}

// Replace deletes every document of collection and inserts doc in one
// transaction.
func (s *SQLite) Replace(ctx context.Context, collection string, doc *models.Document) error {
	body, err := encode(doc)
	if err != nil {
		return newError("replace", collection, err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return newError("replace", collection, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE collection = ?", collection); err != nil {
		return newError("replace", collection, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO documents (collection, body) VALUES (?, ?)", collection, string(body)); err != nil {
		return newError("replace", collection, err)
	}
	if err := tx.Commit(); err != nil {
		return newError("replace", collection, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
