// Package store persists one document per named collection.
//
// Every backend implements the same contract: Load returns the single
// document of a collection or ErrNotFound, and Replace overwrites it
// entirely. Two editors saving the same collection do not coordinate; the
// last Replace wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrNotFound is returned by Load when a collection holds no document.
var ErrNotFound = errors.New("document not found")

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// Store loads and replaces collection documents.
type Store interface {
	// Load returns the document of collection, or ErrNotFound.
	Load(ctx context.Context, collection string) (*models.Document, error)
	// Replace deletes whatever collection holds and stores doc as its only
	// document.
	Replace(ctx context.Context, collection string, doc *models.Document) error
	// Close releases the backend.
	Close() error
}

// Error reports a backend failure.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, collection string, err error) *Error {
	return &Error{Op: op, Collection: collection, Err: err}
}

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverJSONFile = "jsonfile"
)

// Open returns the backend named by driver. path is the database file for
// sqlite and the data directory for jsonfile; memory ignores it.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverSQLite:
		s, err := NewSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverJSONFile:
		s, err := NewJSONFile(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%q: %w", driver, ErrUnknownDriver)
}

func encode(doc *models.Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("nil document")
	}
	return json.Marshal(doc)
}

func decode(body []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
