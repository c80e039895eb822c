package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

const lockRetryDelay = 50 * time.Millisecond

// JSONFile stores each collection as <dir>/<collection>.json.
//
// Writes go to a temp file that is renamed over the target while holding
// <dir>/.lock, so readers never see a partial document.
type JSONFile struct {
	dir  string
	lock *flock.Flock
}

var _ Store = (*JSONFile)(nil)

// NewJSONFile uses dir as the data directory, creating it if needed.
func NewJSONFile(dir string) (*JSONFile, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, newError("open", "", fmt.Errorf("mkdir: %w", err))
	}
	return &JSONFile{dir: dir, lock: flock.New(filepath.Join(dir, ".lock"))}, nil
}

func (j *JSONFile) path(collection string) (string, error) {
	if collection == "" || strings.ContainsAny(collection, `/\`) || collection == "." || collection == ".." {
		return "", fmt.Errorf("invalid collection name %q", collection)
	}
	return filepath.Join(j.dir, collection+".json"), nil
}

// Load reads the document of collection under a shared lock.
func (j *JSONFile) Load(ctx context.Context, collection string) (*models.Document, error) {
	path, err := j.path(collection)
	if err != nil {
		return nil, newError("load", collection, err)
	}
	if _, err := j.lock.TryRLockContext(ctx, lockRetryDelay); err != nil {
		return nil, newError("load", collection, fmt.Errorf("lock: %w", err))
	}
	defer j.lock.Unlock()

	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, newError("load", collection, err)
	}
	doc, err := decode(body)
	if err != nil {
		return nil, newError("load", collection, err)
	}
	return doc, nil
}

// Replace writes doc as the document of collection under an exclusive
// lock.
func (j *JSONFile) Replace(ctx context.Context, collection string, doc *models.Document) error {
	path, err := j.path(collection)
	if err != nil {
		return newError("replace", collection, err)
	}
	if doc == nil {
		return newError("replace", collection, errors.New("nil document"))
	}
	if _, err := j.lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return newError("replace", collection, fmt.Errorf("lock: %w", err))
	}
	defer j.lock.Unlock()

	tmp, err := os.CreateTemp(j.dir, collection+".*.tmp")
	if err != nil {
		return newError("replace", collection, err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		return newError("replace", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return newError("replace", collection, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return newError("replace", collection, err)
	}
	return nil
}

// Close releases the lock file handle.
func (j *JSONFile) Close() error {
	return j.lock.Close()
}
