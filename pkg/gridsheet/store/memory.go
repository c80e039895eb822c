package store

import (
	"context"
	"sync"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Memory keeps encoded documents in a map. Documents are stored encoded so
// callers never share state with the store.
type Memory struct {
	mu   sync.Mutex
	docs map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Load returns the document of collection.
func (m *Memory) Load(ctx context.Context, collection string) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, newError("load", collection, err)
	}
	m.mu.Lock()
	body, ok := m.docs[collection]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	doc, err := decode(body)
	if err != nil {
		return nil, newError("load", collection, err)
	}
	return doc, nil
}

// Replace overwrites the document of collection.
func (m *Memory) Replace(ctx context.Context, collection string, doc *models.Document) error {
	if err := ctx.Err(); err != nil {
		return newError("replace", collection, err)
	}
	body, err := encode(doc)
	if err != nil {
		return newError("replace", collection, err)
	}
	m.mu.Lock()
	m.docs[collection] = body
	m.mu.Unlock()
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
