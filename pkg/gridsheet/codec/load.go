package codec

import (
	"context"
	"errors"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/store"
)

// Result is the outcome of Load. Snapshot is always usable: it holds the
// default grid when nothing was found or the store failed.
type Result struct {
	Snapshot *models.Snapshot
	// Found is true when the collection held a document.
	Found bool
	// Err is the store failure, nil when the document was simply absent.
	Err error
	// Malformed lists records skipped while decoding, if any.
	Malformed *MalformedError
}

// Load fetches and decodes the document of collection.
func Load(ctx context.Context, st store.Store, collection string, cfg models.Config, opts DecodeOptions) Result {
	doc, err := st.Load(ctx, collection)
	if errors.Is(err, store.ErrNotFound) {
		return Result{Snapshot: models.DefaultSnapshot(cfg)}
	}
	if err != nil {
		return Result{Snapshot: models.DefaultSnapshot(cfg), Err: err}
	}

	snap, err := Decode(doc, cfg, opts)
	res := Result{Snapshot: snap, Found: true}
	var bad *MalformedError
	if errors.As(err, &bad) {
		res.Malformed = bad
	}
	return res
}
