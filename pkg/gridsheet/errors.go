package gridsheet

import (
	"errors"
	"fmt"
)

// ErrReadOnly indicates a write through a non-admin page.
var ErrReadOnly = errors.New("page is read-only")

// ErrRowOutOfRange indicates a row outside the data rows of a page.
var ErrRowOutOfRange = errors.New("row out of range")

// PageError represents a failed page operation on a collection.
type PageError struct {
	Collection string
	Op         string // "open", "save", "refresh", "append", "import"
	Err        error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Collection, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// NewPageError creates a new PageError.
func NewPageError(collection, op string, err error) *PageError {
	return &PageError{
		Collection: collection,
		Op:         op,
		Err:        err,
	}
}
