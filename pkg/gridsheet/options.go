// Package gridsheet opens role-based views of persisted grids: it loads a
// collection's document into an editable grid, saves it back, and runs
// filter and sort projections over it.
package gridsheet

import (
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/codec"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Options configures how pages are opened.
type Options struct {
	// Grid is the shape of the blank grid used when a collection is empty
	// or cannot be read.
	Grid models.Config
	// Decode adjusts document decoding.
	Decode codec.DecodeOptions
	// Logger receives store failures and skipped records. If nil,
	// logrus.StandardLogger() is used.
	Logger *logrus.Logger
}

// DefaultOptions returns the default 10 × 11 grid and the standard logger.
func DefaultOptions() Options {
	return Options{
		Grid: models.DefaultConfig(),
	}
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
