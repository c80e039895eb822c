package gridsheet

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/parser"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/store"
)

// ImportXLSX reads one sheet of the workbook at path and replaces the
// document of collection with it.
func ImportXLSX(ctx context.Context, st store.Store, path, collection string, ropts parser.ReadOptions, opts Options) error {
	doc, err := parser.ReadFile(path, ropts)
	if err != nil {
		return NewPageError(collection, "import", err)
	}
	if err := st.Replace(ctx, collection, doc); err != nil {
		return NewPageError(collection, "import", err)
	}
	area := models.Range{Top: 0, Left: 0, Bottom: *doc.Rows - 1, Right: *doc.Columns - 1}
	opts.logger().WithFields(logrus.Fields{
		"collection": collection,
		"rows":       *doc.Rows,
		"columns":    *doc.Columns,
		"cells":      parser.CountNonEmpty(doc.Data, area),
	}).Info("imported workbook")
	return nil
}
