// Package codec converts between persisted documents and live grids.
//
// Decode turns a Document into a Snapshot, Apply builds a grid surface
// from a Snapshot and Encode reads a surface back into a Document. Rows of
// the text matrix and of every record count from the first data row, so
// one document shows the same way in admin grids and, one row lower, in
// non-admin grids with their header row.
package codec

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Grid size limits. Decode clamps larger rows and columns values and
// reports them as malformed; Apply never builds a wider grid.
const (
	MaxRows    = 65536
	MaxColumns = 256
)

// DecodeOptions adjusts Decode.
type DecodeOptions struct {
	// SizeMissingDataFromDocument sizes the blank matrix used when a
	// document has no data to the document's rows and columns. By default
	// it is sized to the configured defaults.
	SizeMissingDataFromDocument bool
}

// MalformedError lists records Decode skipped. The snapshot returned
// alongside it is still complete and usable.
type MalformedError struct {
	Records []string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("skipped %d malformed record(s): %s", len(e.Records), strings.Join(e.Records, "; "))
}

func (e *MalformedError) add(list string, i int, reason string) {
	e.Records = append(e.Records, fmt.Sprintf("%s[%d]: %s", list, i, reason))
}

// Decode reads doc into a snapshot, filling absent fields from cfg. A nil
// doc decodes to the default snapshot.
//
// Records missing a required key are skipped and reported through a
// *MalformedError; fonts missing bold or size take the defaults instead.
func Decode(doc *models.Document, cfg models.Config, opts DecodeOptions) (*models.Snapshot, error) {
	if doc == nil {
		return models.DefaultSnapshot(cfg), nil
	}

	snap := &models.Snapshot{
		Rows:       cfg.DefaultRows,
		Columns:    cfg.DefaultColumns,
		Colors:     make(map[models.Pos]string),
		Fonts:      make(map[models.Pos]models.Font),
		Alignments: make(map[models.Pos]models.Alignment),
		RowHeights: make(map[int]int),
		ColWidths:  make(map[int]int),
	}

	bad := &MalformedError{}

	if doc.Rows != nil {
		snap.Rows = max(*doc.Rows, 0)
	}
	if snap.Rows > MaxRows {
		bad.Records = append(bad.Records, fmt.Sprintf("rows: %d exceeds %d", snap.Rows, MaxRows))
		snap.Rows = MaxRows
	}
	if doc.Columns != nil {
		snap.Columns = max(*doc.Columns, 0)
	}
	if snap.Columns > MaxColumns {
		bad.Records = append(bad.Records, fmt.Sprintf("columns: %d exceeds %d", snap.Columns, MaxColumns))
		snap.Columns = MaxColumns
	}
	if doc.Headers != nil {
		snap.Headers = append([]string(nil), doc.Headers...)
	} else {
		snap.Headers = cfg.Headers(cfg.DefaultColumns)
	}

	switch {
	case doc.Data != nil:
		snap.Data = make([][]string, len(doc.Data))
		for i, row := range doc.Data {
			snap.Data[i] = append([]string{}, row...)
		}
	case opts.SizeMissingDataFromDocument:
		snap.Data = models.EmptyMatrix(snap.Rows, snap.Columns)
	default:
		snap.Data = models.EmptyMatrix(cfg.DefaultRows, cfg.DefaultColumns)
	}

	for i, r := range doc.Spans {
		if r.Row == nil || r.Column == nil || r.RowSpan == nil || r.ColumnSpan == nil {
			bad.add("spans", i, "missing key")
			continue
		}
		if *r.RowSpan < 1 || *r.ColumnSpan < 1 {
			bad.add("spans", i, "span smaller than one cell")
			continue
		}
		sp := models.Span{Row: *r.Row, Col: *r.Column, RowSpan: *r.RowSpan, ColSpan: *r.ColumnSpan}
		if sp.IsMerge() {
			snap.Spans = append(snap.Spans, sp)
		}
	}

	for i, r := range doc.Colors {
		if r.Row == nil || r.Column == nil {
			bad.add("colors", i, "missing row or column")
			continue
		}
		snap.Colors[models.Pos{Row: *r.Row, Col: *r.Column}] = r.Color
	}

	for i, r := range doc.Fonts {
		if r.Row == nil || r.Column == nil {
			bad.add("fonts", i, "missing row or column")
			continue
		}
		f := models.Font{Size: models.DefaultFontSize}
		if r.Bold != nil {
			f.Bold = *r.Bold
		}
		if r.Size != nil {
			f.Size = *r.Size
		}
		snap.Fonts[models.Pos{Row: *r.Row, Col: *r.Column}] = f
	}

	for i, r := range doc.Alignments {
		if r.Row == nil || r.Column == nil {
			bad.add("alignments", i, "missing row or column")
			continue
		}
		if r.Alignment == nil {
			bad.add("alignments", i, "missing alignment")
			continue
		}
		snap.Alignments[models.Pos{Row: *r.Row, Col: *r.Column}] = *r.Alignment
	}

	for i, r := range doc.RowHeights {
		if r.Row == nil || r.Height == nil {
			bad.add("row_heights", i, "missing row or height")
			continue
		}
		snap.RowHeights[*r.Row] = *r.Height
	}

	for i, r := range doc.ColWidths {
		if r.Col == nil || r.Width == nil {
			bad.add("col_widths", i, "missing col or width")
			continue
		}
		snap.ColWidths[*r.Col] = *r.Width
	}

	if len(bad.Records) > 0 {
		return snap, bad
	}
	return snap, nil
}
