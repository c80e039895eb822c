// Package grid holds the editable cell grid and the operations the editor
// applies to it.
//
// Operations work against Surface so that any rendering widget can host
// the grid; Grid is the in-memory implementation.
package grid

import "github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"

// Surface is a 2-D addressable cell surface.
//
// Span reports the span anchored at (row, col); cells covered by a span
// but not anchoring it report 1×1. SetSpan with 1×1 removes a span.
type Surface interface {
	RowCount() int
	ColumnCount() int
	SetRowCount(n int)
	SetColumnCount(n int)
	InsertRows(at, n int)
	RemoveRows(at, n int)
	InsertColumns(at, n int)
	RemoveColumns(at, n int)

	Cell(row, col int) (models.Cell, bool)
	SetCell(row, col int, cell models.Cell)

	Span(row, col int) (rowSpan, colSpan int)
	SetSpan(row, col, rowSpan, colSpan int)

	RowHeight(row int) (height int, ok bool)
	SetRowHeight(row, height int)
	ColumnWidth(col int) (width int, ok bool)
	SetColumnWidth(col, width int)

	Header(col int) string
	SetHeader(col int, label string)

	SelectedRanges() []models.Range
}

// Locker is implemented by surfaces that can refuse user edits.
type Locker interface {
	// RowLocked reports whether user edits to row are refused.
	RowLocked(row int) bool
}

// cellOrNew returns the cell at (row, col), or an empty default-styled cell
// when none exists.
func cellOrNew(s Surface, row, col int) models.Cell {
	if c, ok := s.Cell(row, col); ok {
		return c
	}
	return models.NewCell()
}

// inBounds reports whether (row, col) is inside the surface.
func inBounds(s Surface, row, col int) bool {
	return row >= 0 && col >= 0 && row < s.RowCount() && col < s.ColumnCount()
}
