package grid

import (
	"strconv"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Grid is an in-memory Surface. Cells, spans and size overrides are stored
// sparsely. A Grid is owned by one view and is not safe for concurrent use.
type Grid struct {
	rows       int
	cols       int
	cells      map[models.Pos]models.Cell
	spans      map[models.Pos]models.Span
	rowHeights map[int]int
	colWidths  map[int]int
	headers    map[int]string
	selection  []models.Range
	locked     map[int]bool
	readOnly   bool
}

var _ Surface = (*Grid)(nil)
var _ Locker = (*Grid)(nil)

// New returns an empty rows × cols grid with no cells.
func New(rows, cols int) *Grid {
	return &Grid{
		rows:       max(rows, 0),
		cols:       max(cols, 0),
		cells:      make(map[models.Pos]models.Cell),
		spans:      make(map[models.Pos]models.Span),
		rowHeights: make(map[int]int),
		colWidths:  make(map[int]int),
		headers:    make(map[int]string),
		locked:     make(map[int]bool),
	}
}

// RowCount returns the number of rows.
func (g *Grid) RowCount() int { return g.rows }

// ColumnCount returns the number of columns.
func (g *Grid) ColumnCount() int { return g.cols }

// SetRowCount grows or truncates the grid. Truncation drops cells, spans,
// heights and locks beyond the new size.
func (g *Grid) SetRowCount(n int) {
	n = max(n, 0)
	if n < g.rows {
		g.remove(rowAxis, n, g.rows-n)
		return
	}
	g.rows = n
}

// SetColumnCount grows or truncates the grid.
func (g *Grid) SetColumnCount(n int) {
	n = max(n, 0)
	if n < g.cols {
		g.remove(colAxis, n, g.cols-n)
		return
	}
	g.cols = n
}

// InsertRows inserts n empty rows before row at.
func (g *Grid) InsertRows(at, n int) { g.insert(rowAxis, at, n) }

// RemoveRows removes n rows starting at row at.
func (g *Grid) RemoveRows(at, n int) { g.remove(rowAxis, at, n) }

// InsertColumns inserts n empty columns before column at.
func (g *Grid) InsertColumns(at, n int) { g.insert(colAxis, at, n) }

// RemoveColumns removes n columns starting at column at.
func (g *Grid) RemoveColumns(at, n int) { g.remove(colAxis, at, n) }

// Cell returns the cell at (row, col). ok is false when no cell exists.
func (g *Grid) Cell(row, col int) (models.Cell, bool) {
	c, ok := g.cells[models.Pos{Row: row, Col: col}]
	return c, ok
}

// SetCell stores cell at (row, col). Out-of-range positions are ignored.
func (g *Grid) SetCell(row, col int, cell models.Cell) {
	if !inBounds(g, row, col) {
		return
	}
	g.cells[models.Pos{Row: row, Col: col}] = cell
}

// Span returns the span anchored at (row, col), 1×1 when there is none.
func (g *Grid) Span(row, col int) (int, int) {
	if sp, ok := g.spans[models.Pos{Row: row, Col: col}]; ok {
		return sp.RowSpan, sp.ColSpan
	}
	return 1, 1
}

// SetSpan anchors a span at (row, col). A 1×1 span removes the anchor.
func (g *Grid) SetSpan(row, col, rowSpan, colSpan int) {
	if !inBounds(g, row, col) {
		return
	}
	pos := models.Pos{Row: row, Col: col}
	if rowSpan <= 1 && colSpan <= 1 {
		delete(g.spans, pos)
		return
	}
	g.spans[pos] = models.Span{Row: row, Col: col, RowSpan: max(rowSpan, 1), ColSpan: max(colSpan, 1)}
}

// Spans returns every span anchored in the grid in row-major order.
func (g *Grid) Spans() []models.Span {
	out := make([]models.Span, 0, len(g.spans))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if sp, ok := g.spans[models.Pos{Row: r, Col: c}]; ok {
				out = append(out, sp)
			}
		}
	}
	return out
}

// RowHeight returns the height override of row.
func (g *Grid) RowHeight(row int) (int, bool) {
	h, ok := g.rowHeights[row]
	return h, ok
}

// SetRowHeight overrides the height of row.
func (g *Grid) SetRowHeight(row, height int) {
	if row < 0 || row >= g.rows {
		return
	}
	g.rowHeights[row] = height
}

// ColumnWidth returns the width override of col.
func (g *Grid) ColumnWidth(col int) (int, bool) {
	w, ok := g.colWidths[col]
	return w, ok
}

// SetColumnWidth overrides the width of col.
func (g *Grid) SetColumnWidth(col, width int) {
	if col < 0 || col >= g.cols {
		return
	}
	g.colWidths[col] = width
}

// Header returns the label of col, or its 1-based number when unset.
func (g *Grid) Header(col int) string {
	if h, ok := g.headers[col]; ok {
		return h
	}
	return strconv.Itoa(col + 1)
}

// SetHeader labels col.
func (g *Grid) SetHeader(col int, label string) {
	if col < 0 || col >= g.cols {
		return
	}
	g.headers[col] = label
}

// Headers returns every column label.
func (g *Grid) Headers() []string {
	out := make([]string, g.cols)
	for c := range out {
		out[c] = g.Header(c)
	}
	return out
}

// Select replaces the current selection.
func (g *Grid) Select(ranges ...models.Range) {
	g.selection = append([]models.Range(nil), ranges...)
}

// SelectedRanges returns the current selection.
func (g *Grid) SelectedRanges() []models.Range {
	return append([]models.Range(nil), g.selection...)
}

// LockRows refuses user edits on the given rows.
func (g *Grid) LockRows(rows ...int) {
	for _, r := range rows {
		g.locked[r] = true
	}
}

// SetReadOnly locks or unlocks every row.
func (g *Grid) SetReadOnly(readOnly bool) { g.readOnly = readOnly }

// ReadOnly reports whether the whole grid refuses user edits.
func (g *Grid) ReadOnly() bool { return g.readOnly }

// RowLocked reports whether user edits to row are refused.
func (g *Grid) RowLocked(row int) bool {
	return g.readOnly || g.locked[row]
}

// Text returns the text at (row, col), empty when no cell exists.
func (g *Grid) Text(row, col int) string {
	return g.cells[models.Pos{Row: row, Col: col}].Text
}
