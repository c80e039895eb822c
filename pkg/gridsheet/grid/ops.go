package grid

import (
	"errors"
	"slices"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/style"
)

// Input bounds offered by the size dialogs. Operations accept any positive
// value; callers that collect user input clamp to these.
const (
	MinRowHeight     = 10
	MaxRowHeight     = 500
	DefaultRowHeight = 30

	MinColumnWidth     = 10
	MaxColumnWidth     = 500
	DefaultColumnWidth = 100

	MinFontSize = 1
	MaxFontSize = 100
)

// ErrInvalidColor is returned by SetCellColor for an unparseable color.
var ErrInvalidColor = errors.New("invalid color")

// Position chooses where AddRows and AddColumns insert relative to the
// selection.
type Position int

const (
	// Before inserts above the first selected row or left of the first
	// selected column.
	Before Position = iota
	// After inserts below the last selected row or right of the last
	// selected column.
	After
)

// Above and Below name Before and After for rows.
const (
	Above = Before
	Below = After
)

// Left and Right name Before and After for columns.
const (
	Left  = Before
	Right = After
)

// cellsIn returns every in-bounds position covered by sel, without
// duplicates, in selection order.
func cellsIn(s Surface, sel []models.Range) []models.Pos {
	seen := make(map[models.Pos]bool)
	var out []models.Pos
	for _, r := range sel {
		for row := max(r.Top, 0); row <= min(r.Bottom, s.RowCount()-1); row++ {
			for col := max(r.Left, 0); col <= min(r.Right, s.ColumnCount()-1); col++ {
				p := models.Pos{Row: row, Col: col}
				if seen[p] {
					continue
				}
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// SelectedRows returns the sorted distinct in-bounds rows touched by sel.
func SelectedRows(s Surface, sel []models.Range) []int {
	var rows []int
	for _, p := range cellsIn(s, sel) {
		rows = append(rows, p.Row)
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

// SelectedColumns returns the sorted distinct in-bounds columns touched by
// sel.
func SelectedColumns(s Surface, sel []models.Range) []int {
	var cols []int
	for _, p := range cellsIn(s, sel) {
		cols = append(cols, p.Col)
	}
	slices.Sort(cols)
	return slices.Compact(cols)
}

// updateCells applies fn to every selected cell, creating absent cells
// with the default style first.
func updateCells(s Surface, sel []models.Range, fn func(c *models.Cell)) {
	for _, p := range cellsIn(s, sel) {
		c := cellOrNew(s, p.Row, p.Col)
		fn(&c)
		s.SetCell(p.Row, p.Col, c)
	}
}

// ClearCells empties the text of every existing selected cell. Styles are
// kept.
func ClearCells(s Surface, sel []models.Range) {
	for _, p := range cellsIn(s, sel) {
		if c, ok := s.Cell(p.Row, p.Col); ok {
			c.Text = ""
			s.SetCell(p.Row, p.Col, c)
		}
	}
}

// AddRows inserts count rows above the first or below the last selected
// row and fills them with default cells. With no selection the rows are
// appended at the bottom.
func AddRows(s Surface, count int, pos Position, sel []models.Range) {
	if count <= 0 {
		return
	}
	at := s.RowCount()
	if b, ok := models.Bounds(sel); ok {
		at = b.Top
		if pos == After {
			at = b.Bottom + 1
		}
		at = min(max(at, 0), s.RowCount())
	}
	s.InsertRows(at, count)
	for row := at; row < at+count; row++ {
		for col := 0; col < s.ColumnCount(); col++ {
			s.SetCell(row, col, models.NewCell())
		}
	}
}

// AddColumns inserts count columns left of the first or right of the last
// selected column and fills them with default cells. With no selection the
// columns are appended on the right.
func AddColumns(s Surface, count int, pos Position, sel []models.Range) {
	if count <= 0 {
		return
	}
	at := s.ColumnCount()
	if b, ok := models.Bounds(sel); ok {
		at = b.Left
		if pos == After {
			at = b.Right + 1
		}
		at = min(max(at, 0), s.ColumnCount())
	}
	s.InsertColumns(at, count)
	for col := at; col < at+count; col++ {
		for row := 0; row < s.RowCount(); row++ {
			s.SetCell(row, col, models.NewCell())
		}
	}
}

// DeleteRows removes every row touched by sel.
func DeleteRows(s Surface, sel []models.Range) {
	rows := SelectedRows(s, sel)
	for i := len(rows) - 1; i >= 0; i-- {
		s.RemoveRows(rows[i], 1)
	}
}

// DeleteColumns removes every column touched by sel.
func DeleteColumns(s Surface, sel []models.Range) {
	cols := SelectedColumns(s, sel)
	for i := len(cols) - 1; i >= 0; i-- {
		s.RemoveColumns(cols[i], 1)
	}
}

// AlignCells sets the alignment of every selected cell to the combination
// of the horizontal and vertical flags.
func AlignCells(s Surface, sel []models.Range, horizontal, vertical models.Alignment) {
	a := style.Combine(horizontal, vertical)
	updateCells(s, sel, func(c *models.Cell) { c.Style.Alignment = a })
}

// SetCellColor sets the background of every selected cell.
func SetCellColor(s Surface, sel []models.Range, color string) error {
	normalized, ok := style.NormalizeColor(color)
	if !ok {
		return ErrInvalidColor
	}
	updateCells(s, sel, func(c *models.Cell) { c.Style.Color = normalized })
	return nil
}

// SetFontSize sets the point size of every selected cell. Non-positive
// sizes are ignored.
func SetFontSize(s Surface, sel []models.Range, size int) {
	if size <= 0 {
		return
	}
	updateCells(s, sel, func(c *models.Cell) { c.Style.Font.Size = size })
}

// ToggleBold flips the bold flag of each selected cell independently.
func ToggleBold(s Surface, sel []models.Range) {
	updateCells(s, sel, func(c *models.Cell) { c.Style.Font.Bold = !c.Style.Font.Bold })
}

// SetRowHeight overrides the height of the given rows. Non-positive
// heights are ignored.
func SetRowHeight(s Surface, rows []int, height int) {
	if height <= 0 {
		return
	}
	for _, r := range rows {
		s.SetRowHeight(r, height)
	}
}

// SetColumnWidth overrides the width of the given columns. Non-positive
// widths are ignored.
func SetColumnWidth(s Surface, cols []int, width int) {
	if width <= 0 {
		return
	}
	for _, c := range cols {
		s.SetColumnWidth(c, width)
	}
}
