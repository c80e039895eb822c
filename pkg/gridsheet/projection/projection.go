// Package projection derives filtered and sorted views of a grid.
//
// An Engine snapshots the data rows of a grid when it is created. Apply
// computes a Result from that snapshot, Result.Load writes it over the
// grid, and Restore puts the original layout back. Projected cells are
// styled by their text through a content-addressed style map, so two
// cells with the same text always look the same in a projection.
package projection

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/codec"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// SortKey is one registered sort.
type SortKey struct {
	Col       int
	Ascending bool
}

// layout is everything Restore needs to rebuild the grid.
type layout struct {
	Rows       int
	Columns    int
	Headers    []string
	Cells      map[models.Pos]models.Cell
	Spans      []models.Span
	RowHeights map[int]int
	ColWidths  map[int]int
}

// Engine holds the base rows of a grid plus the registered filters and
// sorts.
type Engine struct {
	headerRows int
	base       [][]string
	styles     map[string]models.CellStyle
	saved      layout

	filterOrder []int
	filters     map[int]map[string]bool
	sorts       []SortKey
}

// New snapshots the data rows of s. Non-admin grids start their data
// below the header row.
func New(s grid.Surface, isAdmin bool) (*Engine, error) {
	e := &Engine{
		headerRows: codec.HeaderRows(isAdmin),
		filters:    make(map[int]map[string]bool),
	}
	if err := e.Rebase(s); err != nil {
		return nil, err
	}
	return e, nil
}

// Rebase takes a fresh snapshot of s. Registered filters are dropped and
// sorts are kept.
func (e *Engine) Rebase(s grid.Surface) error {
	rows, cols := s.RowCount(), s.ColumnCount()
	saved := layout{
		Rows:       rows,
		Columns:    cols,
		Headers:    make([]string, cols),
		Cells:      make(map[models.Pos]models.Cell),
		RowHeights: make(map[int]int),
		ColWidths:  make(map[int]int),
	}
	for c := 0; c < cols; c++ {
		saved.Headers[c] = s.Header(c)
		if w, ok := s.ColumnWidth(c); ok {
			saved.ColWidths[c] = w
		}
	}

	var base [][]string
	styles := make(map[string]models.CellStyle)
	for r := 0; r < rows; r++ {
		if h, ok := s.RowHeight(r); ok {
			saved.RowHeights[r] = h
		}
		var line []string
		if r >= e.headerRows {
			line = make([]string, cols)
		}
		for c := 0; c < cols; c++ {
			if rs, cs := s.Span(r, c); rs > 1 || cs > 1 {
				saved.Spans = append(saved.Spans, models.Span{Row: r, Col: c, RowSpan: rs, ColSpan: cs})
			}
			cell, ok := s.Cell(r, c)
			if !ok {
				continue
			}
			saved.Cells[models.Pos{Row: r, Col: c}] = cell
			if line != nil {
				line[c] = cell.Text
				styles[cell.Text] = cell.Style
			}
		}
		if line != nil {
			base = append(base, line)
		}
	}

	var copied layout
	if err := deepcopy.Copy(&copied, &saved); err != nil {
		return fmt.Errorf("snapshot grid: %w", err)
	}
	e.base = base
	e.styles = styles
	e.saved = copied
	e.Reset()
	return nil
}

// SetFilter accepts only rows whose text in col is one of values. An
// empty values list removes the filter.
func (e *Engine) SetFilter(col int, values []string) {
	if len(values) == 0 {
		e.ClearFilter(col)
		return
	}
	if _, ok := e.filters[col]; !ok {
		e.filterOrder = append(e.filterOrder, col)
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	e.filters[col] = set
}

// ClearFilter removes the filter on col.
func (e *Engine) ClearFilter(col int) {
	if _, ok := e.filters[col]; !ok {
		return
	}
	delete(e.filters, col)
	e.filterOrder = slices.DeleteFunc(e.filterOrder, func(c int) bool { return c == col })
}

// SetSort registers a sort on col. A column registered earlier keeps its
// position and only changes direction.
func (e *Engine) SetSort(col int, ascending bool) {
	for i := range e.sorts {
		if e.sorts[i].Col == col {
			e.sorts[i].Ascending = ascending
			return
		}
	}
	e.sorts = append(e.sorts, SortKey{Col: col, Ascending: ascending})
}

// ClearSorts drops every registered sort.
func (e *Engine) ClearSorts() {
	e.sorts = nil
}

// Filters returns the accepted values of each filtered column, sorted.
func (e *Engine) Filters() map[int][]string {
	out := make(map[int][]string, len(e.filters))
	for col, set := range e.filters {
		out[col] = slices.Sorted(maps.Keys(set))
	}
	return out
}

// Sorts returns the registered sorts in registration order.
func (e *Engine) Sorts() []SortKey {
	return slices.Clone(e.sorts)
}

// Reset drops every filter. Sorts stay registered.
func (e *Engine) Reset() {
	e.filters = make(map[int]map[string]bool)
	e.filterOrder = nil
}

// ColumnValues returns the distinct non-empty texts of col in the base
// rows, sorted. These are the choices offered by a filter dialog.
func (e *Engine) ColumnValues(col int) []string {
	seen := make(map[string]bool)
	for _, row := range e.base {
		if v := textAt(row, col); v != "" {
			seen[v] = true
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// StyleOf returns the style projected cells with text get.
func (e *Engine) StyleOf(text string) models.CellStyle {
	if st, ok := e.styles[text]; ok {
		return st
	}
	return models.DefaultStyle()
}

// BaseRows returns a copy of the snapshotted data rows.
func (e *Engine) BaseRows() ([][]string, error) {
	var out [][]string
	if err := deepcopy.Copy(&out, &e.base); err != nil {
		return nil, fmt.Errorf("copy rows: %w", err)
	}
	return out, nil
}

// Apply filters the base rows, then applies each sort in registration
// order as a stable re-sort of the previous result.
func (e *Engine) Apply() (*Result, error) {
	rows, err := e.BaseRows()
	if err != nil {
		return nil, err
	}
	for _, col := range e.filterOrder {
		set := e.filters[col]
		rows = slices.DeleteFunc(rows, func(row []string) bool {
			return !set[textAt(row, col)]
		})
	}
	for _, key := range e.sorts {
		slices.SortStableFunc(rows, func(a, b []string) int {
			c := cmp.Compare(textAt(a, key.Col), textAt(b, key.Col))
			if !key.Ascending {
				c = -c
			}
			return c
		})
	}
	return &Result{Rows: rows, Columns: e.saved.Columns, engine: e}, nil
}

// Restore writes the layout captured by New or Rebase back to s.
func (e *Engine) Restore(s grid.Surface) {
	saved := e.saved
	s.SetRowCount(0)
	s.SetColumnCount(0)
	s.SetRowCount(saved.Rows)
	s.SetColumnCount(saved.Columns)
	for c, h := range saved.Headers {
		s.SetHeader(c, h)
	}
	for p, cell := range saved.Cells {
		s.SetCell(p.Row, p.Col, cell)
	}
	for r, h := range saved.RowHeights {
		s.SetRowHeight(r, h)
	}
	for c, w := range saved.ColWidths {
		s.SetColumnWidth(c, w)
	}
	for _, sp := range saved.Spans {
		s.SetSpan(sp.Row, sp.Col, sp.RowSpan, sp.ColSpan)
	}
}

// Result is a projected table.
type Result struct {
	Rows    [][]string
	Columns int
	engine  *Engine
}

// Load writes the projected rows into s below the header row, styling
// each cell by its text. Spans in the data area are removed and headers
// are renumbered.
func (r *Result) Load(s grid.Surface) {
	hr := r.engine.headerRows
	for row := hr; row < s.RowCount(); row++ {
		for col := 0; col < s.ColumnCount(); col++ {
			if rs, cs := s.Span(row, col); rs > 1 || cs > 1 {
				s.SetSpan(row, col, 1, 1)
			}
		}
	}
	s.SetRowCount(len(r.Rows) + hr)
	if s.ColumnCount() != r.Columns {
		s.SetColumnCount(r.Columns)
	}
	for i, line := range r.Rows {
		for col := 0; col < r.Columns; col++ {
			text := textAt(line, col)
			s.SetCell(i+hr, col, models.Cell{Text: text, Style: r.engine.StyleOf(text)})
		}
	}
	for col := 0; col < r.Columns; col++ {
		s.SetHeader(col, strconv.Itoa(col+1))
	}
}

func textAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
