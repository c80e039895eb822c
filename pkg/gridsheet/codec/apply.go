package codec

import (
	"strconv"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/style"
)

// ApplyReport counts what Apply had to leave out.
type ApplyReport struct {
	// SkippedRows counts data rows that fell below the last grid row.
	SkippedRows int
	// SkippedCells counts data cells that fell right of the last column.
	SkippedCells int
	// SkippedStyles counts style entries addressed outside the grid.
	SkippedStyles int
}

// HeaderRows returns the number of rows above the data: one for non-admin
// grids, zero for admin grids.
func HeaderRows(isAdmin bool) int {
	if isAdmin {
		return 0
	}
	return 1
}

// Apply rebuilds s from snap. Whatever s held before is discarded.
//
// The grid gets snap.Rows data rows plus the header row of non-admin
// views, and as many columns as the first data row (snap.Columns when
// there is no data). Every data cell is created; cells outside the data
// matrix exist only when a style entry addresses them. Style, span and
// row size records are in data coordinates and move below the header row
// together with the text.
func Apply(snap *models.Snapshot, s grid.Surface, isAdmin bool) ApplyReport {
	var report ApplyReport
	hr := HeaderRows(isAdmin)

	cols := snap.Columns
	if len(snap.Data) > 0 {
		cols = len(snap.Data[0])
	}
	cols = min(cols, MaxColumns)
	rows := min(snap.Rows, MaxRows)

	s.SetRowCount(0)
	s.SetColumnCount(0)
	s.SetRowCount(rows + hr)
	s.SetColumnCount(cols)

	for c := 0; c < cols; c++ {
		if c < len(snap.Headers) {
			s.SetHeader(c, snap.Headers[c])
		} else {
			s.SetHeader(c, strconv.Itoa(c+1))
		}
	}

	resolve := func(p models.Pos) models.CellStyle {
		st := style.Resolve(p, snap.Colors, snap.Fonts, snap.Alignments)
		st.Color = style.ColorOrDefault(st.Color)
		return st
	}

	for r, row := range snap.Data {
		gr := r + hr
		if gr >= s.RowCount() {
			report.SkippedRows++
			continue
		}
		for c, text := range row {
			if c >= cols {
				report.SkippedCells++
				continue
			}
			s.SetCell(gr, c, models.Cell{Text: text, Style: resolve(models.Pos{Row: r, Col: c})})
		}
	}

	styled := make(map[models.Pos]bool)
	for p := range snap.Colors {
		styled[p] = true
	}
	for p := range snap.Fonts {
		styled[p] = true
	}
	for p := range snap.Alignments {
		styled[p] = true
	}
	for p := range styled {
		gr := p.Row + hr
		if p.Row < 0 || p.Col < 0 || gr >= s.RowCount() || p.Col >= s.ColumnCount() {
			report.SkippedStyles++
			continue
		}
		c, ok := s.Cell(gr, p.Col)
		if !ok {
			c = models.Cell{}
		}
		c.Style = resolve(p)
		s.SetCell(gr, p.Col, c)
	}

	for row, h := range snap.RowHeights {
		if row >= 0 {
			s.SetRowHeight(row+hr, h)
		}
	}
	for col, w := range snap.ColWidths {
		s.SetColumnWidth(col, w)
	}
	for _, sp := range snap.Spans {
		if sp.Row >= 0 {
			s.SetSpan(sp.Row+hr, sp.Col, sp.RowSpan, sp.ColSpan)
		}
	}
	return report
}
