package codec

import (
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/style"
)

// Encode reads s into a document. Non-admin documents exclude the header
// row from rows, data and every record, and number rows from the first
// data row. Colors are written only for non-white
// backgrounds; fonts and alignments for every present cell.
func Encode(s grid.Surface, isAdmin bool) *models.Document {
	hr := HeaderRows(isAdmin)
	rows, cols := s.RowCount(), s.ColumnCount()

	doc := &models.Document{
		Rows:       models.Int(max(rows-hr, 0)),
		Columns:    models.Int(cols),
		Headers:    make([]string, cols),
		Data:       make([][]string, 0, max(rows-hr, 0)),
		Spans:      []models.SpanRecord{},
		Colors:     []models.ColorRecord{},
		Fonts:      []models.FontRecord{},
		Alignments: []models.AlignmentRecord{},
		RowHeights: []models.RowHeightRecord{},
		ColWidths:  []models.ColWidthRecord{},
	}
	for c := range doc.Headers {
		doc.Headers[c] = s.Header(c)
	}

	for r := hr; r < rows; r++ {
		line := make([]string, cols)
		for c := range line {
			if cell, ok := s.Cell(r, c); ok {
				line[c] = cell.Text
			}
		}
		doc.Data = append(doc.Data, line)
	}

	for r := hr; r < rows; r++ {
		dr := r - hr
		for c := 0; c < cols; c++ {
			if rs, cs := s.Span(r, c); rs > 1 || cs > 1 {
				doc.Spans = append(doc.Spans, models.SpanRecord{
					Row: models.Int(dr), Column: models.Int(c), RowSpan: models.Int(rs), ColumnSpan: models.Int(cs),
				})
			}
			cell, ok := s.Cell(r, c)
			if !ok {
				continue
			}
			if color := style.ColorOrDefault(cell.Style.Color); color != models.DefaultColor {
				doc.Colors = append(doc.Colors, models.ColorRecord{Row: models.Int(dr), Column: models.Int(c), Color: color})
			}
			doc.Fonts = append(doc.Fonts, models.FontRecord{
				Row: models.Int(dr), Column: models.Int(c),
				Bold: models.Bool(cell.Style.Font.Bold), Size: models.Int(cell.Style.Font.Size),
			})
			doc.Alignments = append(doc.Alignments, models.AlignmentRecord{
				Row: models.Int(dr), Column: models.Int(c), Alignment: models.AlignmentPtr(cell.Style.Alignment),
			})
		}
	}

	for r := hr; r < rows; r++ {
		if h, ok := s.RowHeight(r); ok {
			doc.RowHeights = append(doc.RowHeights, models.RowHeightRecord{Row: models.Int(r - hr), Height: models.Int(h)})
		}
	}
	for c := 0; c < cols; c++ {
		if w, ok := s.ColumnWidth(c); ok {
			doc.ColWidths = append(doc.ColWidths, models.ColWidthRecord{Col: models.Int(c), Width: models.Int(w)})
		}
	}
	return doc
}
