package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrSheetNotFound is returned when the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadOptions configures ReadSheet.
type ReadOptions struct {
	// Sheet names the sheet to read. Empty means the first sheet.
	Sheet string
	// UsePrintArea limits the import to the sheet's first print area.
	UsePrintArea bool
}

// ReadSheet converts one sheet into a persisted document. The document
// starts at A1 (or at the print area origin) and extends to the last
// non-empty or merged cell.
func ReadSheet(f *excelize.File, opts ReadOptions) (*models.Document, error) {
	sheet := opts.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrSheetNotFound
		}
		sheet = list[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%q: %w", sheet, ErrSheetNotFound)
	}

	cells, err := ReadCells(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("read cells: %w", err)
	}
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("read merged cells: %w", err)
	}

	var spans []models.Span
	area := models.Range{Top: 0, Left: 0, Bottom: -1, Right: -1}
	if used, ok := UsedRange(cells); ok {
		area.Bottom, area.Right = used.Bottom, used.Right
	}
	for _, m := range merges {
		r, err := ParseRange(m.GetStartAxis() + ":" + m.GetEndAxis())
		if err != nil {
			continue
		}
		spans = append(spans, models.Span{Row: r.Top, Col: r.Left, RowSpan: r.Rows(), ColSpan: r.Cols()})
		area.Bottom = max(area.Bottom, r.Bottom)
		area.Right = max(area.Right, r.Right)
	}
	if opts.UsePrintArea {
		if areas := ExtractPrintAreas(f)[sheet]; len(areas) > 0 {
			area = areas[0]
		}
	}

	rows, cols := area.Rows(), area.Cols()
	doc := &models.Document{
		Rows:       models.Int(rows),
		Columns:    models.Int(cols),
		Headers:    models.NumberedHeaders(cols),
		Data:       models.EmptyMatrix(rows, cols),
		Spans:      []models.SpanRecord{},
		Colors:     []models.ColorRecord{},
		Fonts:      []models.FontRecord{},
		Alignments: []models.AlignmentRecord{},
		RowHeights: []models.RowHeightRecord{},
		ColWidths:  []models.ColWidthRecord{},
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sr, sc := area.Top+r, area.Left+c
			if sr < len(cells) && sc < len(cells[sr]) {
				doc.Data[r][c] = cells[sr][sc]
			}

			cellName, err := excelize.CoordinatesToCellName(sc+1, sr+1)
			if err != nil {
				return nil, err
			}
			idx, err := f.GetCellStyle(sheet, cellName)
			if err != nil || idx == 0 {
				continue
			}
			xs, err := f.GetStyle(idx)
			if err != nil {
				continue
			}
			st := CellStyleFromExcel(xs)
			row, col := models.Int(r), models.Int(c)
			if st.Color != models.DefaultColor {
				doc.Colors = append(doc.Colors, models.ColorRecord{Row: row, Column: col, Color: st.Color})
			}
			doc.Fonts = append(doc.Fonts, models.FontRecord{Row: row, Column: col, Bold: models.Bool(st.Font.Bold), Size: models.Int(st.Font.Size)})
			doc.Alignments = append(doc.Alignments, models.AlignmentRecord{Row: row, Column: col, Alignment: models.AlignmentPtr(st.Alignment)})
		}
	}

	for _, sp := range spans {
		r := sp.Range()
		if r.Top < area.Top || r.Left < area.Left || r.Bottom > area.Bottom || r.Right > area.Right {
			continue
		}
		doc.Spans = append(doc.Spans, models.SpanRecord{
			Row:        models.Int(sp.Row - area.Top),
			Column:     models.Int(sp.Col - area.Left),
			RowSpan:    models.Int(sp.RowSpan),
			ColumnSpan: models.Int(sp.ColSpan),
		})
	}

	for r := 0; r < rows; r++ {
		h, err := f.GetRowHeight(sheet, area.Top+r+1)
		if err != nil || h == DefaultRowPoints {
			continue
		}
		doc.RowHeights = append(doc.RowHeights, models.RowHeightRecord{Row: models.Int(r), Height: models.Int(PointsToPixels(h))})
	}
	for c := 0; c < cols; c++ {
		name, err := excelize.ColumnNumberToName(area.Left + c + 1)
		if err != nil {
			return nil, err
		}
		w, err := f.GetColWidth(sheet, name)
		if err != nil || w == DefaultColumnChars {
			continue
		}
		doc.ColWidths = append(doc.ColWidths, models.ColWidthRecord{Col: models.Int(c), Width: models.Int(ColumnCharsToPixels(w))})
	}

	return doc, nil
}

// ReadFile opens path and reads one sheet.
func ReadFile(path string, opts ReadOptions) (*models.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSheet(f, opts)
}
