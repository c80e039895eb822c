package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/parser"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/style"
)

// DefaultSheetName names the sheet WriteXLSX creates when none is given.
const DefaultSheetName = "Sheet1"

// WriteXLSX renders s into a new workbook with one sheet. Texts that read
// back unchanged as numbers are written as numbers.
func WriteXLSX(s grid.Surface, sheet string) (*excelize.File, error) {
	if sheet == "" {
		sheet = DefaultSheetName
	}
	f := excelize.NewFile()
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := writeCells(f, s, sheet); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// SaveXLSX writes s to path.
func SaveXLSX(s grid.Surface, path, sheet string) error {
	f, err := WriteXLSX(s, sheet)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeCells(f *excelize.File, s grid.Surface, sheet string) error {
	styleIDs := make(map[models.CellStyle]int)

	for r := 0; r < s.RowCount(); r++ {
		for c := 0; c < s.ColumnCount(); c++ {
			cell, ok := s.Cell(r, c)
			if !ok {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if cell.Text != "" {
				if err := f.SetCellValue(sheet, name, cellValue(cell.Text)); err != nil {
					return fmt.Errorf("cell %s: %w", name, err)
				}
			}
			if cell.Style == models.DefaultStyle() {
				continue
			}
			id, ok := styleIDs[cell.Style]
			if !ok {
				id, err = f.NewStyle(excelStyle(cell.Style))
				if err != nil {
					return fmt.Errorf("style of %s: %w", name, err)
				}
				styleIDs[cell.Style] = id
			}
			if err := f.SetCellStyle(sheet, name, name, id); err != nil {
				return fmt.Errorf("style of %s: %w", name, err)
			}
		}
	}

	for r := 0; r < s.RowCount(); r++ {
		for c := 0; c < s.ColumnCount(); c++ {
			rs, cs := s.Span(r, c)
			if rs <= 1 && cs <= 1 {
				continue
			}
			start, _ := excelize.CoordinatesToCellName(c+1, r+1)
			end, _ := excelize.CoordinatesToCellName(c+cs, r+rs)
			if err := f.MergeCell(sheet, start, end); err != nil {
				return fmt.Errorf("merge %s:%s: %w", start, end, err)
			}
		}
	}

	for r := 0; r < s.RowCount(); r++ {
		if h, ok := s.RowHeight(r); ok {
			if err := f.SetRowHeight(sheet, r+1, parser.PixelsToPoints(h)); err != nil {
				return fmt.Errorf("height of row %d: %w", r+1, err)
			}
		}
	}
	for c := 0; c < s.ColumnCount(); c++ {
		if w, ok := s.ColumnWidth(c); ok {
			col, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(sheet, col, col, parser.PixelsToColumnChars(w)); err != nil {
				return fmt.Errorf("width of column %s: %w", col, err)
			}
		}
	}
	return nil
}

// cellValue returns a number when text parses as one and formats back to
// the same text, otherwise text.
func cellValue(text string) any {
	switch v := parser.ParseValue(text).(type) {
	case int64:
		if strconv.FormatInt(v, 10) == text {
			return v
		}
	case float64:
		if strconv.FormatFloat(v, 'f', -1, 64) == text {
			return v
		}
	}
	return text
}

func excelStyle(st models.CellStyle) *excelize.Style {
	xs := &excelize.Style{
		Font: &excelize.Font{Bold: st.Font.Bold, Size: float64(st.Font.Size)},
		Alignment: &excelize.Alignment{
			Horizontal: style.HorizontalName(st.Alignment),
			Vertical:   style.VerticalName(st.Alignment),
		},
	}
	if color := style.ColorOrDefault(st.Color); color != models.DefaultColor {
		xs.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.ToUpper(color)}}
	}
	return xs
}
