package output

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/style"
)

// RenderOptions adjusts RenderTable.
type RenderOptions struct {
	// Styled paints cell backgrounds, bold text and alignment.
	Styled bool
	// RowNumbers adds a leading column with 1-based row numbers.
	RowNumbers bool
}

// RenderTable draws s as a bordered terminal table with the column
// headers on top. Covered cells of a span render empty.
func RenderTable(s grid.Surface, opts RenderOptions) string {
	rows, cols := s.RowCount(), s.ColumnCount()
	offset := 0
	if opts.RowNumbers {
		offset = 1
	}

	headers := make([]string, 0, cols+offset)
	if opts.RowNumbers {
		headers = append(headers, "")
	}
	for c := 0; c < cols; c++ {
		headers = append(headers, s.Header(c))
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	plain := lipgloss.NewStyle().Padding(0, 1)
	numberStyle := lipgloss.NewStyle().Faint(true).Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if opts.RowNumbers && col == 0 {
				return numberStyle
			}
			if !opts.Styled {
				return plain
			}
			cell, ok := s.Cell(row, col-offset)
			if !ok {
				return plain
			}
			return cellStyle(cell.Style)
		})

	for r := 0; r < rows; r++ {
		line := make([]string, 0, cols+offset)
		if opts.RowNumbers {
			line = append(line, strconv.Itoa(r+1))
		}
		for c := 0; c < cols; c++ {
			cell, _ := s.Cell(r, c)
			line = append(line, cell.Text)
		}
		t.Row(line...)
	}
	return t.String()
}

func cellStyle(st models.CellStyle) lipgloss.Style {
	ls := lipgloss.NewStyle().Padding(0, 1).Bold(st.Font.Bold)
	if color := style.ColorOrDefault(st.Color); color != models.DefaultColor {
		ls = ls.Background(lipgloss.Color(color))
	}
	switch style.Horizontal(st.Alignment) {
	case models.AlignLeft:
		ls = ls.Align(lipgloss.Left)
	case models.AlignRight:
		ls = ls.Align(lipgloss.Right)
	default:
		ls = ls.Align(lipgloss.Center)
	}
	return ls
}
