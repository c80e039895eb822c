package grid

import (
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// MergeCells merges the bounding rectangle of sel into one span anchored
// at its top-left cell.
//
// The first cell with non-blank text, scanning column by column, supplies
// the text, background and font; with none found the anchor is empty,
// white and default font. Every other cell in the rectangle is emptied
// and takes that background and font. Alignments are kept. Spans already
// inside the rectangle are not removed.
func MergeCells(s Surface, sel []models.Range) {
	b, ok := models.Bounds(sel)
	if !ok || (b.Rows() == 1 && b.Cols() == 1) {
		return
	}
	b.Top, b.Left = max(b.Top, 0), max(b.Left, 0)
	b.Bottom, b.Right = min(b.Bottom, s.RowCount()-1), min(b.Right, s.ColumnCount()-1)
	if b.Top > b.Bottom || b.Left > b.Right {
		return
	}

	text := ""
	color := models.DefaultColor
	font := models.DefaultStyle().Font
scan:
	for col := b.Left; col <= b.Right; col++ {
		for row := b.Top; row <= b.Bottom; row++ {
			if c, ok := s.Cell(row, col); ok && strings.TrimSpace(c.Text) != "" {
				text, color, font = c.Text, c.Style.Color, c.Style.Font
				break scan
			}
		}
	}

	for row := b.Top; row <= b.Bottom; row++ {
		for col := b.Left; col <= b.Right; col++ {
			c := cellOrNew(s, row, col)
			c.Text = ""
			if row == b.Top && col == b.Left {
				c.Text = text
			}
			c.Style.Color = color
			c.Style.Font = font
			s.SetCell(row, col, c)
		}
	}
	s.SetSpan(b.Top, b.Left, b.Rows(), b.Cols())
}

// UnmergeCells splits every span anchored inside each selected range.
//
// Each range is handled on its own: the top-left cell of the range
// supplies text, background and font; every cell of the range takes that
// background and font, and only the top-left cell keeps the text.
func UnmergeCells(s Surface, sel []models.Range) {
	for _, r := range sel {
		top, left := max(r.Top, 0), max(r.Left, 0)
		bottom, right := min(r.Bottom, s.RowCount()-1), min(r.Right, s.ColumnCount()-1)
		if top > bottom || left > right {
			continue
		}

		text := ""
		color := models.DefaultColor
		font := models.DefaultStyle().Font
		if c, ok := s.Cell(top, left); ok {
			text, color, font = c.Text, c.Style.Color, c.Style.Font
		}

		for row := top; row <= bottom; row++ {
			for col := left; col <= right; col++ {
				if rs, cs := s.Span(row, col); rs > 1 || cs > 1 {
					s.SetSpan(row, col, 1, 1)
				}
				c := cellOrNew(s, row, col)
				c.Style.Color = color
				c.Style.Font = font
				c.Text = ""
				if row == top && col == left {
					c.Text = text
				}
				s.SetCell(row, col, c)
			}
		}
	}
}
