package grid

import (
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// EditSession is an in-progress text edit of one cell. The cell style is
// captured when the session begins and reapplied on Commit.
type EditSession struct {
	s     Surface
	row   int
	col   int
	text  string
	style models.CellStyle
}

// BeginEdit opens an edit session on (row, col). A missing cell is created
// with the default style before the session starts, so any in-bounds
// position of an unlocked row can be edited, with or without a cell.
// Newlines in the current text are flattened to spaces.
func BeginEdit(s Surface, row, col int) (*EditSession, error) {
	if !inBounds(s, row, col) {
		return nil, ErrOutOfRange
	}
	if l, ok := s.(Locker); ok && l.RowLocked(row) {
		return nil, ErrLocked
	}
	c, ok := s.Cell(row, col)
	if !ok {
		c = models.NewCell()
		s.SetCell(row, col, c)
	}
	return &EditSession{
		s:     s,
		row:   row,
		col:   col,
		text:  strings.ReplaceAll(c.Text, "\n", " "),
		style: c.Style,
	}, nil
}

// Text returns the text shown in the editor.
func (e *EditSession) Text() string { return e.text }

// Style returns the captured style.
func (e *EditSession) Style() models.CellStyle { return e.style }

// Commit writes text into the cell together with the captured style.
func (e *EditSession) Commit(text string) {
	e.text = text
	e.s.SetCell(e.row, e.col, models.Cell{Text: text, Style: e.style})
}

// EditCellText begins an edit session on (row, col) and commits text.
func EditCellText(s Surface, row, col int, text string) error {
	sess, err := BeginEdit(s, row, col)
	if err != nil {
		return err
	}
	sess.Commit(text)
	return nil
}
