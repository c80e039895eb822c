package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

var (
	// ErrLocked is returned for user edits on a read-only grid or a locked
	// row.
	ErrLocked = errors.New("grid is locked")
	// ErrUnknownAction is returned by Dispatch for an unrecognised action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrOutOfRange is returned when a position lies outside the grid.
	ErrOutOfRange = errors.New("position out of range")
	// ErrInvalidParam is returned when an action is missing a required
	// parameter.
	ErrInvalidParam = errors.New("invalid parameter")
)

// Action names a context-menu entry.
type Action string

const (
	ActionClear       Action = "clear"
	ActionAddRowAbove Action = "add-row-above"
	ActionAddRowBelow Action = "add-row-below"
	ActionAddColLeft  Action = "add-col-left"
	ActionAddColRight Action = "add-col-right"
	ActionDeleteRow   Action = "delete-row"
	ActionDeleteCol   Action = "delete-col"
	ActionSetColor    Action = "set-color"
	ActionSetWidth    Action = "set-width"
	ActionSetHeight   Action = "set-height"
	ActionSetFontSize Action = "set-font-size"
	ActionToggleBold  Action = "toggle-bold"
	ActionAlignLeft   Action = "align-left"
	ActionAlignCenter Action = "align-center"
	ActionAlignRight  Action = "align-right"
	ActionMerge       Action = "merge"
	ActionUnmerge     Action = "unmerge"
)

// Actions lists every action in menu order.
var Actions = []Action{
	ActionClear,
	ActionAddRowAbove, ActionAddRowBelow, ActionAddColLeft, ActionAddColRight,
	ActionDeleteRow, ActionDeleteCol,
	ActionSetColor, ActionSetWidth, ActionSetHeight, ActionSetFontSize, ActionToggleBold,
	ActionAlignLeft, ActionAlignCenter, ActionAlignRight,
	ActionMerge, ActionUnmerge,
}

// Params carries the already-collected dialog values of an action.
type Params struct {
	// Color is the background for ActionSetColor.
	Color string
	// Size is the width, height or point size for the set-* actions.
	Size int
	// Count is the number of rows or columns to add. Zero means one.
	Count int
}

// Dispatch applies action to the surface's current selection.
//
// Edits are refused with ErrLocked when the surface implements Locker and
// any selected row is locked.
func Dispatch(s Surface, action Action, p Params) error {
	sel := s.SelectedRanges()
	if l, ok := s.(Locker); ok {
		for _, row := range SelectedRows(s, sel) {
			if l.RowLocked(row) {
				return fmt.Errorf("%s on row %d: %w", action, row, ErrLocked)
			}
		}
		if g, ok := s.(*Grid); ok && g.ReadOnly() {
			return fmt.Errorf("%s: %w", action, ErrLocked)
		}
	}

	count := p.Count
	if count == 0 {
		count = 1
	}
	needSize := func() error {
		if p.Size <= 0 {
			return fmt.Errorf("%s: size %d: %w", action, p.Size, ErrInvalidParam)
		}
		return nil
	}

	switch action {
	case ActionClear:
		ClearCells(s, sel)
	case ActionAddRowAbove:
		AddRows(s, count, Above, sel)
	case ActionAddRowBelow:
		AddRows(s, count, Below, sel)
	case ActionAddColLeft:
		AddColumns(s, count, Left, sel)
	case ActionAddColRight:
		AddColumns(s, count, Right, sel)
	case ActionDeleteRow:
		DeleteRows(s, sel)
	case ActionDeleteCol:
		DeleteColumns(s, sel)
	case ActionSetColor:
		if err := SetCellColor(s, sel, p.Color); err != nil {
			return fmt.Errorf("%s %q: %w", action, p.Color, err)
		}
	case ActionSetWidth:
		if err := needSize(); err != nil {
			return err
		}
		SetColumnWidth(s, SelectedColumns(s, sel), p.Size)
	case ActionSetHeight:
		if err := needSize(); err != nil {
			return err
		}
		SetRowHeight(s, SelectedRows(s, sel), p.Size)
	case ActionSetFontSize:
		if err := needSize(); err != nil {
			return err
		}
		SetFontSize(s, sel, p.Size)
	case ActionToggleBold:
		ToggleBold(s, sel)
	case ActionAlignLeft:
		AlignCells(s, sel, models.AlignLeft, models.AlignVCenter)
	case ActionAlignCenter:
		AlignCells(s, sel, models.AlignHCenter, models.AlignVCenter)
	case ActionAlignRight:
		AlignCells(s, sel, models.AlignRight, models.AlignVCenter)
	case ActionMerge:
		MergeCells(s, sel)
	case ActionUnmerge:
		UnmergeCells(s, sel)
	default:
		return fmt.Errorf("%q: %w", action, ErrUnknownAction)
	}
	return nil
}
