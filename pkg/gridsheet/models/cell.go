// Package models defines the data structures shared by the grid, codec and
// projection packages.
package models

// Alignment is a set of text alignment flags. The values match the flag
// integers stored by the desktop editor so documents stay compatible.
type Alignment int

const (
	// AlignLeft aligns text with the left edge.
	AlignLeft Alignment = 0x0001
	// AlignRight aligns text with the right edge.
	AlignRight Alignment = 0x0002
	// AlignHCenter centers text horizontally.
	AlignHCenter Alignment = 0x0004
	// AlignJustify justifies text.
	AlignJustify Alignment = 0x0008
	// AlignTop aligns text with the top edge.
	AlignTop Alignment = 0x0020
	// AlignBottom aligns text with the bottom edge.
	AlignBottom Alignment = 0x0040
	// AlignVCenter centers text vertically.
	AlignVCenter Alignment = 0x0080
	// AlignCenter centers text in both dimensions.
	AlignCenter = AlignHCenter | AlignVCenter

	// HorizontalMask selects the horizontal flags.
	HorizontalMask = AlignLeft | AlignRight | AlignHCenter | AlignJustify
	// VerticalMask selects the vertical flags.
	VerticalMask = AlignTop | AlignBottom | AlignVCenter
)

// Default style values.
const (
	// DefaultColor is the canonical background. Cells with this color are
	// never persisted in the colors list.
	DefaultColor = "#ffffff"
	// DefaultFontSize is the point size of cells without a font entry.
	DefaultFontSize = 10
	// DefaultAlignment is the alignment of cells without an alignment entry.
	DefaultAlignment = AlignCenter
)

// Font is the font of a cell. A font entry always carries both fields.
type Font struct {
	// Bold is true if the text is bold.
	Bold bool `json:"bold"`
	// Size is the point size.
	Size int `json:"size"`
}

// CellStyle is the resolved visual style of a cell.
type CellStyle struct {
	// Color is the background as lowercase #rrggbb.
	Color string `json:"color"`
	// Font is the cell font.
	Font Font `json:"font"`
	// Alignment is the text alignment flag set.
	Alignment Alignment `json:"alignment"`
}

// DefaultStyle returns the structural default: white, size 10, not bold,
// centered.
func DefaultStyle() CellStyle {
	return CellStyle{
		Color:     DefaultColor,
		Font:      Font{Size: DefaultFontSize},
		Alignment: DefaultAlignment,
	}
}

// Cell is the content of one grid position. Identity is positional.
type Cell struct {
	// Text is the visible text.
	Text string `json:"text"`
	// Style is the cell style.
	Style CellStyle `json:"style"`
}

// NewCell returns an empty cell with the default style.
func NewCell() Cell {
	return Cell{Style: DefaultStyle()}
}

// Pos addresses a cell by 0-based row and column.
type Pos struct {
	Row int
	Col int
}
