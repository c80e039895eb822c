package models

// Range is a rectangular block of cells. All bounds are 0-based and
// inclusive.
type Range struct {
	// Top is the first row.
	Top int `json:"top"`
	// Left is the first column.
	Left int `json:"left"`
	// Bottom is the last row.
	Bottom int `json:"bottom"`
	// Right is the last column.
	Right int `json:"right"`
}

// NewRange returns the range spanning the two corners in any order.
func NewRange(r1, c1, r2, c2 int) Range {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	return Range{Top: r1, Left: c1, Bottom: r2, Right: c2}
}

// CellRange returns the 1×1 range at (row, col).
func CellRange(row, col int) Range {
	return Range{Top: row, Left: col, Bottom: row, Right: col}
}

// Rows returns the number of rows covered.
func (r Range) Rows() int { return r.Bottom - r.Top + 1 }

// Cols returns the number of columns covered.
func (r Range) Cols() int { return r.Right - r.Left + 1 }

// Contains reports whether (row, col) lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Right
}

// Bounds returns the bounding rectangle of the given ranges. ok is false
// when ranges is empty.
func Bounds(ranges []Range) (bounds Range, ok bool) {
	if len(ranges) == 0 {
		return Range{}, false
	}
	bounds = ranges[0]
	for _, r := range ranges[1:] {
		bounds.Top = min(bounds.Top, r.Top)
		bounds.Left = min(bounds.Left, r.Left)
		bounds.Bottom = max(bounds.Bottom, r.Bottom)
		bounds.Right = max(bounds.Right, r.Right)
	}
	return bounds, true
}

// Span is a merged rectangular region anchored at (Row, Col).
type Span struct {
	// Row is the anchor row.
	Row int `json:"row"`
	// Col is the anchor column.
	Col int `json:"column"`
	// RowSpan is the number of rows covered, at least 1.
	RowSpan int `json:"row_span"`
	// ColSpan is the number of columns covered, at least 1.
	ColSpan int `json:"column_span"`
}

// IsMerge reports whether the span covers more than one cell.
func (s Span) IsMerge() bool {
	return s.RowSpan > 1 || s.ColSpan > 1
}

// Range returns the cells covered by the span.
func (s Span) Range() Range {
	return Range{Top: s.Row, Left: s.Col, Bottom: s.Row + s.RowSpan - 1, Right: s.Col + s.ColSpan - 1}
}
