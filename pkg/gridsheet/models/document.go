package models

// Document is the persisted form of one grid. Exactly one Document exists
// per collection and every write replaces it.
//
// Scalar fields are pointers and list records carry pointer keys so that a
// decoder can tell an absent key from a zero value.
type Document struct {
	// Rows is the data-row count (the non-admin header row is excluded).
	Rows *int `json:"rows"`
	// Columns is the column count.
	Columns *int `json:"columns"`
	// Headers holds one label per column.
	Headers []string `json:"headers"`
	// Data is the text matrix, row-major.
	Data [][]string `json:"data"`
	// Spans lists merged regions.
	Spans []SpanRecord `json:"spans"`
	// Colors lists non-white backgrounds.
	Colors []ColorRecord `json:"colors"`
	// Fonts lists the font of every present cell.
	Fonts []FontRecord `json:"fonts"`
	// Alignments lists the alignment of every present cell.
	Alignments []AlignmentRecord `json:"alignments"`
	// RowHeights lists customized row heights.
	RowHeights []RowHeightRecord `json:"row_heights"`
	// ColWidths lists customized column widths.
	ColWidths []ColWidthRecord `json:"col_widths"`
}

// SpanRecord is one entry of Document.Spans.
type SpanRecord struct {
	Row        *int `json:"row,omitempty"`
	Column     *int `json:"column,omitempty"`
	RowSpan    *int `json:"row_span,omitempty"`
	ColumnSpan *int `json:"column_span,omitempty"`
}

// ColorRecord is one entry of Document.Colors.
type ColorRecord struct {
	Row    *int   `json:"row,omitempty"`
	Column *int   `json:"column,omitempty"`
	Color  string `json:"color"`
}

// FontRecord is one entry of Document.Fonts.
type FontRecord struct {
	Row    *int  `json:"row,omitempty"`
	Column *int  `json:"column,omitempty"`
	Bold   *bool `json:"bold,omitempty"`
	Size   *int  `json:"size,omitempty"`
}

// AlignmentRecord is one entry of Document.Alignments.
type AlignmentRecord struct {
	Row       *int       `json:"row,omitempty"`
	Column    *int       `json:"column,omitempty"`
	Alignment *Alignment `json:"alignment,omitempty"`
}

// RowHeightRecord is one entry of Document.RowHeights.
type RowHeightRecord struct {
	Row    *int `json:"row,omitempty"`
	Height *int `json:"height,omitempty"`
}

// ColWidthRecord is one entry of Document.ColWidths.
type ColWidthRecord struct {
	Col   *int `json:"col,omitempty"`
	Width *int `json:"width,omitempty"`
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// AlignmentPtr returns a pointer to a.
func AlignmentPtr(a Alignment) *Alignment { return &a }
