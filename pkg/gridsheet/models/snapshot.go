package models

// Snapshot is a decoded document: the text matrix plus sparse style maps,
// ready to be applied to a grid surface.
type Snapshot struct {
	// Rows is the data-row count.
	Rows int
	// Columns is the column count as stored.
	Columns int
	// Headers holds the column labels.
	Headers []string
	// Data is the text matrix. Its shape may disagree with Rows/Columns.
	Data [][]string
	// Spans lists merged regions with RowSpan>1 or ColSpan>1.
	Spans []Span
	// Colors maps positions to backgrounds.
	Colors map[Pos]string
	// Fonts maps positions to fonts.
	Fonts map[Pos]Font
	// Alignments maps positions to alignments.
	Alignments map[Pos]Alignment
	// RowHeights maps rows to heights.
	RowHeights map[int]int
	// ColWidths maps columns to widths.
	ColWidths map[int]int
}

// EmptyMatrix returns a rows × cols matrix of empty strings.
func EmptyMatrix(rows, cols int) [][]string {
	m := make([][]string, rows)
	for i := range m {
		m[i] = make([]string, cols)
	}
	return m
}

// DefaultSnapshot returns the blank grid described by cfg.
func DefaultSnapshot(cfg Config) *Snapshot {
	return &Snapshot{
		Rows:       cfg.DefaultRows,
		Columns:    cfg.DefaultColumns,
		Headers:    cfg.Headers(cfg.DefaultColumns),
		Data:       EmptyMatrix(cfg.DefaultRows, cfg.DefaultColumns),
		Colors:     map[Pos]string{},
		Fonts:      map[Pos]Font{},
		Alignments: map[Pos]Alignment{},
		RowHeights: map[int]int{},
		ColWidths:  map[int]int{},
	}
}
