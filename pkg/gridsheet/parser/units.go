// Package parser reads xlsx workbooks into persisted grid documents and
// parses A1 cell references.
package parser

import "math"

// Spreadsheet size defaults.
const (
	// DefaultColumnChars is the width, in characters, of a column without
	// a custom width.
	DefaultColumnChars = 9.140625
	// DefaultRowPoints is the height, in points, of a row without a custom
	// height.
	DefaultRowPoints = 15.0

	// maxDigitWidth is the pixel width of one character of the default
	// font at 96 DPI.
	maxDigitWidth = 7
	// columnPadding is the cell margin, in pixels, added to every column.
	columnPadding = 5
)

// ColumnCharsToPixels converts a column width in characters to pixels.
func ColumnCharsToPixels(chars float64) int {
	return int(math.Round(chars*maxDigitWidth + columnPadding))
}

// PixelsToColumnChars converts a pixel width to characters.
func PixelsToColumnChars(px int) float64 {
	return max(float64(px-columnPadding)/maxDigitWidth, 0)
}

// PointsToPixels converts a row height in points to pixels at 96 DPI.
func PointsToPixels(pt float64) int {
	return int(math.Round(pt * 96 / 72))
}

// PixelsToPoints converts pixels at 96 DPI to points.
func PixelsToPoints(px int) float64 {
	return float64(px) * 72 / 96
}
