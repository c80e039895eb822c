package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ReadCells returns the formatted text of every cell of a sheet as a
// rectangular matrix. Short rows are padded with empty strings.
func ReadCells(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	result := make([][]string, len(rows))
	for i, row := range rows {
		result[i] = make([]string, width)
		copy(result[i], row)
	}
	return result, nil
}

// ParseValue attempts to parse a cell text as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
