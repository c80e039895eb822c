package parser

import "github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"

// UsedRange returns the bounding box of the non-empty cells of rows. ok is
// false when every cell is empty.
func UsedRange(rows [][]string) (models.Range, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Range{}, false
	}
	return models.Range{Top: minRow, Left: minCol, Bottom: maxRow, Right: maxCol}, true
}

// CountNonEmpty counts the non-empty cells of rows inside r.
func CountNonEmpty(rows [][]string, r models.Range) int {
	return countNonEmptyCells(rows, r.Top, r.Bottom, r.Left, r.Right)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := max(minRow, 0); rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := max(minCol, 0); colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
