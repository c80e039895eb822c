package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrInvalidRange is returned for a malformed A1 reference.
var ErrInvalidRange = errors.New("invalid range")

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet
// name, as 0-based ranges.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Range {
	result := make(map[string][]models.Range)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}
	return result
}

// parsePrintAreaReference parses 'Sheet'!$A$1:$D$10[,...].
func parsePrintAreaReference(ref string) (string, []models.Range) {
	var sheetName string
	var areas []models.Range
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if r, err := ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, r)
		}
	}
	return sheetName, areas
}

// ParseRange parses an A1 reference such as "B2" or "$A$1:$D$10" into a
// 0-based range.
func ParseRange(ref string) (models.Range, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) > 2 || parts[0] == "" {
		return models.Range{}, fmt.Errorf("%q: %w", ref, ErrInvalidRange)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Range{}, fmt.Errorf("%q: %w", ref, ErrInvalidRange)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Range{}, fmt.Errorf("%q: %w", ref, ErrInvalidRange)
	}
	return models.NewRange(startRow-1, startCol-1, endRow-1, endCol-1), nil
}

// ParseRanges parses a comma-separated list of A1 references.
func ParseRanges(refs string) ([]models.Range, error) {
	var out []models.Range
	for _, ref := range strings.Split(refs, ",") {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		r, err := ParseRange(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// FormatRange renders a 0-based range as an A1 reference.
func FormatRange(r models.Range) string {
	start, _ := excelize.CoordinatesToCellName(r.Left+1, r.Top+1)
	if r.Rows() == 1 && r.Cols() == 1 {
		return start
	}
	end, _ := excelize.CoordinatesToCellName(r.Right+1, r.Bottom+1)
	return start + ":" + end
}
