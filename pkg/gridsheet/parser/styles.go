package parser

import (
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/style"
)

var horizontalAlignments = map[string]models.Alignment{
	"left":             models.AlignLeft,
	"right":            models.AlignRight,
	"center":           models.AlignHCenter,
	"centerContinuous": models.AlignHCenter,
	"justify":          models.AlignJustify,
	"distributed":      models.AlignJustify,
	"fill":             models.AlignLeft,
	"general":          models.AlignHCenter,
	"":                 models.AlignHCenter,
}

var verticalAlignments = map[string]models.Alignment{
	"top":         models.AlignTop,
	"bottom":      models.AlignBottom,
	"center":      models.AlignVCenter,
	"justify":     models.AlignVCenter,
	"distributed": models.AlignVCenter,
	"":            models.AlignVCenter,
}

// CellStyleFromExcel converts a workbook style into a cell style. Parts the
// workbook leaves unset take the grid defaults.
func CellStyleFromExcel(s *excelize.Style) models.CellStyle {
	st := models.DefaultStyle()
	if s == nil {
		return st
	}
	if s.Fill.Type == "pattern" && s.Fill.Pattern == 1 && len(s.Fill.Color) > 0 {
		st.Color = style.ColorOrDefault(hexColor(s.Fill.Color[0]))
	}
	if s.Font != nil {
		st.Font.Bold = s.Font.Bold
		if s.Font.Size > 0 {
			st.Font.Size = int(math.Round(s.Font.Size))
		}
	}
	if s.Alignment != nil {
		h, ok := horizontalAlignments[s.Alignment.Horizontal]
		if !ok {
			h = models.AlignHCenter
		}
		v, ok := verticalAlignments[s.Alignment.Vertical]
		if !ok {
			v = models.AlignVCenter
		}
		st.Alignment = h | v
	}
	return st
}

// hexColor turns RRGGBB, AARRGGBB or #RRGGBB into #rrggbb.
func hexColor(c string) string {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	if len(c) == 8 {
		c = c[2:]
	}
	return "#" + c
}
