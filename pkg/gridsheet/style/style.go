// Package style resolves cell styles from sparse per-position sources.
package style

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"golang.org/x/image/colornames"
)

// Resolve returns the style of the cell at pos. An explicit entry in one
// of the maps wins over the structural default; a font entry replaces bold
// and size together. Colors are expected to be normalized already.
func Resolve(pos models.Pos, colors map[models.Pos]string, fonts map[models.Pos]models.Font, alignments map[models.Pos]models.Alignment) models.CellStyle {
	st := models.DefaultStyle()
	if c, ok := colors[pos]; ok {
		st.Color = c
	}
	if f, ok := fonts[pos]; ok {
		st.Font = f
	}
	if a, ok := alignments[pos]; ok {
		st.Alignment = a
	}
	return st
}

// NormalizeColor converts #rgb, #rrggbb and SVG color names into lowercase
// #rrggbb. ok is false for anything else.
func NormalizeColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if strings.HasPrefix(s, "#") {
		hex := strings.ToLower(s[1:])
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdef", r) {
				return "", false
			}
		}
		switch len(hex) {
		case 3:
			return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
		case 6:
			return "#" + hex, true
		}
		return "", false
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}

// ColorOrDefault normalizes s, falling back to white for invalid input.
func ColorOrDefault(s string) string {
	if c, ok := NormalizeColor(s); ok {
		return c
	}
	return models.DefaultColor
}

// IsWhite reports whether s resolves to the canonical white background.
func IsWhite(s string) bool {
	c, ok := NormalizeColor(s)
	return ok && c == models.DefaultColor
}
