package style

import "github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"

// Horizontal returns the horizontal flags of a.
func Horizontal(a models.Alignment) models.Alignment {
	return a & models.HorizontalMask
}

// Vertical returns the vertical flags of a.
func Vertical(a models.Alignment) models.Alignment {
	return a & models.VerticalMask
}

// Combine joins a horizontal and a vertical flag into one alignment.
func Combine(horizontal, vertical models.Alignment) models.Alignment {
	return Horizontal(horizontal) | Vertical(vertical)
}

// HorizontalName returns "left", "center", "right", "justify" or "" for a.
func HorizontalName(a models.Alignment) string {
	switch Horizontal(a) {
	case models.AlignLeft:
		return "left"
	case models.AlignHCenter:
		return "center"
	case models.AlignRight:
		return "right"
	case models.AlignJustify:
		return "justify"
	}
	return ""
}

// VerticalName returns "top", "center", "bottom" or "" for a.
func VerticalName(a models.Alignment) string {
	switch Vertical(a) {
	case models.AlignTop:
		return "top"
	case models.AlignVCenter:
		return "center"
	case models.AlignBottom:
		return "bottom"
	}
	return ""
}
