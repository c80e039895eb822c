package style

import (
	"testing"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"#FFFFFF", "#ffffff", true},
		{"#f00", "#ff0000", true},
		{"  #00ff00 ", "#00ff00", true},
		{"white", "#ffffff", true},
		{"Red", "#ff0000", true},
		{"#12345", "", false},
		{"#gggggg", "", false},
		{"notacolor", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		result, ok := NormalizeColor(tt.input)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("NormalizeColor(%q) = %q, %v, expected %q, %v",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestIsWhite(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"#ffffff", true},
		{"#FFF", true},
		{"white", true},
		{"#fffffe", false},
		{"", false},
	}

	for _, tt := range tests {
		if result := IsWhite(tt.input); result != tt.expected {
			t.Errorf("IsWhite(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	pos := models.Pos{Row: 1, Col: 2}
	colors := map[models.Pos]string{pos: "#ff0000"}
	fonts := map[models.Pos]models.Font{pos: {Bold: true, Size: 14}}
	alignments := map[models.Pos]models.Alignment{pos: models.AlignLeft | models.AlignVCenter}

	st := Resolve(pos, colors, fonts, alignments)
	if st.Color != "#ff0000" {
		t.Errorf("Color = %q, expected #ff0000", st.Color)
	}
	if st.Font != (models.Font{Bold: true, Size: 14}) {
		t.Errorf("Font = %+v", st.Font)
	}
	if st.Alignment != models.AlignLeft|models.AlignVCenter {
		t.Errorf("Alignment = %#x", st.Alignment)
	}

	other := Resolve(models.Pos{Row: 0, Col: 0}, colors, fonts, alignments)
	if other != models.DefaultStyle() {
		t.Errorf("Resolve without entries = %+v, expected default", other)
	}
}

func TestResolveFontReplacesWholeEntry(t *testing.T) {
	pos := models.Pos{}
	// A bold entry with size 0 is not merged with the default size.
	st := Resolve(pos, nil, map[models.Pos]models.Font{pos: {Bold: true}}, nil)
	if st.Font.Size != 0 || !st.Font.Bold {
		t.Errorf("Font = %+v, expected {Bold:true Size:0}", st.Font)
	}
}

func TestAlignmentHelpers(t *testing.T) {
	a := Combine(models.AlignRight, models.AlignVCenter)
	if a != models.AlignRight|models.AlignVCenter {
		t.Fatalf("Combine = %#x", a)
	}
	if HorizontalName(a) != "right" || VerticalName(a) != "center" {
		t.Errorf("names = %q/%q", HorizontalName(a), VerticalName(a))
	}
	if HorizontalName(models.DefaultAlignment) != "center" {
		t.Errorf("default horizontal = %q", HorizontalName(models.DefaultAlignment))
	}
}
