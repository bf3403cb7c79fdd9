package emojicap

import "testing"

func TestGlyphName(t *testing.T) {
	tests := []struct {
		id   rune
		want string
	}{
		{0x1F600, "GRINNING FACE"},
		{'A', "LATIN CAPITAL LETTER A"},
		{0x2764, "HEAVY BLACK HEART"},
		{0xE000, ""}, // private use
		{0x4E00, ""}, // CJK ideograph range
		{0xAC00, ""}, // Hangul syllable range
	}
	for _, tt := range tests {
		if got := GlyphName(tt.id); got != tt.want {
			t.Errorf("GlyphName(%U) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFormatGlyph(t *testing.T) {
	tests := []struct {
		id   rune
		want string
	}{
		{0x1F600, "U+1F600 😀 GRINNING FACE"},
		{'A', "U+0041 A LATIN CAPITAL LETTER A"},
		{0xE000, "U+E000 \ue000"},
		{0x4E00, "U+4E00 一"},
	}
	for _, tt := range tests {
		if got := FormatGlyph(tt.id); got != tt.want {
			t.Errorf("FormatGlyph(%U) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
