package emojicap

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// GlyphName returns the Unicode character name of id, such as
// "GRINNING FACE", or "" when the code point has no individual name.
// Range labels like "<CJK Ideograph>" or "<Private Use>" count as unnamed.
func GlyphName(id rune) string {
	name := runenames.Name(id)
	if strings.HasPrefix(name, "<") {
		return ""
	}
	return name
}

// FormatGlyph renders id for logs and CLI output as "U+1F600 😀 GRINNING FACE".
func FormatGlyph(id rune) string {
	if name := GlyphName(id); name != "" {
		return fmt.Sprintf("%U %c %s", id, id, name)
	}
	return fmt.Sprintf("%U %c", id, id)
}
