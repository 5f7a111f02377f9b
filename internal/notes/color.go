package notes

import (
	"unicode"
	"unicode/utf16"
)

// Color is a CSS hex color.
type Color string

// Palette is the fixed, ordered set of tag colors.
var Palette = [...]Color{
	"#4F46E5",
	"#0EA5E9",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#EC4899",
	"#8B5CF6",
	"#14B8A6",
}

// ColorFor maps a tag to a palette entry. It sums the tag's UTF-16 code units
// and indexes the palette modulo its size, so the same tag always gets the
// same color. Distinct tags may share a color.
func ColorFor(tag string) Color {
	sum := 0
	for _, r := range tag {
		if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			sum += int(r1) + int(r2)
			continue
		}
		sum += int(r)
	}
	return Palette[sum%len(Palette)]
}
