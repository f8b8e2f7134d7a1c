package colors

import (
	"golang.org/x/image/colornames"

	"github.com/BeatGlow/colors/pixel"
)

// web are the 50 basic web colors, sorted by name.
var web = [...]pixel.RGB888{
	pixel.NamedRGB888("Aqua", 0x00FFFF),
	pixel.NamedRGB888("Aquamarine", 0x7FFFD4),
	pixel.NamedRGB888("Azure", 0xF0FFFF),
	pixel.NamedRGB888("Beige", 0xF5F5DC),
	pixel.NamedRGB888("Bisque", 0xFFE4C4),
	pixel.NamedRGB888("Black", 0x000000),
	pixel.NamedRGB888("Blue", 0x0000FF),
	pixel.NamedRGB888("Brown", 0xA52A2A),
	pixel.NamedRGB888("Chartreuse", 0x7FFF00),
	pixel.NamedRGB888("Chocolate", 0xD2691E),
	pixel.NamedRGB888("Coral", 0xFF7F50),
	pixel.NamedRGB888("Cornsilk", 0xFFF8DC),
	pixel.NamedRGB888("Crimson", 0xDC143C),
	pixel.NamedRGB888("Cyan", 0x00FFFF),
	pixel.NamedRGB888("Fuchsia", 0xFF00FF),
	pixel.NamedRGB888("Gainsboro", 0xDCDCDC),
	pixel.NamedRGB888("Gold", 0xFFD700),
	pixel.NamedRGB888("Gray", 0x808080),
	pixel.NamedRGB888("Green", 0x008000),
	pixel.NamedRGB888("Indigo", 0x4B0082),
	pixel.NamedRGB888("Ivory", 0xFFFFF0),
	pixel.NamedRGB888("Khaki", 0xF0E68C),
	pixel.NamedRGB888("Lavender", 0xE6E6FA),
	pixel.NamedRGB888("Lime", 0x00FF00),
	pixel.NamedRGB888("Linen", 0xFAF0E6),
	pixel.NamedRGB888("Magenta", 0xFF00FF),
	pixel.NamedRGB888("Maroon", 0x800000),
	pixel.NamedRGB888("Moccasin", 0xFFE4B5),
	pixel.NamedRGB888("Navy", 0x000080),
	pixel.NamedRGB888("Olive", 0x808000),
	pixel.NamedRGB888("Orange", 0xFFA500),
	pixel.NamedRGB888("Orchid", 0xDA70D6),
	pixel.NamedRGB888("Peru", 0xCD853F),
	pixel.NamedRGB888("Pink", 0xFFC0CB),
	pixel.NamedRGB888("Plum", 0xDDA0DD),
	pixel.NamedRGB888("Purple", 0x800080),
	pixel.NamedRGB888("Red", 0xFF0000),
	pixel.NamedRGB888("Salmon", 0xFA8072),
	pixel.NamedRGB888("Sienna", 0xA0522D),
	pixel.NamedRGB888("Silver", 0xC0C0C0),
	pixel.NamedRGB888("Snow", 0xFFFAFA),
	pixel.NamedRGB888("Tan", 0xD2B48C),
	pixel.NamedRGB888("Teal", 0x008080),
	pixel.NamedRGB888("Thistle", 0xD8BFD8),
	pixel.NamedRGB888("Tomato", 0xFF6347),
	pixel.NamedRGB888("Turquoise", 0x40E0D0),
	pixel.NamedRGB888("Violet", 0xEE82EE),
	pixel.NamedRGB888("Wheat", 0xF5DEB3),
	pixel.NamedRGB888("White", 0xFFFFFF),
	pixel.NamedRGB888("Yellow", 0xFFFF00),
}

// svg are the SVG 1.1 named colors, sorted by (lowercase) name.
var svg = func() []pixel.RGB888 {
	p := make([]pixel.RGB888, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		p = append(p, pixel.NamedRGB[pixel.Format888](name, c.R, c.G, c.B))
	}
	return p
}()

// Web returns a copy of the 50 entry web color palette, from Aqua to Yellow.
//
// Some colors appear under two names (Aqua and Cyan, Fuchsia and Magenta); the first in
// alphabetical order wins a closest match.
func Web() Palette888 {
	return append(Palette888(nil), web[:]...)
}

// SVG returns a copy of the 147 SVG 1.1 named colors, with lowercase names such as "orange".
func SVG() Palette888 {
	return append(Palette888(nil), svg...)
}
