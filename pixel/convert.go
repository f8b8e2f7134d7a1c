package pixel

// Convert rescales each channel of c into the layout of format To and carries the name.
//
// Every channel is mapped as round(v / srcMax * dstMax) with exact integer arithmetic. Narrowing
// loses precision, so converting RGB888 to RGB565 and back does not always return the original
// value; converting RGB565 to RGB888 and back always does.
func Convert[To, From Format](c Color[From]) Color[To] {
	var (
		r, g, b    = c.RGB()
		sr, sg, sb = c.Layout().Max()
		dr, dg, db = layoutOf[To]().Max()
	)
	return NamedRGB[To](c.name,
		uint8(scale(uint32(r), sr, dr)),
		uint8(scale(uint32(g), sg, dg)),
		uint8(scale(uint32(b), sb, db)),
	)
}

// To565 converts an RGB888 color to RGB565. The RGB565 form of a color is rendered with
// To565(c).Value() or To565(c).Hex().
func To565(c RGB888) RGB565 {
	return Convert[Format565](c)
}

// To888 converts an RGB565 color to RGB888. The RGB888 form of a color is rendered with
// To888(c).Value() or To888(c).Hex().
func To888(c RGB565) RGB888 {
	return Convert[Format888](c)
}
