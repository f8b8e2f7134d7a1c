// Package pixel implements fixed-width RGB color values suitable for OLED and LCD pixel displays.
//
// A single generic [Color] type is instantiated per bit layout: [RGB888] (8 bits per channel),
// [RGB565] (packed 5-6-5) and [RGB555] (packed 5-5-5). Values are immutable, convert between
// layouts with rounding, and are compatible with Go's native [color.Color] and [color.Model]
// interfaces.
package pixel
