package pixel

import "math"

// Layout describes how the red, green and blue channels are packed into an integer.
//
// Blue occupies the least significant bits, followed by green and then red. Channels are at most
// 8 bits wide; a channel of 0 bits always reads as 0.
type Layout struct {
	RedBits   uint8
	GreenBits uint8
	BlueBits  uint8
}

// Standard layouts.
var (
	Layout888 = Layout{RedBits: 8, GreenBits: 8, BlueBits: 8} // RRRRRRRR GGGGGGGG BBBBBBBB
	Layout565 = Layout{RedBits: 5, GreenBits: 6, BlueBits: 5} // RRRRRGGG GGGBBBBB
	Layout555 = Layout{RedBits: 5, GreenBits: 5, BlueBits: 5} // xRRRRRGG GGGBBBBB
)

// Bits is the total number of bits used by a packed value.
func (l Layout) Bits() int {
	return int(l.RedBits) + int(l.GreenBits) + int(l.BlueBits)
}

// Mask covers all bits of a packed value.
func (l Layout) Mask() uint32 {
	return 1<<uint(l.Bits()) - 1
}

// Shifts returns the bit offset of each channel.
func (l Layout) Shifts() (r, g, b uint) {
	return uint(l.BlueBits + l.GreenBits), uint(l.BlueBits), 0
}

// Max returns the largest legal value of each channel.
func (l Layout) Max() (r, g, b uint32) {
	return 1<<l.RedBits - 1, 1<<l.GreenBits - 1, 1<<l.BlueBits - 1
}

// Pack masks each channel to its width and concatenates them.
func (l Layout) Pack(r, g, b uint8) uint32 {
	var (
		rm, gm, bm = l.Max()
		rs, gs, bs = l.Shifts()
	)
	return (uint32(r)&rm)<<rs | (uint32(g)&gm)<<gs | (uint32(b)&bm)<<bs
}

// Unpack extracts the channels of a packed value.
func (l Layout) Unpack(v uint32) (r, g, b uint8) {
	var (
		rm, gm, bm = l.Max()
		rs, gs, bs = l.Shifts()
	)
	return uint8(v >> rs & rm), uint8(v >> gs & gm), uint8(v >> bs & bm)
}

// MaxDistance is the Euclidean distance between black and white in this layout, using the
// maximum of each channel.
func (l Layout) MaxDistance() float64 {
	r, g, b := l.Max()
	return math.Sqrt(float64(r*r + g*g + b*b))
}

// HexDigits is the number of hexadecimal digits needed to render a packed value.
func (l Layout) HexDigits() int {
	return (l.Bits() + 3) / 4
}

// scale maps v from the range [0, from] onto [0, to], rounding half away from zero.
func scale(v, from, to uint32) uint32 {
	if from == 0 {
		return 0
	}
	return (v*to*2 + from) / (from * 2)
}
