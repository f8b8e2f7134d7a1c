package pixel

import (
	"fmt"
	"image/color"
)

// Format selects the channel layout of a [Color].
type Format interface {
	Layout() Layout
}

// Format888 is the 24-bit 8-8-8 RGB format.
type Format888 struct{}

func (Format888) Layout() Layout { return Layout888 }

// Format565 is the 16-bit 5-6-5 RGB format.
type Format565 struct{}

func (Format565) Layout() Layout { return Layout565 }

// Format555 is the 15-bit 5-5-5 RGB format.
type Format555 struct{}

func (Format555) Layout() Layout { return Layout555 }

// Color is an immutable RGB color packed according to the layout of F, with an optional name.
//
// The zero value is unnamed black.
type Color[F Format] struct {
	v    uint32
	name string
}

type (
	// RGB888 represents a 24-bit 8-8-8 RGB color.
	RGB888 = Color[Format888]

	// RGB565 represents a 16-bit 5-6-5 RGB color.
	RGB565 = Color[Format565]

	// RGB555 represents a 15-bit 5-5-5 RGB color.
	RGB555 = Color[Format555]
)

// Models for the standard color types.
var (
	RGB888Model = Model[Format888]()
	RGB565Model = Model[Format565]()
	RGB555Model = Model[Format555]()
)

func layoutOf[F Format]() Layout {
	var f F
	return f.Layout()
}

// New returns the color for a packed value. Bits beyond the layout width are discarded.
func New[F Format](v uint32) Color[F] {
	return Color[F]{v: v & layoutOf[F]().Mask()}
}

// NewRGB returns the color for the given channels. Each channel is masked to its width, so
// out of range input wraps instead of failing.
func NewRGB[F Format](r, g, b uint8) Color[F] {
	return Color[F]{v: layoutOf[F]().Pack(r, g, b)}
}

// Named is like [New] and attaches a name.
func Named[F Format](name string, v uint32) Color[F] {
	return Color[F]{v: v & layoutOf[F]().Mask(), name: name}
}

// NamedRGB is like [NewRGB] and attaches a name.
func NamedRGB[F Format](name string, r, g, b uint8) Color[F] {
	return Color[F]{v: layoutOf[F]().Pack(r, g, b), name: name}
}

// NewRGB888 returns an RGB888 color from 8-bit channels.
func NewRGB888(r, g, b uint8) RGB888 { return NewRGB[Format888](r, g, b) }

// NewRGB565 returns an RGB565 color from 5-bit red, 6-bit green and 5-bit blue channels.
func NewRGB565(r, g, b uint8) RGB565 { return NewRGB[Format565](r, g, b) }

// NewRGB555 returns an RGB555 color from 5-bit channels.
func NewRGB555(r, g, b uint8) RGB555 { return NewRGB[Format555](r, g, b) }

// RGB888FromValue returns an RGB888 color from a 0xRRGGBB value.
func RGB888FromValue(v uint32) RGB888 { return New[Format888](v) }

// RGB565FromValue returns an RGB565 color from a 0bRRRRRGGGGGGBBBBB value.
func RGB565FromValue(v uint16) RGB565 { return New[Format565](uint32(v)) }

// NamedRGB888 returns a named RGB888 color from a 0xRRGGBB value.
func NamedRGB888(name string, v uint32) RGB888 { return Named[Format888](name, v) }

// NamedRGB565 returns a named RGB565 color from a 0bRRRRRGGGGGGBBBBB value.
func NamedRGB565(name string, v uint16) RGB565 { return Named[Format565](name, uint32(v)) }

// Layout of the color.
func (c Color[F]) Layout() Layout {
	return layoutOf[F]()
}

// Value is the packed integer representation.
func (c Color[F]) Value() uint32 {
	return c.v
}

// Name of the color, empty if none was given.
func (c Color[F]) Name() string {
	return c.name
}

// WithName returns a copy of the color with the name replaced.
func (c Color[F]) WithName(name string) Color[F] {
	c.name = name
	return c
}

// RGB returns the raw channel values, each in the range of its bit width.
func (c Color[F]) RGB() (r, g, b uint8) {
	return c.Layout().Unpack(c.v)
}

func (c Color[F]) R() uint8 {
	r, _, _ := c.RGB()
	return r
}

func (c Color[F]) G() uint8 {
	_, g, _ := c.RGB()
	return g
}

func (c Color[F]) B() uint8 {
	_, _, b := c.RGB()
	return b
}

// Hex renders the packed value as a zero padded lowercase hexadecimal string with a 0x prefix,
// for example 0xffa500 for RGB888 and 0xfd20 for RGB565.
func (c Color[F]) Hex() string {
	return fmt.Sprintf("0x%0*x", c.Layout().HexDigits(), c.v)
}

func (c Color[F]) String() string {
	if c.name == "" {
		return c.Hex()
	}
	return c.name + " " + c.Hex()
}

// RGBA implements [color.Color]. Colors are always opaque.
func (c Color[F]) RGBA() (r, g, b, a uint32) {
	var (
		red, grn, blu = c.RGB()
		rm, gm, bm    = c.Layout().Max()
	)
	return scale(uint32(red), rm, 0xffff), scale(uint32(grn), gm, 0xffff), scale(uint32(blu), bm, 0xffff), 0xffff
}

// Model returns the [color.Model] converting arbitrary colors to format F. Alpha is ignored.
func Model[F Format]() color.Model {
	return color.ModelFunc(model[F])
}

func model[F Format](c color.Color) color.Color {
	if c, ok := c.(Color[F]); ok {
		return c
	}
	var (
		r, g, b, _ = c.RGBA()
		rm, gm, bm = layoutOf[F]().Max()
	)
	return NewRGB[F](uint8(scale(r, 0xffff, rm)), uint8(scale(g, 0xffff, gm)), uint8(scale(b, 0xffff, bm)))
}

// Interface checks.
var (
	_ color.Color  = RGB888{}
	_ color.Color  = RGB565{}
	_ color.Color  = RGB555{}
	_ fmt.Stringer = RGB888{}
)
