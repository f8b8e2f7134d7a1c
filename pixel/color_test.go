package pixel

import (
	"image/color"
	"testing"
)

func TestRGB888Pack(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 5 {
				c := NewRGB888(uint8(r), uint8(g), uint8(b))
				if want := uint32(r<<16 | g<<8 | b); c.Value() != want {
					t.Fatalf("expected value to be %#06x, got %#06x", want, c.Value())
				}
				if v := RGB888FromValue(c.Value()); v.R() != uint8(r) || v.G() != uint8(g) || v.B() != uint8(b) {
					t.Fatalf("expected (%d,%d,%d), got (%d,%d,%d)", r, g, b, v.R(), v.G(), v.B())
				}
			}
		}
	}
}

func TestRGB565Pack(t *testing.T) {
	for r := 0; r < 32; r++ {
		for g := 0; g < 64; g++ {
			for b := 0; b < 32; b++ {
				c := NewRGB565(uint8(r), uint8(g), uint8(b))
				if want := uint32(r<<11 | g<<5 | b); c.Value() != want {
					t.Fatalf("expected value to be %#04x, got %#04x", want, c.Value())
				}
				if v := RGB565FromValue(uint16(c.Value())); v != c {
					t.Fatalf("expected %s to unpack to itself, got %s", c, v)
				}
			}
		}
	}
}

func TestRGB555Pack(t *testing.T) {
	for r := 0; r < 32; r++ {
		for g := 0; g < 32; g++ {
			for b := 0; b < 32; b++ {
				c := NewRGB555(uint8(r), uint8(g), uint8(b))
				if want := uint32(r<<10 | g<<5 | b); c.Value() != want {
					t.Fatalf("expected value to be %#04x, got %#04x", want, c.Value())
				}
				if rr, gg, bb := New[Format555](c.Value()).RGB(); rr != uint8(r) || gg != uint8(g) || bb != uint8(b) {
					t.Fatalf("expected (%d,%d,%d), got (%d,%d,%d)", r, g, b, rr, gg, bb)
				}
			}
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"565 channels saturated", NewRGB565(0xff, 0xff, 0xff).Value(), 0xffff},
		{"565 channels overflow", NewRGB565(32, 64, 32).Value(), 0x0000},
		{"565 red only", NewRGB565(0x3f, 0, 0).Value(), 0xf800},
		{"565 value", New[Format565](0x1f800).Value(), 0xf800},
		{"888 value", New[Format888](0xff123456).Value(), 0x123456},
		{"555 value", New[Format555](0xffff).Value(), 0x7fff},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if test.got != test.want {
				it.Errorf("expected value to be %#04x, got %#04x", test.want, test.got)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    interface{ Hex() string }
		want string
	}{
		{RGB888{}, "0x000000"},
		{RGB888FromValue(0xffa500), "0xffa500"},
		{RGB888FromValue(0x0000ff), "0x0000ff"},
		{RGB565{}, "0x0000"},
		{RGB565FromValue(0xf800), "0xf800"},
		{RGB565FromValue(0x001f), "0x001f"},
		{NewRGB555(31, 31, 31), "0x7fff"},
	}
	for _, test := range tests {
		t.Run(test.want, func(it *testing.T) {
			if v := test.c.Hex(); v != test.want {
				it.Errorf("expected %q, got %q", test.want, v)
			}
		})
	}
}

func TestName(t *testing.T) {
	c := NamedRGB888("Orange", 0xffa500)
	if v := c.Name(); v != "Orange" {
		t.Errorf("expected name Orange, got %q", v)
	}
	if v := c.String(); v != "Orange 0xffa500" {
		t.Errorf("expected string %q, got %q", "Orange 0xffa500", v)
	}

	renamed := c.WithName("Amber")
	if renamed.Name() != "Amber" || renamed.Value() != c.Value() {
		t.Errorf("expected Amber 0xffa500, got %s", renamed)
	}
	if c.Name() != "Orange" {
		t.Errorf("expected original to keep its name, got %q", c.Name())
	}

	if v := RGB565FromValue(0x07e0).String(); v != "0x07e0" {
		t.Errorf("expected unnamed string %q, got %q", "0x07e0", v)
	}
}

func TestRGBA(t *testing.T) {
	t.Run("888", func(it *testing.T) {
		for y := 0; y < 256; y++ {
			r, g, b, a := NewRGB888(uint8(y), uint8(y), uint8(y)).RGBA()
			want := uint32(y | y<<8)
			if r != want || g != want || b != want {
				it.Fatalf("expected %#04x, got (%#04x,%#04x,%#04x)", want, r, g, b)
			}
			if a != 0xffff {
				it.Fatalf("expected alpha to be %#04x, got %#04x", 0xffff, a)
			}
		}
	})
	t.Run("565", func(it *testing.T) {
		r, g, b, _ := RGB565FromValue(0xffff).RGBA()
		if r != 0xffff || g != 0xffff || b != 0xffff {
			it.Errorf("expected white, got (%#04x,%#04x,%#04x)", r, g, b)
		}
		r, g, b, _ = RGB565FromValue(0x0000).RGBA()
		if r != 0 || g != 0 || b != 0 {
			it.Errorf("expected black, got (%#04x,%#04x,%#04x)", r, g, b)
		}
	})
}

func TestModel(t *testing.T) {
	if v := RGB888Model.Convert(color.RGBA{R: 255, G: 165, B: 0, A: 255}); v != RGB888FromValue(0xffa500) {
		t.Errorf("expected 0xffa500, got %v", v)
	}
	if v := RGB565Model.Convert(color.RGBA{R: 255, A: 255}); v != RGB565FromValue(0xf800) {
		t.Errorf("expected 0xf800, got %v", v)
	}

	named := NamedRGB565("Red", 0xf800)
	if v := RGB565Model.Convert(named); v != named {
		t.Errorf("expected model to keep %v, got %v", named, v)
	}

	models := []struct {
		name  string
		model color.Model
		bits  int
		new   func(uint32) color.Color
	}{
		{"888", RGB888Model, 24, func(v uint32) color.Color { return New[Format888](v) }},
		{"565", RGB565Model, 16, func(v uint32) color.Color { return New[Format565](v) }},
		{"555", RGB555Model, 15, func(v uint32) color.Color { return New[Format555](v) }},
	}
	for _, test := range models {
		t.Run(test.name, func(it *testing.T) {
			step := uint32(1)
			if test.bits > 16 {
				step = 257
			}
			for v := uint32(0); v < 1<<test.bits; v += step {
				c := test.new(v)
				r, g, b, a := c.RGBA()
				if got := test.model.Convert(color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}); got != c {
					it.Fatalf("expected %v to survive a round trip, got %v", c, got)
				}
			}
		})
	}
}
