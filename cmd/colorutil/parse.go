package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/BeatGlow/colors"
	"github.com/BeatGlow/colors/pixel"
)

// parse888 accepts 0xRRGGBB (or any strconv integer literal), CSS style #rrggbb / #rgb, or the
// name of a palette entry.
func parse888(s string, p colors.Palette888) (pixel.RGB888, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return pixel.RGB888{}, errors.Errorf("invalid RGB888 color %q: %v", s, err)
		}
		return pixel.NewRGB888(c.RGB255()), nil
	}
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		if v > 0xffffff {
			return pixel.RGB888{}, errors.Errorf("invalid RGB888 color %q: exceeds 0xffffff", s)
		}
		return pixel.RGB888FromValue(uint32(v)), nil
	}
	c, err := p.Lookup(s)
	if err != nil {
		return pixel.RGB888{}, errors.Wrap(fmt.Errorf("invalid RGB888 color %q: %w", s, err), 0)
	}
	return c, nil
}

// parse565 accepts a 16-bit integer literal such as 0xf800.
func parse565(s string) (pixel.RGB565, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return pixel.RGB565{}, errors.Errorf("invalid RGB565 color %q", s)
	}
	return pixel.RGB565FromValue(uint16(v)), nil
}

func describe[F pixel.Format](c pixel.Color[F]) string {
	r, g, b := c.RGB()
	return fmt.Sprintf("%s (%d, %d, %d)", c, r, g, b)
}
