// Package colors contains named color palettes and nearest color search.
package colors

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/colors/pixel"
)

// Errors
var (
	ErrNotFound   = errors.New("colors: color not found")
	ErrEmptyInput = errors.New("colors: empty palette")
)

// Palette is an ordered list of (named) colors of format F.
//
// Search methods never modify the palette; when several entries match equally well, the entry
// with the lowest index wins.
type Palette[F pixel.Format] []pixel.Color[F]

// Palette instances for the standard formats.
type (
	Palette888 = Palette[pixel.Format888]
	Palette565 = Palette[pixel.Format565]
)

// Convert rescales every entry of p into format To, keeping names and order.
func Convert[To, From pixel.Format](p Palette[From]) Palette[To] {
	if p == nil {
		return nil
	}
	out := make(Palette[To], len(p))
	for i, c := range p {
		out[i] = pixel.Convert[To](c)
	}
	return out
}

// ClosestIndex returns the index and similarity of the entry most similar to query.
//
// Only a strictly greater similarity replaces the current best, starting from index 0 with
// similarity 0.
func (p Palette[F]) ClosestIndex(query pixel.Color[F]) (int, float64, error) {
	return p.scan(func(c pixel.Color[F]) float64 {
		return pixel.Similarity(query, c)
	})
}

// Closest returns the entry most similar to query, compared in the palette's format.
func (p Palette[F]) Closest(query pixel.Color[F]) (pixel.Color[F], error) {
	i, _, err := p.ClosestIndex(query)
	if err != nil {
		return pixel.Color[F]{}, err
	}
	return p[i], nil
}

// Closest565 returns the entry of an RGB888 palette most similar to query, compared in RGB565
// space. The match is returned converted to RGB565.
func Closest565(p Palette888, query pixel.RGB565) (pixel.RGB565, error) {
	i, _, err := p.scan(func(c pixel.RGB888) float64 {
		return pixel.MixedSimilarity(c, query)
	})
	if err != nil {
		return pixel.RGB565{}, err
	}
	return pixel.To565(p[i]), nil
}

func (p Palette[F]) scan(similarity func(pixel.Color[F]) float64) (index int, best float64, err error) {
	if len(p) == 0 {
		return -1, 0, ErrEmptyInput
	}
	for i, c := range p {
		if s := similarity(c); s > best {
			index, best = i, s
		}
	}
	return
}

// Lookup returns the first entry whose name equals name. Names are case sensitive.
func (p Palette[F]) Lookup(name string) (pixel.Color[F], error) {
	for _, c := range p {
		if c.Name() == name {
			return c, nil
		}
	}
	return pixel.Color[F]{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// LookupValue returns the first entry with the packed value v.
func (p Palette[F]) LookupValue(v uint32) (pixel.Color[F], error) {
	for _, c := range p {
		if c.Value() == v {
			return c, nil
		}
	}
	return pixel.Color[F]{}, fmt.Errorf("%w: %#06x", ErrNotFound, v)
}

// LookupOrDefault is like Lookup, but returns unnamed black if name is not found.
//
// Deprecated: kept for callers relying on the legacy silent fallback; use Lookup.
func (p Palette[F]) LookupOrDefault(name string) pixel.Color[F] {
	c, _ := p.Lookup(name)
	return c
}

// ClosestOrDefault is like Closest, but returns unnamed black for an empty palette.
//
// Deprecated: kept for callers relying on the legacy silent fallback; use Closest.
func (p Palette[F]) ClosestOrDefault(query pixel.Color[F]) pixel.Color[F] {
	c, _ := p.Closest(query)
	return c
}

// Names lists the entry names in palette order.
func (p Palette[F]) Names() []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.Name()
	}
	return names
}
