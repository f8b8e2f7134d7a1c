package pixel

import "math"

// Distance is the Euclidean distance between the channel triples of a and b.
func Distance[F Format](a, b Color[F]) float64 {
	var (
		ar, ag, ab = a.RGB()
		br, bg, bb = b.RGB()
		dr         = float64(ar) - float64(br)
		dg         = float64(ag) - float64(bg)
		db         = float64(ab) - float64(bb)
	)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Similarity scores how close a and b are, from 0 (black versus white) to 1 (identical).
//
// The distance is normalized by [Layout.MaxDistance], which uses the true maximum of each
// channel; for RGB565 that is sqrt(31² + 63² + 31²).
func Similarity[F Format](a, b Color[F]) float64 {
	return 1 - Distance(a, b)/a.Layout().MaxDistance()
}

// Similarity is the method form of [Similarity].
func (c Color[F]) Similarity(other Color[F]) float64 {
	return Similarity(c, other)
}

// MixedSimilarity compares an RGB888 and an RGB565 color in RGB565 space, narrowing a first.
func MixedSimilarity(a RGB888, b RGB565) float64 {
	return Similarity(To565(a), b)
}
