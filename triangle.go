package shapes

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
)

// Triangle is the outline of a triangle.  The vertices are used in the
// order given and may be collinear.
type Triangle struct {
	A, B, C Point
}

// NewTriangle returns the triangle with vertices a, b and c.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Draw draws the edges AB, BC and CA in one random colour.
func (t Triangle) Draw(dst Surface, rng *rand.Rand) {
	c := RandomColor(rng)
	Logger().LogAttrs(context.Background(), slog.LevelDebug, "triangle",
		slog.String("color", hexColor(c)))

	NewLine(t.A, t.B, c).Draw(dst, rng)
	NewLine(t.B, t.C, c).Draw(dst, rng)
	NewLine(t.C, t.A, c).Draw(dst, rng)
}

// Bounds returns the smallest box containing all three vertices.
func (t Triangle) Bounds() rect.Rect {
	return pixelBounds(
		min(t.A.X, t.B.X, t.C.X), min(t.A.Y, t.B.Y, t.C.Y),
		max(t.A.X, t.B.X, t.C.X), max(t.A.Y, t.B.Y, t.C.Y))
}
