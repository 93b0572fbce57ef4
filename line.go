package shapes

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
)

// Line is a straight segment between two pixels, drawn in a single colour.
// A and B may coincide, in which case the line is a single pixel.
type Line struct {
	A, B  Point
	Color color.RGBA
}

// NewLine returns the line from a to b in colour c.
func NewLine(a, b Point, c color.RGBA) Line {
	return Line{A: a, B: b, Color: c}
}

// RandomLine returns a line between two random points (see [RandomPoint]),
// with a random colour.
func RandomLine(rng *rand.Rand, width, height int) Line {
	a := RandomPoint(rng, width, height)
	b := RandomPoint(rng, width, height)
	return NewLine(a, b, RandomColor(rng))
}

// Steps returns the number of increments along the dominant axis.  Drawing
// the line writes Steps()+1 pixels.
func (l Line) Steps() int {
	return max(abs(l.B.X-l.A.X), abs(l.B.Y-l.A.Y))
}

// Draw rasterizes the line using a digital differential analyser.
//
// The walk takes one step per pixel along the dominant axis, and moves
// dx/steps and dy/steps per step along x and y.  Positions are rounded to
// the nearest pixel, with halves rounded away from zero.  Both endpoints
// are always written.  The rng argument is unused, since the colour is
// part of the line.
func (l Line) Draw(dst Surface, _ *rand.Rand) {
	steps := l.Steps()

	if lg := Logger(); lg.Enabled(context.Background(), slog.LevelDebug) {
		lg.LogAttrs(context.Background(), slog.LevelDebug, "line",
			slog.Int("x1", l.A.X), slog.Int("y1", l.A.Y),
			slog.Int("x2", l.B.X), slog.Int("y2", l.B.Y),
			slog.Int("steps", steps),
			slog.String("color", hexColor(l.Color)))
	}

	if steps == 0 {
		dst.SetPixel(l.A.X, l.A.Y, l.Color)
		return
	}

	dx := l.B.X - l.A.X
	dy := l.B.Y - l.A.Y
	for i := 0; i <= steps; i++ {
		// Positions are computed from the step index instead of being
		// accumulated, so that exact halves stay exact.
		x := lerp(l.A.X, dx*i, steps)
		y := lerp(l.A.Y, dy*i, steps)
		dst.SetPixel(x, y, l.Color)
	}
}

// Bounds returns the smallest box containing both endpoints.
func (l Line) Bounds() rect.Rect {
	return pixelBounds(
		min(l.A.X, l.B.X), min(l.A.Y, l.B.Y),
		max(l.A.X, l.B.X), max(l.A.Y, l.B.Y))
}

// lerp returns start + n/d rounded to the nearest integer, halves away
// from zero.  d must be positive.
func lerp(start, n, d int) int {
	return int(math.Round(float64(start) + float64(n)/float64(d)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
