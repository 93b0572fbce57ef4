// seehuhn.de/go/shapes - rasterize simple geometric shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shapes

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
)

// Circle is the outline of a circle.  Radius must not be negative.
type Circle struct {
	Center Point
	Radius int
}

// NewCircle returns the circle with the given centre and radius.
func NewCircle(center Point, radius int) Circle {
	return Circle{Center: center, Radius: radius}
}

// RandomCircle returns a circle centred on a random point (see
// [RandomPoint]), with a radius uniform in [1, height/2].
//
// RandomCircle panics if width is less than 2 or height is less than 2.
func RandomCircle(rng *rand.Rand, width, height int) Circle {
	center := RandomPoint(rng, width, height)
	radius := 1 + intN(rng, height/2)
	return NewCircle(center, radius)
}

// Draw draws the circle in one random colour, using the midpoint algorithm.
//
// The algorithm walks the octant from the top of the circle towards the
// 45° diagonal and mirrors every position into all eight octants.  Pixels
// on the octant boundaries are written more than once.  A circle of
// radius 0 writes no pixels.
func (c Circle) Draw(dst Surface, rng *rand.Rand) {
	col := RandomColor(rng)
	Logger().LogAttrs(context.Background(), slog.LevelDebug, "circle",
		slog.Int("cx", c.Center.X), slog.Int("cy", c.Center.Y),
		slog.Int("radius", c.Radius),
		slog.String("color", hexColor(col)))

	cx, cy := c.Center.X, c.Center.Y
	r2 := 4 * c.Radius * c.Radius

	x, y := 0, -c.Radius
	for x < -y {
		// Is the midpoint (x, y+1/2) outside the circle?  Both sides are
		// scaled by 4 to keep the test in integers.
		if m := 2*y + 1; 4*x*x+m*m > r2 {
			y++
		}

		dst.SetPixel(cx+x, cy+y, col)
		dst.SetPixel(cx-x, cy+y, col)
		dst.SetPixel(cx+x, cy-y, col)
		dst.SetPixel(cx-x, cy-y, col)
		dst.SetPixel(cx+y, cy+x, col)
		dst.SetPixel(cx-y, cy+x, col)
		dst.SetPixel(cx+y, cy-x, col)
		dst.SetPixel(cx-y, cy-x, col)

		x++
	}
}

// Bounds returns the smallest box containing the circle.
func (c Circle) Bounds() rect.Rect {
	r := c.Radius
	return pixelBounds(c.Center.X-r, c.Center.Y-r, c.Center.X+r, c.Center.Y+r)
}
