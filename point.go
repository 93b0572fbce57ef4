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
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
)

// Point is a pixel position.  A Point is also a shape: drawing it sets a
// single pixel to a random colour.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// RandomPoint returns a point with X uniform in [1, width) and Y uniform in
// [1, height).  Column 0 and row 0 are never chosen.
//
// RandomPoint panics if width or height is less than 2.
func RandomPoint(rng *rand.Rand, width, height int) Point {
	x := 1 + intN(rng, width-1)
	y := 1 + intN(rng, height-1)
	return Point{X: x, Y: y}
}

// Draw sets the pixel at p to a random colour.
func (p Point) Draw(dst Surface, rng *rand.Rand) {
	dst.SetPixel(p.X, p.Y, RandomColor(rng))
}

// Bounds returns the one-pixel box covered by p.
func (p Point) Bounds() rect.Rect {
	return pixelBounds(p.X, p.Y, p.X, p.Y)
}

// pixelBounds returns the box covering all pixels from (xMin, yMin) to
// (xMax, yMax) inclusive.
func pixelBounds(xMin, yMin, xMax, yMax int) rect.Rect {
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax + 1),
		URy: float64(yMax + 1),
	}
}
