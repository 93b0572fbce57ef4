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

// Package shapes rasterizes points, lines, rectangles, triangles and
// circles onto a pixel surface.
//
// Shapes are plain values. Drawing a shape writes pixels to a [Surface]
// and returns; nothing is retained between calls. Shapes which pick their
// own colour take the random number generator as an argument to Draw, so
// that a fixed seed reproduces a picture exactly.
package shapes

import (
	"image/color"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
)

// Surface is a pixel-addressable drawing target.
//
// Shapes may pass coordinates outside [0, Width()) × [0, Height()).
// It is up to the Surface to clip, ignore or otherwise handle these.
type Surface interface {
	SetPixel(x, y int, c color.RGBA)
	Width() int
	Height() int
}

// Drawable is implemented by all shapes.
//
// Draw writes the shape's pixels to dst. If rng is nil, colours are taken
// from the global generator in math/rand/v2.
type Drawable interface {
	Draw(dst Surface, rng *rand.Rand)
}

// Shape is a Drawable which knows the area it draws into.
//
// Bounds returns a box, in pixel coordinates, which contains every pixel
// written by Draw.  The lower-left corner is inclusive and the upper-right
// corner is exclusive.
type Shape interface {
	Drawable
	Bounds() rect.Rect
}

// RandomColor returns an opaque colour chosen uniformly from all 24-bit RGB
// values except black.
func RandomColor(rng *rand.Rand) color.RGBA {
	for {
		r := uint8(intN(rng, 256))
		g := uint8(intN(rng, 256))
		b := uint8(intN(rng, 256))
		if r != 0 || g != 0 || b != 0 {
			return color.RGBA{R: r, G: g, B: b, A: 255}
		}
	}
}

// intN returns a uniform value in [0, n), using the global generator when
// rng is nil.  It panics if n <= 0.
func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// tee forwards pixel writes to several surfaces.
type tee []Surface

// Tee returns a Surface which writes every pixel to all of the given
// surfaces, in order. Width and Height are taken from the first surface.
func Tee(first Surface, rest ...Surface) Surface {
	t := make(tee, 0, 1+len(rest))
	t = append(t, first)
	return append(t, rest...)
}

func (t tee) SetPixel(x, y int, c color.RGBA) {
	for _, s := range t {
		s.SetPixel(x, y, c)
	}
}

func (t tee) Width() int  { return t[0].Width() }
func (t tee) Height() int { return t[0].Height() }
