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

package testcases

import (
	"image/color"

	"seehuhn.de/go/shapes"
)

// TestCase defines a single drawing test.
type TestCase struct {
	Name   string          // lowercase a-z, 0-9 and _ only
	Shape  shapes.Drawable // the shape to draw
	Width  int             // canvas width in pixels
	Height int             // canvas height in pixels
}

// pt is a helper to create a shapes.Point from x, y coordinates.
func pt(x, y int) shapes.Point {
	return shapes.Point{X: x, Y: y}
}

// white is the colour used for all fixed-colour lines.
var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
