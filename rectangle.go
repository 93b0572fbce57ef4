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
	"image/color"
	"log/slog"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
)

// Rectangle is the outline of an axis-aligned box.  A and B are opposite
// corners, given in any order.
type Rectangle struct {
	A, B Point
}

// NewRectangle returns the rectangle with opposite corners a and b.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{A: a, B: b}
}

// Corners returns the four corners in drawing order: A, (A.X, B.Y), B,
// (B.X, A.Y).
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		{X: r.A.X, Y: r.A.Y},
		{X: r.A.X, Y: r.B.Y},
		{X: r.B.X, Y: r.B.Y},
		{X: r.B.X, Y: r.A.Y},
	}
}

// Draw draws the four sides in one random colour.
func (r Rectangle) Draw(dst Surface, rng *rand.Rand) {
	c := RandomColor(rng)
	Logger().LogAttrs(context.Background(), slog.LevelDebug, "rectangle",
		slog.String("color", hexColor(c)))

	corners := r.Corners()
	sides := [4]Line{
		NewLine(corners[0], corners[3], c),
		NewLine(corners[3], corners[2], c),
		NewLine(corners[2], corners[1], c),
		NewLine(corners[1], corners[0], c),
	}
	for _, l := range sides {
		l.Draw(dst, rng)
	}
}

// Bounds returns the box enclosed by the outline, including the outline.
func (r Rectangle) Bounds() rect.Rect {
	return NewLine(r.A, r.B, color.RGBA{}).Bounds()
}
