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
	"image/color"
	"math/rand/v2"
	"testing"
)

// write is a single SetPixel call.
type write struct {
	x, y int
	c    color.RGBA
}

// recorder is a Surface which remembers every write, in order.
type recorder struct {
	w, h   int
	writes []write
}

func (r *recorder) SetPixel(x, y int, c color.RGBA) {
	r.writes = append(r.writes, write{x, y, c})
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

// pixels returns the set of positions written.
func (r *recorder) pixels() map[Point]bool {
	res := make(map[Point]bool, len(r.writes))
	for _, w := range r.writes {
		res[Point{X: w.x, Y: w.y}] = true
	}
	return res
}

// colors returns the set of colours used.
func (r *recorder) colors() map[color.RGBA]bool {
	res := make(map[color.RGBA]bool)
	for _, w := range r.writes {
		res[w.c] = true
	}
	return res
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestRandomColorNeverBlack(t *testing.T) {
	rng := newRand(1)
	black := color.RGBA{A: 255}
	for i := range 10000 {
		c := RandomColor(rng)
		if c == black {
			t.Fatalf("sample %d is black", i)
		}
		if c.A != 255 {
			t.Fatalf("sample %d has alpha %d, want 255", i, c.A)
		}
	}
}

func TestRandomColorNil(t *testing.T) {
	for range 100 {
		c := RandomColor(nil)
		if c.R == 0 && c.G == 0 && c.B == 0 {
			t.Fatal("RandomColor(nil) returned black")
		}
	}
}

// TestRandomColorUniform checks each channel against the uniform
// distribution with a chi-squared test.  Excluding black changes the
// probability of a zero channel by less than one part in 65536, which is
// far below what the test can detect.
func TestRandomColorUniform(t *testing.T) {
	const perBin = 200
	const n = 256 * perBin

	// The 99.9% quantile of chi-squared with 255 degrees of freedom is
	// about 330; leave plenty of room for a fixed seed.
	const limit = 400

	rng := newRand(2)
	var counts [3][256]int
	for range n {
		c := RandomColor(rng)
		counts[0][c.R]++
		counts[1][c.G]++
		counts[2][c.B]++
	}

	for ch, name := range []string{"red", "green", "blue"} {
		chi2 := 0.0
		for _, k := range counts[ch] {
			d := float64(k - perBin)
			chi2 += d * d / perBin
		}
		if chi2 > limit {
			t.Errorf("%s: chi-squared %.1f exceeds %d", name, chi2, limit)
		}
	}
}

func TestRandomColorSeeded(t *testing.T) {
	a, b := newRand(7), newRand(7)
	for range 100 {
		if ca, cb := RandomColor(a), RandomColor(b); ca != cb {
			t.Fatalf("same seed gave %v and %v", ca, cb)
		}
	}
}

func TestTee(t *testing.T) {
	a := &recorder{w: 10, h: 20}
	b := &recorder{w: 30, h: 40}
	s := Tee(a, b)

	if s.Width() != 10 || s.Height() != 20 {
		t.Errorf("size %dx%d, want 10x20", s.Width(), s.Height())
	}

	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	s.SetPixel(4, 5, c)
	for i, r := range []*recorder{a, b} {
		if len(r.writes) != 1 || r.writes[0] != (write{4, 5, c}) {
			t.Errorf("surface %d: writes %v", i, r.writes)
		}
	}
}
