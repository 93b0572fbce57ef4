// Package preview draws shapes into a terminal using braille characters.
//
// Every terminal cell shows a 2×4 grid of dots, so a preview of cols×rows
// cells has 2*cols × 4*rows micro-pixels.  The logical surface seen by the
// shapes is scaled down onto this grid.
package preview

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dotBits maps a micro-pixel position within a cell, indexed by [column][row],
// to its bit in the braille pattern (U+2800 + bits).
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Braille is a surface rendered as braille characters.
type Braille struct {
	// Color enables foreground colours in Lines.
	Color bool

	width, height int // logical size
	cols, rows    int // in cells

	mask [][]uint8
	ink  [][]color.RGBA
}

// NewBraille returns a preview of cols×rows cells showing a logical surface
// of width×height pixels.
func NewBraille(width, height, cols, rows int) *Braille {
	mask := make([][]uint8, rows)
	ink := make([][]color.RGBA, rows)
	for i := range mask {
		mask[i] = make([]uint8, cols)
		ink[i] = make([]color.RGBA, cols)
	}
	return &Braille{
		Color:  true,
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		mask:   mask,
		ink:    ink,
	}
}

// Width returns the logical width.
func (b *Braille) Width() int { return b.width }

// Height returns the logical height.
func (b *Braille) Height() int { return b.height }

// SetPixel lights the dot covering logical pixel (x, y).  The cell takes
// on the colour c.  Pixels outside the logical surface are ignored.
func (b *Braille) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.setMicro(x*2*b.cols/b.width, y*4*b.rows/b.height, c)
}

// setMicro sets a micro-pixel at micro coords (2x4 per cell)
func (b *Braille) setMicro(mx, my int, c color.RGBA) {
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.rows || cx >= b.cols {
		return
	}
	b.mask[cy][cx] |= dotBits[rx][ry]
	b.ink[cy][cx] = c
}

// Lines returns the preview, one string per row of cells.
// Consecutive cells of the same colour share one styled run.
func (b *Braille) Lines() []string {
	out := make([]string, b.rows)
	for y := range b.rows {
		var sb strings.Builder
		var run []rune
		var runInk color.RGBA
		flush := func() {
			if len(run) == 0 {
				return
			}
			if b.Color && runInk != (color.RGBA{}) {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(runInk)))
				sb.WriteString(style.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := range b.cols {
			m := b.mask[y][x]
			r, ink := ' ', color.RGBA{}
			if m != 0 {
				r, ink = rune(0x2800+int(m)), b.ink[y][x]
			}
			if ink != runInk {
				flush()
				runInk = ink
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

// String returns the preview as a single newline-terminated block.
func (b *Braille) String() string {
	return strings.Join(b.Lines(), "\n") + "\n"
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
