package shapes

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a Surface backed by an in-memory RGBA image.
// Writes outside the image are ignored.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a canvas of the given size.  All pixels start out as
// transparent black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// SetPixel implements the [Surface] interface.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	c.img.SetRGBA(x, y, col)
}

// Width implements the [Surface] interface.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height implements the [Surface] interface.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Image returns the underlying image.  The image is shared with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
