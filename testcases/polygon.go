package testcases

import "seehuhn.de/go/shapes"

var rectangleCases = []TestCase{
	{Name: "square", Shape: rectangle(0, 0, 4, 4), Width: 8, Height: 8},
	{Name: "swapped_corners", Shape: rectangle(6, 1, 1, 6), Width: 8, Height: 8},
	{Name: "flat", Shape: rectangle(2, 3, 12, 3), Width: 16, Height: 16},
	{Name: "degenerate", Shape: rectangle(5, 5, 5, 5), Width: 8, Height: 8},
	{Name: "scene", Shape: rectangle(150, 300, 50, 60), Width: 1000, Height: 1000},
}

var triangleCases = []TestCase{
	{Name: "right_angle", Shape: triangle(1, 1, 1, 10, 10, 10), Width: 16, Height: 16},
	{Name: "obtuse", Shape: triangle(0, 7, 15, 0, 9, 5), Width: 16, Height: 16},
	{Name: "collinear", Shape: triangle(1, 1, 5, 5, 10, 10), Width: 16, Height: 16},
	{Name: "scene", Shape: triangle(500, 500, 250, 700, 700, 800), Width: 1000, Height: 1000},
}

// rectangle builds a rectangle from two opposite corners.
func rectangle(x1, y1, x2, y2 int) shapes.Rectangle {
	return shapes.NewRectangle(pt(x1, y1), pt(x2, y2))
}

// triangle builds a triangle from three vertices.
func triangle(x1, y1, x2, y2, x3, y3 int) shapes.Triangle {
	return shapes.NewTriangle(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}
