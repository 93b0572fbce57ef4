package testcases

import "seehuhn.de/go/shapes"

var pointCases = []TestCase{
	{Name: "origin", Shape: pt(0, 0), Width: 8, Height: 8},
	{Name: "inside", Shape: pt(5, 3), Width: 8, Height: 8},
	{Name: "outside", Shape: pt(-2, 12), Width: 8, Height: 8},
}

var lineCases = []TestCase{
	{Name: "single_pixel", Shape: line(4, 4, 4, 4), Width: 16, Height: 16},
	{Name: "horizontal", Shape: line(1, 5, 12, 5), Width: 16, Height: 16},
	{Name: "horizontal_reversed", Shape: line(12, 5, 1, 5), Width: 16, Height: 16},
	{Name: "vertical", Shape: line(7, 14, 7, 2), Width: 16, Height: 16},
	{Name: "diagonal", Shape: line(0, 0, 15, 15), Width: 16, Height: 16},
	{Name: "antidiagonal", Shape: line(15, 0, 0, 15), Width: 16, Height: 16},
	{Name: "shallow", Shape: line(1, 1, 14, 4), Width: 16, Height: 16},
	{Name: "steep", Shape: line(2, 15, 5, 0), Width: 16, Height: 16},
	{Name: "half_steps", Shape: line(0, 0, 4, 2), Width: 16, Height: 16},
	{Name: "negative", Shape: line(-5, -3, 3, 2), Width: 16, Height: 16},
	{Name: "off_canvas", Shape: line(-10, 8, 30, 9), Width: 16, Height: 16},
	{Name: "long", Shape: line(3, 997, 996, 1), Width: 1000, Height: 1000},
}

// line builds a white line from (x1, y1) to (x2, y2).
func line(x1, y1, x2, y2 int) shapes.Line {
	return shapes.NewLine(pt(x1, y1), pt(x2, y2), white)
}
