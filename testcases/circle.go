package testcases

import "seehuhn.de/go/shapes"

var circleCases = []TestCase{
	{Name: "radius_0", Shape: circle(8, 8, 0), Width: 16, Height: 16},
	{Name: "radius_1", Shape: circle(8, 8, 1), Width: 16, Height: 16},
	{Name: "radius_5", Shape: circle(8, 8, 5), Width: 16, Height: 16},
	{Name: "edge", Shape: circle(1, 1, 6), Width: 16, Height: 16},
	{Name: "large", Shape: circle(500, 500, 400), Width: 1000, Height: 1000},
}

// circle builds a circle from its centre and radius.
func circle(cx, cy, r int) shapes.Circle {
	return shapes.NewCircle(pt(cx, cy), r)
}
