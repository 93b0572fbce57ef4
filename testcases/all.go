package testcases

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"point":     pointCases,
	"line":      lineCases,
	"rectangle": rectangleCases,
	"triangle":  triangleCases,
	"circle":    circleCases,
}

