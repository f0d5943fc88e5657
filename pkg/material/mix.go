package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Nested blends a chain of patterns by averaging their colours at the same point.
// Each entry applies its own transform relative to the enclosing pattern space.
type Nested struct {
	Patterns []*Pattern
}

func (n Nested) colorAt(p core.Tuple) core.Color {
	if len(n.Patterns) == 0 {
		return core.Black
	}

	sum := core.Black
	for _, pattern := range n.Patterns {
		sum = sum.Add(pattern.ColorAtObject(p))
	}
	return sum.Multiply(1.0 / float64(len(n.Patterns)))
}

func (n Nested) String() string { return "nested" }
