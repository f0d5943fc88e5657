package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// isEven reports whether the floored value is an even integer.
// Negative odd values (e.g. -1) count as odd.
func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}

func fraction(v float64) float64 {
	return v - math.Floor(v)
}

// Stripe alternates between A and B on unit intervals of x
type Stripe struct {
	A, B core.Color
}

func (s Stripe) colorAt(p core.Tuple) core.Color {
	if isEven(math.Floor(p.X)) {
		return s.A
	}
	return s.B
}

func (s Stripe) String() string { return "stripe" }

// Gradient blends from A to B across each unit interval of x
type Gradient struct {
	A, B core.Color
}

func (g Gradient) colorAt(p core.Tuple) core.Color {
	return g.A.Lerp(g.B, fraction(p.X))
}

func (g Gradient) String() string { return "gradient" }

// Ring alternates between A and B on concentric unit rings in the xz plane
type Ring struct {
	A, B core.Color
}

func (r Ring) colorAt(p core.Tuple) core.Color {
	if isEven(math.Floor(math.Sqrt(p.X*p.X + p.Z*p.Z))) {
		return r.A
	}
	return r.B
}

func (r Ring) String() string { return "ring" }

// RadialGradient blends from A to B across each unit ring in the xz plane
type RadialGradient struct {
	A, B core.Color
}

func (r RadialGradient) colorAt(p core.Tuple) core.Color {
	return r.A.Lerp(r.B, fraction(math.Sqrt(p.X*p.X+p.Z*p.Z)))
}

func (r RadialGradient) String() string { return "radial-gradient" }

// Checker alternates between A and B on unit cubes
type Checker struct {
	A, B core.Color
}

func (c Checker) colorAt(p core.Tuple) core.Color {
	if isEven(math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)) {
		return c.A
	}
	return c.B
}

func (c Checker) String() string { return "checker" }
