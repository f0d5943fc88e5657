package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// ObjectSpace converts world-space points into the local frame of a shape.
// Patterns are evaluated in that frame so they move with the object.
type ObjectSpace interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// PatternKind maps a point in pattern space to a colour.
// The set of kinds is closed; every kind lives in this package.
type PatternKind interface {
	colorAt(point core.Tuple) core.Color
	String() string
}
