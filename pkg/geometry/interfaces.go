package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Kind is the canonical, untransformed geometry of a shape.
// The set of kinds is closed: Sphere, Plane and Cube.
type Kind interface {
	// localIntersect returns every root of the ray against the canonical shape,
	// in ascending order, with the ray already in object space
	localIntersect(ray core.Ray) []float64
	// localNormalAt returns the (unnormalised) object-space normal at an object-space point
	localNormalAt(point core.Tuple) core.Tuple
	String() string
}
