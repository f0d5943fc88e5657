package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is the unit sphere centred on the origin
type Sphere struct{}

// localIntersect solves the quadratic |o + t*d|^2 = 1.
// A tangent ray produces two equal roots.
func (Sphere) localIntersect(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(core.Origin)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

func (Sphere) localNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.Origin)
}

func (Sphere) String() string { return "sphere" }
