package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the origin
type Plane struct{}

// localIntersect treats rays (nearly) parallel to the plane as misses,
// including rays lying in it
func (Plane) localIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

func (Plane) localNormalAt(core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}

func (Plane) String() string { return "plane" }
