package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning -1..1 on every axis
type Cube struct{}

// localIntersect is the slab test: the ray is inside the cube between the
// largest entry distance and the smallest exit distance of the three slabs
func (Cube) localIntersect(ray core.Ray) []float64 {
	xMin, xMax := checkAxis(ray.Origin.X, ray.Direction.X)
	yMin, yMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	zMin, zMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xMin, math.Max(yMin, zMin))
	tMax := math.Min(xMax, math.Min(yMax, zMax))
	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// checkAxis returns the distances at which the ray crosses the -1 and 1 faces
// of one slab. A direction component near zero makes the crossings infinite:
// an origin inside the slab, faces included, spans (-Inf, +Inf) and an origin
// outside it yields an empty interval.
func checkAxis(origin, direction float64) (float64, float64) {
	minNumerator := -1 - origin
	maxNumerator := 1 - origin

	if math.Abs(direction) < core.Epsilon {
		tMin, tMax := math.Inf(-1), math.Inf(1)
		if minNumerator > 0 {
			tMin = math.Inf(1)
		}
		if maxNumerator < 0 {
			tMax = math.Inf(-1)
		}
		return tMin, tMax
	}

	tMin := minNumerator / direction
	tMax := maxNumerator / direction

	if tMin > tMax {
		return tMax, tMin
	}
	return tMin, tMax
}

// localNormalAt picks the face whose axis has the largest absolute coordinate.
// Ties at edges and corners resolve in x, y, z order.
func (Cube) localNormalAt(point core.Tuple) core.Tuple {
	ax, ay, az := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(ax, math.Max(ay, az))

	switch maxc {
	case ax:
		return core.Vector(point.X, 0, 0)
	case ay:
		return core.Vector(0, point.Y, 0)
	default:
		return core.Vector(0, 0, point.Z)
	}
}

func (Cube) String() string { return "cube" }
