package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection is a distance along a ray at which it meets Shape
type Intersection struct {
	T     float64
	Shape *Shape
}

// Intersections is a list of intersections, usually sorted by T
type Intersections []Intersection

// NewIntersections collects intersections sorted by ascending T.
// Equal T values keep their input order.
func NewIntersections(xs ...Intersection) Intersections {
	result := make(Intersections, len(xs))
	copy(result, xs)
	result.Sort()
	return result
}

// Sort orders the list in place by ascending T, keeping equal entries stable
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest non-negative T.
// On ties the earlier entry wins. ok is false when every T is negative.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if x.T < 0 {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}

// Is reports whether two intersections refer to the same shape at the same distance
func (i Intersection) Is(other Intersection) bool {
	return i.Shape == other.Shape && i.T == other.T
}

// Position returns the world-space point of the intersection along ray
func (i Intersection) Position(ray core.Ray) core.Tuple {
	return ray.At(i.T)
}
