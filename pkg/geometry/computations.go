package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Computations is the shading context derived from a hit
type Computations struct {
	T     float64
	Shape *Shape

	Point   core.Tuple
	EyeV    core.Tuple
	NormalV core.Tuple
	Inside  bool

	// OverPoint and UnderPoint sit just above and below the surface so that
	// shadow and refraction rays do not hit the surface they start from
	OverPoint  core.Tuple
	UnderPoint core.Tuple

	ReflectV core.Tuple
	Indices  RefractiveIndices
}

// PrepareComputations builds the shading context for hit. xs must be the full
// sorted intersection list the hit was taken from; it determines which
// transparent shapes the ray is inside on either side of the surface.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:     hit.T,
		Shape: hit.Shape,
		Point: hit.Position(ray),
		EyeV:  ray.Direction.Negate(),
	}

	comps.NormalV = hit.Shape.NormalAt(comps.Point)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	n1, n2 := refractiveIndices(hit, xs)
	comps.Indices = NewRefractiveIndices(n1, n2, comps.EyeV, comps.NormalV)
	return comps
}

// refractiveIndices walks the sorted intersections keeping a stack of the
// shapes the ray is currently inside. n1 is the index of the innermost
// container before the hit and n2 the innermost container after it; an empty
// stack means vacuum.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1, 1
	var containers []*Shape

	innermost := func() float64 {
		if len(containers) == 0 {
			return 1
		}
		return containers[len(containers)-1].Material.RefractiveIndex
	}

	for _, x := range xs {
		isHit := x.Is(hit)
		if isHit {
			n1 = innermost()
		}

		if idx := indexOfShape(containers, x.Shape); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if isHit {
			n2 = innermost()
			break
		}
	}
	return n1, n2
}

func indexOfShape(shapes []*Shape, s *Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// RefractiveIndices describes the interface between the medium the ray leaves (N1)
// and the medium it enters (N2), with the angles Snell's law gives for it
type RefractiveIndices struct {
	N1, N2 float64
	Ratio  float64 // N1 / N2
	Cos1   float64 // cosine of the incidence angle
	Cos2   float64 // cosine of the transmission angle, zero under total internal reflection
	TIR    bool    // total internal reflection
}

// NewRefractiveIndices computes the refraction angles for the eye and normal vectors
func NewRefractiveIndices(n1, n2 float64, eye, normal core.Tuple) RefractiveIndices {
	ri := RefractiveIndices{N1: n1, N2: n2, Ratio: n1 / n2}

	ri.Cos1 = eye.Dot(normal)
	sin2Squared := ri.Ratio * ri.Ratio * (1 - ri.Cos1*ri.Cos1)
	if sin2Squared > 1 {
		ri.TIR = true
		return ri
	}
	ri.Cos2 = math.Sqrt(1 - sin2Squared)
	return ri
}

// RefractedDirection returns the direction of the transmitted ray
func (ri RefractiveIndices) RefractedDirection(eye, normal core.Tuple) core.Tuple {
	return normal.Multiply(ri.Ratio*ri.Cos1 - ri.Cos2).Subtract(eye.Multiply(ri.Ratio))
}

// Reflectance is Schlick's approximation of the fraction of light reflected
// at the interface. It is 1 under total internal reflection.
func (ri RefractiveIndices) Reflectance() float64 {
	if ri.TIR {
		return 1
	}

	cos := ri.Cos1
	if ri.N1 > ri.N2 {
		cos = ri.Cos2
	}

	r0 := (ri.N1 - ri.N2) / (ri.N1 + ri.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}

// Reflectance is shorthand for comps.Indices.Reflectance()
func (comps Computations) Reflectance() float64 {
	return comps.Indices.Reflectance()
}
