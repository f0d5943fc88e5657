package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an infinitely small light source with no size and no falloff
type PointLight struct {
	Position  core.Tuple // World-space position
	Intensity core.Color // Brightness and colour of the light
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit vector from point towards the light and the
// distance between them
func (l PointLight) DirectionFrom(point core.Tuple) (core.Tuple, float64) {
	v := l.Position.Subtract(point)
	distance := v.Length()
	return v.Multiply(1 / distance), distance
}
