package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World is an ordered collection of shapes and point lights
type World struct {
	Shapes     []*geometry.Shape
	Lights     []lights.PointLight
	Background core.Color // Colour returned by rays that hit nothing

	// Fresnel blends the reflected and refracted contributions of surfaces that
	// are both reflective and transparent by their Schlick reflectance, instead
	// of adding them at full strength.
	Fresnel bool
}

// New creates an empty world with a black background
func New() *World {
	return &World{Background: core.Black}
}

// DefaultWorld returns the reference scene: one white light and two
// concentric spheres, the outer one green-tinted and matte
func DefaultWorld() *World {
	w := New()
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	outer := geometry.NewSphere().WithMaterial(
		material.DefaultMaterial().
			WithColor(core.NewColor(0.8, 1.0, 0.6)).
			WithDiffuse(0.7).
			WithSpecular(0.2),
	)
	// Scaling(0.5, 0.5, 0.5) is always invertible
	inner, _ := geometry.NewSphere().WithTransform(core.Scaling(0.5, 0.5, 0.5))

	w.Add(outer, inner)
	return w
}

// Add appends shapes to the world
func (w *World) Add(shapes ...*geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// AddLight appends lights to the world
func (w *World) AddLight(l ...lights.PointLight) {
	w.Lights = append(w.Lights, l...)
}

// Intersect returns every intersection of ray with every shape, sorted by distance
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, s := range w.Shapes {
		xs = append(xs, s.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether something lies between point and light.
// Shapes built WithoutShadows never block the light.
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	direction, distance := light.DirectionFrom(point)
	xs := w.Intersect(core.NewRay(point, direction))

	for _, x := range xs {
		if x.T < 0 || !x.Shape.CastShadows {
			continue
		}
		return x.T < distance
	}
	return false
}

// Trace finds the hit for ray and prepares its shading context.
// ok is false when the ray hits nothing in front of its origin.
func (w *World) Trace(ray core.Ray) (geometry.Computations, bool) {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return geometry.Computations{}, false
	}
	return geometry.PrepareComputations(hit, ray, xs), true
}
