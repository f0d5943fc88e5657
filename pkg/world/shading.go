package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ColorAt returns the colour seen along ray. remaining bounds how many more
// reflection or refraction bounces may be followed; each bounce uses one.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	comps, ok := w.Trace(ray)
	if !ok {
		return w.Background
	}
	return w.ShadeHit(comps, remaining)
}

// ShadeHit sums the Phong contribution of every light at the hit, then adds
// the reflected and refracted colours
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	shape := comps.Shape
	m := shape.Material

	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(m.Lighting(shape, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if w.Fresnel && m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Reflectance()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor follows the mirror bounce off a reflective surface
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Shape.Material.Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	ray := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(ray, remaining-1).Multiply(reflective)
}

// RefractedColor follows the transmitted ray through a transparent surface
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Shape.Material.Transparency
	if remaining <= 0 || transparency == 0 || comps.Indices.TIR {
		return core.Black
	}

	direction := comps.Indices.RefractedDirection(comps.EyeV, comps.NormalV)
	ray := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(ray, remaining-1).Multiply(transparency)
}
