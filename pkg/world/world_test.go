package world

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const colorTolerance = 1e-4

func assertColor(t *testing.T, expected, got core.Color) {
	t.Helper()
	if math.Abs(expected.R-got.R) > colorTolerance ||
		math.Abs(expected.G-got.G) > colorTolerance ||
		math.Abs(expected.B-got.B) > colorTolerance {
		t.Errorf("Expected color %v, got %v", expected, got)
	}
}

func mustTransform(t *testing.T, s *geometry.Shape, transform core.Matrix4) *geometry.Shape {
	t.Helper()
	moved, err := s.WithTransform(transform)
	if err != nil {
		t.Fatalf("WithTransform failed: %v", err)
	}
	return moved
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()

	if len(w.Lights) != 1 || w.Lights[0].Position != core.Point(-10, 10, -10) || w.Lights[0].Intensity != core.White {
		t.Errorf("Unexpected lights: %+v", w.Lights)
	}
	if len(w.Shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(w.Shapes))
	}
	if w.Shapes[0].Material.Color != core.NewColor(0.8, 1.0, 0.6) {
		t.Errorf("Unexpected outer colour %v", w.Shapes[0].Material.Color)
	}
	if w.Shapes[1].Transform() != core.Scaling(0.5, 0.5, 0.5) {
		t.Errorf("Unexpected inner transform %v", w.Shapes[1].Transform())
	}
}

func TestWorld_Intersect(t *testing.T) {
	w := DefaultWorld()
	xs := w.Intersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)))

	expected := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, e := range expected {
		if !core.FloatEqual(xs[i].T, e) {
			t.Errorf("Intersection %d: expected t=%f, got %f", i, e, xs[i].T)
		}
	}
}

func TestWorld_IsShadowed(t *testing.T) {
	w := DefaultWorld()
	light := w.Lights[0]

	tests := []struct {
		name     string
		point    core.Tuple
		expected bool
	}{
		{"nothing collinear", core.Point(0, 10, 0), false},
		{"object between point and light", core.Point(10, -10, 10), true},
		{"object behind the light", core.Point(-20, 20, -20), false},
		{"object behind the point", core.Point(-2, 2, -2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsShadowed(tt.point, light); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWorld_IsShadowedIgnoresShadowlessShapes(t *testing.T) {
	w := DefaultWorld()
	for i, s := range w.Shapes {
		w.Shapes[i] = s.WithoutShadows()
	}

	if w.IsShadowed(core.Point(10, -10, 10), w.Lights[0]) {
		t.Error("Shapes without shadows should not block the light")
	}
}

func TestWorld_ColorAt(t *testing.T) {
	w := DefaultWorld()

	miss := w.ColorAt(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 1, 0)), 5)
	assertColor(t, core.Black, miss)

	hit := w.ColorAt(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)), 5)
	assertColor(t, core.NewColor(0.38066, 0.47583, 0.2855), hit)

	w.Background = core.NewColor(0.2, 0.3, 0.4)
	miss = w.ColorAt(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 1, 0)), 5)
	assertColor(t, core.NewColor(0.2, 0.3, 0.4), miss)
}

func TestWorld_ColorAtIntersectionBehindRay(t *testing.T) {
	w := DefaultWorld()
	w.Shapes[0] = w.Shapes[0].WithMaterial(w.Shapes[0].Material.WithAmbient(1))
	w.Shapes[1] = w.Shapes[1].WithMaterial(w.Shapes[1].Material.WithAmbient(1))

	got := w.ColorAt(core.NewRay(core.Point(0, 0, 0.75), core.Vector(0, 0, -1)), 5)
	assertColor(t, w.Shapes[1].Material.Color, got)
}

func TestWorld_ShadeHit(t *testing.T) {
	t.Run("outside", func(t *testing.T) {
		w := DefaultWorld()
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		hit := geometry.Intersection{T: 4, Shape: w.Shapes[0]}
		comps := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
		assertColor(t, core.NewColor(0.38066, 0.47583, 0.2855), w.ShadeHit(comps, 5))
	})

	t.Run("inside", func(t *testing.T) {
		w := DefaultWorld()
		w.Lights = []lights.PointLight{lights.NewPointLight(core.Point(0, 0.25, 0), core.White)}
		ray := core.NewRay(core.Origin, core.Vector(0, 0, 1))
		hit := geometry.Intersection{T: 0.5, Shape: w.Shapes[1]}
		comps := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
		assertColor(t, core.NewColor(0.90498, 0.90498, 0.90498), w.ShadeHit(comps, 5))
	})

	t.Run("in shadow", func(t *testing.T) {
		w := New()
		w.AddLight(lights.NewPointLight(core.Point(0, 0, -10), core.White))
		s2 := mustTransform(t, geometry.NewSphere(), core.Translation(0, 0, 10))
		w.Add(geometry.NewSphere(), s2)

		ray := core.NewRay(core.Point(0, 0, 5), core.Vector(0, 0, 1))
		hit := geometry.Intersection{T: 4, Shape: s2}
		comps := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
		assertColor(t, core.NewColor(0.1, 0.1, 0.1), w.ShadeHit(comps, 5))
	})

	t.Run("sums every light", func(t *testing.T) {
		w := DefaultWorld()
		w.AddLight(w.Lights[0])
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		hit := geometry.Intersection{T: 4, Shape: w.Shapes[0]}
		comps := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
		assertColor(t, core.NewColor(0.38066, 0.47583, 0.2855).Multiply(2), w.ShadeHit(comps, 5))
	})
}

func reflectivePlaneWorld(t *testing.T) (*World, *geometry.Shape) {
	t.Helper()
	w := DefaultWorld()
	floor := mustTransform(t, geometry.NewPlane(), core.Translation(0, -1, 0))
	floor = floor.WithMaterial(material.DefaultMaterial().WithReflective(0.5))
	w.Add(floor)
	return w, floor
}

func TestWorld_ReflectedColor(t *testing.T) {
	h := math.Sqrt2 / 2
	ray := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -h, h))

	t.Run("non-reflective surface", func(t *testing.T) {
		w := DefaultWorld()
		inner := w.Shapes[1].WithMaterial(w.Shapes[1].Material.WithAmbient(1))
		w.Shapes[1] = inner
		r := core.NewRay(core.Origin, core.Vector(0, 0, 1))
		hit := geometry.Intersection{T: 1, Shape: inner}
		comps := geometry.PrepareComputations(hit, r, geometry.Intersections{hit})
		assertColor(t, core.Black, w.ReflectedColor(comps, 5))
	})

	t.Run("reflective surface", func(t *testing.T) {
		w, floor := reflectivePlaneWorld(t)
		hit := geometry.Intersection{T: math.Sqrt2, Shape: floor}
		comps := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
		assertColor(t, core.NewColor(0.19032, 0.2379, 0.14274), w.ReflectedColor(comps, 5))
	})

	t.Run("shade hit includes reflection", func(t *testing.T) {
		w, floor := reflectivePlaneWorld(t)
		hit := geometry.Intersection{T: math.Sqrt2, Shape: floor}
		comps := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
		assertColor(t, core.NewColor(0.87677, 0.92436, 0.82918), w.ShadeHit(comps, 5))
	})

	t.Run("no bounces remaining", func(t *testing.T) {
		w, floor := reflectivePlaneWorld(t)
		hit := geometry.Intersection{T: math.Sqrt2, Shape: floor}
		comps := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
		assertColor(t, core.Black, w.ReflectedColor(comps, 0))
	})
}

func TestWorld_MutuallyReflectiveSurfacesTerminate(t *testing.T) {
	w := New()
	w.AddLight(lights.NewPointLight(core.Origin, core.White))
	mirror := material.DefaultMaterial().WithReflective(1)
	lower := mustTransform(t, geometry.NewPlane(), core.Translation(0, -1, 0)).WithMaterial(mirror)
	upper := mustTransform(t, geometry.NewPlane(), core.Translation(0, 1, 0)).WithMaterial(mirror)
	w.Add(lower, upper)

	got := w.ColorAt(core.NewRay(core.Origin, core.Vector(0, 1, 0)), 5)
	if math.IsNaN(got.R) || math.IsInf(got.R, 0) {
		t.Fatalf("Expected a finite colour, got %v", got)
	}
	if got.R <= 0 {
		t.Errorf("Expected light to accumulate across bounces, got %v", got)
	}
}

func TestWorld_RefractedColor(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	t.Run("opaque surface", func(t *testing.T) {
		w := DefaultWorld()
		s := w.Shapes[0]
		xs := geometry.Intersections{{T: 4, Shape: s}, {T: 6, Shape: s}}
		comps := geometry.PrepareComputations(xs[0], ray, xs)
		assertColor(t, core.Black, w.RefractedColor(comps, 5))
	})

	t.Run("no bounces remaining", func(t *testing.T) {
		w := DefaultWorld()
		s := w.Shapes[0].WithMaterial(w.Shapes[0].Material.WithTransparency(1).WithRefractiveIndex(1.5))
		w.Shapes[0] = s
		xs := geometry.Intersections{{T: 4, Shape: s}, {T: 6, Shape: s}}
		comps := geometry.PrepareComputations(xs[0], ray, xs)
		assertColor(t, core.Black, w.RefractedColor(comps, 0))
	})

	t.Run("total internal reflection", func(t *testing.T) {
		w := DefaultWorld()
		s := w.Shapes[0].WithMaterial(w.Shapes[0].Material.WithTransparency(1).WithRefractiveIndex(1.5))
		w.Shapes[0] = s
		h := math.Sqrt2 / 2
		r := core.NewRay(core.Point(0, 0, h), core.Vector(0, 1, 0))
		xs := geometry.Intersections{{T: -h, Shape: s}, {T: h, Shape: s}}
		comps := geometry.PrepareComputations(xs[1], r, xs)
		assertColor(t, core.Black, w.RefractedColor(comps, 5))
	})
}

func transparentFloorWorld(t *testing.T, reflective float64) (*World, *geometry.Shape) {
	t.Helper()
	w := DefaultWorld()

	floor := mustTransform(t, geometry.NewPlane(), core.Translation(0, -1, 0)).WithMaterial(
		material.DefaultMaterial().
			WithTransparency(0.5).
			WithReflective(reflective).
			WithRefractiveIndex(1.5),
	)
	ball := mustTransform(t, geometry.NewSphere(), core.Translation(0, -3.5, -0.5)).WithMaterial(
		material.DefaultMaterial().
			WithColor(core.NewColor(1, 0, 0)).
			WithAmbient(0.5),
	)
	w.Add(floor, ball)
	return w, floor
}

func TestWorld_ShadeHitTransparent(t *testing.T) {
	h := math.Sqrt2 / 2
	ray := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -h, h))

	w, floor := transparentFloorWorld(t, 0)
	xs := geometry.Intersections{{T: math.Sqrt2, Shape: floor}}
	comps := geometry.PrepareComputations(xs[0], ray, xs)
	assertColor(t, core.NewColor(0.93642, 0.68642, 0.68642), w.ShadeHit(comps, 5))
}

func TestWorld_ShadeHitFresnel(t *testing.T) {
	h := math.Sqrt2 / 2
	ray := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -h, h))

	w, floor := transparentFloorWorld(t, 0.5)
	w.Fresnel = true
	xs := geometry.Intersections{{T: math.Sqrt2, Shape: floor}}
	comps := geometry.PrepareComputations(xs[0], ray, xs)
	assertColor(t, core.NewColor(0.93391, 0.69643, 0.69243), w.ShadeHit(comps, 5))
}

func TestWorld_Trace(t *testing.T) {
	w := DefaultWorld()

	comps, ok := w.Trace(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)))
	if !ok {
		t.Fatal("Expected a hit")
	}
	if comps.Shape != w.Shapes[0] || !core.FloatEqual(comps.T, 4) {
		t.Errorf("Expected outer sphere at t=4, got %v at t=%f", comps.Shape, comps.T)
	}

	if _, ok := w.Trace(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, -1))); ok {
		t.Error("Expected no hit for a ray pointing away from the world")
	}
}
