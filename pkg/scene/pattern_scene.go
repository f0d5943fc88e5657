package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewPatternScene shows every pattern kind: a Perlin-perturbed floor, a nested
// radial-gradient/checker wall and one sphere per basic pattern
func NewPatternScene(logger core.Logger) *Scene {
	b := newBuilder(logger)
	b.light(core.Point(-5, 8, -8), core.White)

	// Floor: stripes wobbled by noise
	floorStripes := b.pattern(
		material.Stripe{A: core.NewColor(0.25, 0.45, 0.25), B: core.NewColor(0.65, 0.8, 0.5)},
		core.Scaling(0.4, 0.4, 0.4).RotateY(math.Pi/6),
	)
	b.add(geometry.NewPlane(), core.Identity,
		material.DefaultMaterial().
			WithPattern(material.NewPerlinPattern(floorStripes, 0.6)).
			WithSpecular(0))

	// Wall: a radial gradient averaged with a checker
	radial := b.pattern(
		material.RadialGradient{A: core.NewColor(1, 0.4, 0.1), B: core.NewColor(0.1, 0.2, 0.8)},
		core.Scaling(3, 3, 3),
	)
	wallChecker := b.pattern(material.Checker{A: core.White, B: core.Black}, core.Identity)
	b.add(geometry.NewPlane(), core.RotationX(math.Pi/2).Translate(0, 0, 6),
		material.DefaultMaterial().
			WithPattern(material.NewNestedPattern(radial, wallChecker)).
			WithSpecular(0))

	spheres := []struct {
		kind material.PatternKind
		x    float64
	}{
		{material.Gradient{A: core.NewColor(1, 0, 0), B: core.NewColor(1, 1, 0)}, -2.4},
		{material.Ring{A: core.NewColor(0.9, 0.9, 0.9), B: core.NewColor(0.4, 0.2, 0.1)}, -0.8},
		{material.Stripe{A: core.NewColor(0.1, 0.1, 0.6), B: core.NewColor(0.9, 0.9, 0.9)}, 0.8},
		{material.Checker{A: core.NewColor(0.8, 0.1, 0.5), B: core.NewColor(0.1, 0.8, 0.5)}, 2.4},
	}
	for _, s := range spheres {
		p := b.pattern(s.kind, core.Scaling(0.2, 0.2, 0.2).Translate(1, 0, 0))
		b.add(geometry.NewSphere(), core.Scaling(0.7, 0.7, 0.7).Translate(s.x, 0.7, 0),
			material.DefaultMaterial().
				WithPattern(p).
				WithDiffuse(0.8).
				WithSpecular(0.4))
	}

	// A solid-coloured marble made of noise-perturbed gradients
	marbleBase := b.pattern(
		material.Gradient{A: core.NewColor(0.95, 0.95, 0.9), B: core.NewColor(0.3, 0.3, 0.35)},
		core.Scaling(0.3, 0.3, 0.3).RotateZ(math.Pi/3),
	)
	b.add(geometry.NewSphere(), core.Scaling(0.45, 0.45, 0.45).Translate(0, 0.45, -1.6),
		material.DefaultMaterial().
			WithPattern(material.NewPerlinPattern(marbleBase, 1.2)).
			WithReflective(0.2))

	return &Scene{
		Name:        "patterns",
		Description: "Perlin, nested and basic patterns on planes and spheres",
		World:       b.world,
		CameraConfig: CameraConfig{
			From: core.Point(0, 2.5, -6.5),
			To:   core.Point(0, 0.8, 0),
			Up:   core.Vector(0, 1, 0),
			FOV:  55,
		},
		RenderConfig: RenderConfig{Width: 480, Height: 270, MaxDepth: 3},
	}
}
