package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a room with a checkered floor, a striped back wall,
// a glass sphere, a mirror sphere and a ringed sphere
func NewDefaultScene(logger core.Logger) *Scene {
	b := newBuilder(logger)
	b.light(core.Point(-10, 10, -10), core.White)

	// Floor with a gently reflective checker pattern
	checker := b.pattern(
		material.Checker{A: core.NewColor(0.9, 0.9, 0.9), B: core.NewColor(0.2, 0.2, 0.25)},
		core.Scaling(0.5, 0.5, 0.5),
	)
	b.add(geometry.NewPlane(), core.Identity,
		material.DefaultMaterial().
			WithPattern(checker).
			WithSpecular(0).
			WithReflective(0.1))

	// Back wall
	stripes := b.pattern(
		material.Stripe{A: core.NewColor(0.8, 0.5, 0.3), B: core.NewColor(0.9, 0.7, 0.5)},
		core.RotationY(math.Pi/2).Scale(0.25, 0.25, 0.25),
	)
	b.add(geometry.NewPlane(), core.RotationX(math.Pi/2).Translate(0, 0, 10),
		material.DefaultMaterial().
			WithPattern(stripes).
			WithSpecular(0))

	// Glass sphere in the middle
	b.add(geometry.NewSphere(), core.Translation(-0.5, 1, 0.5),
		material.NewGlass().
			WithColor(core.NewColor(0.1, 0.1, 0.1)).
			WithAmbient(0).
			WithDiffuse(0.1).
			WithShininess(300).
			WithReflective(0.9))

	// Mirror sphere on the right
	b.add(geometry.NewSphere(), core.Scaling(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5),
		material.DefaultMaterial().
			WithColor(core.NewColor(0.2, 0.2, 0.2)).
			WithDiffuse(0.3).
			WithReflective(0.8))

	// Ringed sphere on the left
	rings := b.pattern(
		material.Ring{A: core.NewColor(0.1, 0.6, 0.3), B: core.NewColor(0.9, 0.9, 0.4)},
		core.Scaling(0.15, 0.15, 0.15).RotateX(math.Pi/4),
	)
	b.add(geometry.NewSphere(), core.Scaling(0.33, 0.33, 0.33).Translate(-1.8, 0.33, -0.75),
		material.DefaultMaterial().
			WithPattern(rings).
			WithDiffuse(0.7).
			WithSpecular(0.3))

	return &Scene{
		Name:        "default",
		Description: "Checkered room with glass, mirror and patterned spheres",
		World:       b.world,
		CameraConfig: CameraConfig{
			From: core.Point(0, 1.5, -5),
			To:   core.Point(0, 1, 0),
			Up:   core.Vector(0, 1, 0),
			FOV:  60,
		},
		RenderConfig: RenderConfig{Width: 400, Height: 225, MaxDepth: 5},
	}
}
