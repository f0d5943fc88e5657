package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCubeScene creates a table made of cubes inside a cube-shaped room, with
// a glass block that lets light through
func NewCubeScene(logger core.Logger) *Scene {
	b := newBuilder(logger)
	b.light(core.Point(0, 6.9, -5), core.NewColor(1, 1, 0.9))

	// Room: the camera and light are inside one big cube
	roomChecker := b.pattern(
		material.Checker{A: core.NewColor(0.55, 0.55, 0.55), B: core.NewColor(0.35, 0.35, 0.4)},
		core.Scaling(0.07, 0.07, 0.07),
	)
	b.add(geometry.NewCube(), core.Scaling(10, 7, 10).Translate(0, 7, 0),
		material.DefaultMaterial().
			WithPattern(roomChecker).
			WithAmbient(0.25).
			WithDiffuse(0.7).
			WithSpecular(0.9).
			WithShininess(300).
			WithReflective(0.1))

	// Table top
	wood := b.pattern(
		material.Stripe{A: core.NewColor(0.55, 0.35, 0.2), B: core.NewColor(0.45, 0.28, 0.15)},
		core.Scaling(0.05, 0.05, 0.05).RotateY(0.1),
	)
	b.add(geometry.NewCube(), core.Scaling(3, 0.1, 2).Translate(0, 3.1, 0),
		material.DefaultMaterial().
			WithPattern(wood).
			WithAmbient(0.1).
			WithDiffuse(0.7).
			WithSpecular(0.9).
			WithShininess(300).
			WithReflective(0.2))

	legMaterial := material.DefaultMaterial().
		WithColor(core.NewColor(0.5, 0.3, 0.2)).
		WithAmbient(0.2).
		WithDiffuse(0.7)
	for _, x := range []float64{-2.7, 2.7} {
		for _, z := range []float64{-1.7, 1.7} {
			b.add(geometry.NewCube(), core.Scaling(0.1, 1.5, 0.1).Translate(x, 1.5, z), legMaterial)
		}
	}

	// Items on the table
	b.add(geometry.NewCube(), core.Scaling(0.4, 0.4, 0.4).RotateY(math.Pi/9).Translate(1.5, 3.6, 0.3),
		material.DefaultMaterial().
			WithColor(core.NewColor(1, 0.3, 0.2)).
			WithDiffuse(0.6).
			WithSpecular(0.4).
			WithShininess(5))

	glassBlock := b.place(geometry.NewCube(), core.Scaling(0.3, 0.6, 0.3).RotateY(-math.Pi/7).Translate(-0.6, 3.8, -0.4)).
		WithMaterial(material.NewGlass().
			WithColor(core.Black).
			WithAmbient(0).
			WithDiffuse(0.1).
			WithReflective(0.4)).
		WithoutShadows()
	b.world.Add(glassBlock)

	b.add(geometry.NewSphere(), core.Scaling(0.35, 0.35, 0.35).Translate(-1.8, 3.55, 0.6),
		material.DefaultMaterial().
			WithColor(core.NewColor(0.1, 0.1, 0.15)).
			WithDiffuse(0.2).
			WithReflective(0.9))

	return &Scene{
		Name:        "cubes",
		Description: "A cube-built table with a glass block inside a cube room",
		World:       b.world,
		CameraConfig: CameraConfig{
			From: core.Point(8, 6, -8),
			To:   core.Point(0, 3, 0),
			Up:   core.Vector(0, 1, 0),
			FOV:  45,
		},
		RenderConfig: RenderConfig{Width: 400, Height: 200, MaxDepth: 5},
	}
}
