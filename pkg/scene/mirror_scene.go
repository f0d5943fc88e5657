package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene places a row of spheres between two parallel mirrors. The
// reflections repeat until the bounce budget runs out, so MaxDepth controls
// how far the corridor appears to go.
func NewMirrorScene(logger core.Logger) *Scene {
	b := newBuilder(logger)
	b.light(core.Point(0, 6, -2), core.White)

	floor := b.pattern(
		material.Checker{A: core.NewColor(0.7, 0.7, 0.7), B: core.NewColor(0.3, 0.3, 0.3)},
		core.Identity,
	)
	b.add(geometry.NewPlane(), core.Identity,
		material.DefaultMaterial().
			WithPattern(floor).
			WithSpecular(0))

	mirror := material.DefaultMaterial().
		WithColor(core.NewColor(0.05, 0.05, 0.08)).
		WithAmbient(0).
		WithDiffuse(0.05).
		WithReflective(0.95)
	// The mirrors stand at x = ±3, facing each other
	b.add(geometry.NewPlane(), core.RotationZ(math.Pi/2).Translate(-3, 0, 0), mirror)
	b.add(geometry.NewPlane(), core.RotationZ(math.Pi/2).Translate(3, 0, 0), mirror)

	colors := []core.Color{
		core.NewColor(0.9, 0.2, 0.2),
		core.NewColor(0.2, 0.9, 0.2),
		core.NewColor(0.2, 0.3, 0.9),
	}
	for i, c := range colors {
		z := float64(i) * 1.5
		b.add(geometry.NewSphere(), core.Scaling(0.5, 0.5, 0.5).Translate(float64(i-1)*1.2, 0.5, z),
			material.DefaultMaterial().
				WithColor(c).
				WithDiffuse(0.7).
				WithSpecular(0.5))
	}

	return &Scene{
		Name:        "mirrors",
		Description: "Facing mirrors whose repeated reflections stop at the bounce limit",
		World:       b.world,
		CameraConfig: CameraConfig{
			From: core.Point(1.5, 2, -6),
			To:   core.Point(-1, 0.8, 1),
			Up:   core.Vector(0, 1, 0),
			FOV:  60,
		},
		RenderConfig: RenderConfig{Width: 400, Height: 225, MaxDepth: 10},
	}
}
