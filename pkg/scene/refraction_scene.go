package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewRefractionScene creates nested transparent solids in front of a checker
// backdrop: a glass sphere holding an air bubble, a water sphere overlapping
// a diamond cube, all blended with Fresnel reflectance
func NewRefractionScene(logger core.Logger) *Scene {
	b := newBuilder(logger)
	b.light(core.Point(2, 10, -5), core.NewColor(0.9, 0.9, 0.9))
	b.world.Fresnel = true

	backdrop := b.pattern(
		material.Checker{A: core.NewColor(0.15, 0.15, 0.15), B: core.NewColor(0.85, 0.85, 0.85)},
		core.Identity,
	)
	b.add(geometry.NewPlane(), core.RotationX(math.Pi/2).Translate(0, 0, 10),
		material.DefaultMaterial().
			WithPattern(backdrop).
			WithAmbient(0.8).
			WithDiffuse(0.2).
			WithSpecular(0))

	glass := material.NewGlass().
		WithColor(core.White).
		WithAmbient(0).
		WithDiffuse(0).
		WithSpecular(0.9).
		WithShininess(300).
		WithReflective(0.9)

	// The bubble is never a shadow caster, so light reaches the glass around it
	b.add(geometry.NewSphere(), core.Translation(-1, 1, 0), glass)
	bubble := b.place(geometry.NewSphere(), core.Scaling(0.5, 0.5, 0.5).Translate(-1, 1, 0)).
		WithMaterial(glass.WithRefractiveIndex(material.Air)).
		WithoutShadows()
	b.world.Add(bubble)

	b.add(geometry.NewSphere(), core.Scaling(0.8, 0.8, 0.8).Translate(1.2, 1, 0.5),
		glass.WithRefractiveIndex(material.Water).
			WithColor(core.NewColor(0.2, 0.3, 0.5)))
	b.add(geometry.NewCube(), core.Scaling(0.4, 0.4, 0.4).RotateY(math.Pi/5).Translate(1.2, 0.6, 0.2),
		glass.WithRefractiveIndex(material.Diamond))

	return &Scene{
		Name:        "refraction",
		Description: "Nested glass, water and diamond solids over a checker backdrop",
		World:       b.world,
		CameraConfig: CameraConfig{
			From: core.Point(0, 1.2, -5),
			To:   core.Point(0, 1, 0),
			Up:   core.Vector(0, 1, 0),
			FOV:  45,
		},
		RenderConfig: RenderConfig{Width: 400, Height: 300, MaxDepth: 6},
	}
}
