package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewWorldScene renders the reference two-sphere world from straight ahead
func NewWorldScene(core.Logger) *Scene {
	return &Scene{
		Name:        "world",
		Description: "Reference world: two concentric spheres and one light",
		World:       world.DefaultWorld(),
		CameraConfig: CameraConfig{
			From: core.Point(0, 0, -5),
			To:   core.Origin,
			Up:   core.Vector(0, 1, 0),
			FOV:  90,
		},
		RenderConfig: RenderConfig{Width: 200, Height: 200, MaxDepth: 5},
	}
}
