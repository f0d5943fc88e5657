package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Description  string
	World        *world.World
	CameraConfig CameraConfig
	RenderConfig RenderConfig
}

// CameraConfig places the camera
type CameraConfig struct {
	From core.Tuple // Eye position
	To   core.Tuple // Point the camera looks at
	Up   core.Tuple // Approximate up direction
	FOV  float64    // Field of view in degrees
}

// RenderConfig contains the image size and bounce budget
type RenderConfig struct {
	Width    int // Image width
	Height   int // Image height
	MaxDepth int // Reflection/refraction bounces per camera ray
}

// MergeRenderConfig returns base with every non-zero field of override applied
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	if override.MaxDepth > 0 {
		base.MaxDepth = override.MaxDepth
	}
	return base
}

// Configure applies non-zero fields of override to the render configuration
func (s *Scene) Configure(override RenderConfig) {
	s.RenderConfig = MergeRenderConfig(s.RenderConfig, override)
}

// Camera builds the camera for the current render configuration. A camera
// placement that cannot be inverted (for example From equal to To) logs a
// warning and falls back to the untransformed camera.
func (s *Scene) Camera(logger core.Logger) *renderer.Camera {
	logger = core.OrDiscard(logger)
	cfg := s.CameraConfig

	camera := renderer.NewCamera(s.RenderConfig.Width, s.RenderConfig.Height, cfg.FOV*math.Pi/180)
	view := core.ViewTransform(cfg.From, cfg.To, cfg.Up)
	placed, err := camera.WithTransform(view)
	if err != nil {
		logger.Printf("Warning: scene %q: %v; using identity camera\n", s.Name, err)
		return camera
	}
	return placed
}

// NewRaytracer creates a raytracer for the scene with its configured depth
func (s *Scene) NewRaytracer(logger core.Logger) *renderer.Raytracer {
	rt := renderer.NewRaytracer(s.Camera(logger), s.World, logger)
	config := rt.Config()
	config.MaxDepth = s.RenderConfig.MaxDepth
	rt.SetConfig(config)
	return rt
}

// ShapeCount returns the number of shapes in the scene
func (s *Scene) ShapeCount() int {
	return len(s.World.Shapes)
}

// builder collects shapes for a scene and reports transform failures through
// the logger instead of aborting
type builder struct {
	logger core.Logger
	world  *world.World
	dir    string // base directory for files referenced by the scene
}

func newBuilder(logger core.Logger) *builder {
	return &builder{logger: core.OrDiscard(logger), world: world.New()}
}

// place moves shape by transform; a singular transform leaves the shape at
// the identity and logs a warning
func (b *builder) place(shape *geometry.Shape, transform core.Matrix4) *geometry.Shape {
	moved, err := shape.WithTransform(transform)
	if err != nil {
		b.logger.Printf("Warning: %v; using identity transform\n", err)
		return shape
	}
	return moved
}

// add places and appends a shape, returning the placed instance
func (b *builder) add(shape *geometry.Shape, transform core.Matrix4, m material.Material) *geometry.Shape {
	placed := b.place(shape, transform).WithMaterial(m)
	b.world.Add(placed)
	return placed
}

// pattern creates a pattern; a singular transform falls back to the identity
func (b *builder) pattern(kind material.PatternKind, transform core.Matrix4) *material.Pattern {
	p, err := material.NewPattern(kind, transform)
	if err != nil {
		b.logger.Printf("Warning: %v; using identity transform\n", err)
		return material.NewIdentityPattern(kind)
	}
	return p
}

func (b *builder) light(position core.Tuple, intensity core.Color) {
	b.world.AddLight(lights.NewPointLight(position, intensity))
}
