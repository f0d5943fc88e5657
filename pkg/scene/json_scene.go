package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// FromFile loads a JSON scene description and builds a scene from it
func FromFile(filename string, logger core.Logger) (*Scene, error) {
	sf, err := loaders.LoadSceneJSON(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	return FromSceneFile(sf, logger), nil
}

// FromSceneFile builds a scene from a parsed description. Transforms that
// cannot be inverted are logged and replaced by the identity.
func FromSceneFile(sf *loaders.SceneFile, logger core.Logger) *Scene {
	b := newBuilder(logger)
	b.dir = sf.Dir

	if sf.Background != nil {
		b.world.Background = sf.Background.Color()
	}
	b.world.Fresnel = sf.Fresnel

	for _, l := range sf.Lights {
		intensity := core.White
		if l.Intensity != nil {
			intensity = l.Intensity.Color()
		}
		b.light(l.Position.Point(), intensity)
	}

	for i, spec := range sf.Shapes {
		shape := b.shape(spec.Type)
		if shape == nil {
			b.logger.Printf("Warning: shape %d: unknown type %q; skipped\n", i, spec.Type)
			continue
		}
		m := b.material(spec.Material)
		placed := b.place(shape, b.matrix(spec.Transform)).WithMaterial(m)
		if spec.CastShadows != nil && !*spec.CastShadows {
			placed = placed.WithoutShadows()
		}
		b.world.Add(placed)
	}

	up := core.Vector(0, 1, 0)
	if sf.Camera.Up != nil {
		up = sf.Camera.Up.Vector()
	}
	fov := sf.Camera.FOV
	if fov <= 0 {
		fov = loaders.DefaultFOV
	}

	return &Scene{
		Name:        sf.Name,
		Description: sf.Description,
		World:       b.world,
		CameraConfig: CameraConfig{
			From: sf.Camera.From.Point(),
			To:   sf.Camera.To.Point(),
			Up:   up,
			FOV:  fov,
		},
		RenderConfig: MergeRenderConfig(
			RenderConfig{Width: loaders.DefaultWidth, Height: loaders.DefaultHeight, MaxDepth: loaders.DefaultMaxDepth},
			RenderConfig{Width: sf.Width, Height: sf.Height, MaxDepth: sf.MaxDepth},
		),
	}
}

func (b *builder) shape(kind string) *geometry.Shape {
	switch kind {
	case "sphere":
		return geometry.NewSphere()
	case "plane":
		return geometry.NewPlane()
	case "cube":
		return geometry.NewCube()
	}
	return nil
}

// matrix composes a transform list; a malformed list logs and yields the identity
func (b *builder) matrix(t loaders.Transform) core.Matrix4 {
	m, err := t.Matrix()
	if err != nil {
		b.logger.Printf("Warning: %v; using identity transform\n", err)
		return core.Identity
	}
	return m
}

func (b *builder) material(spec *loaders.MaterialSpec) material.Material {
	m := material.DefaultMaterial()
	if spec == nil {
		return m
	}
	if spec.Preset == "glass" {
		m = material.NewGlass()
	}

	if spec.Color != nil {
		m = m.WithColor(spec.Color.Color())
	}
	if spec.Ambient != nil {
		m = m.WithAmbient(*spec.Ambient)
	}
	if spec.Diffuse != nil {
		m = m.WithDiffuse(*spec.Diffuse)
	}
	if spec.Specular != nil {
		m = m.WithSpecular(*spec.Specular)
	}
	if spec.Shininess != nil {
		m = m.WithShininess(*spec.Shininess)
	}
	if spec.Reflective != nil {
		m = m.WithReflective(*spec.Reflective)
	}
	if spec.Transparency != nil {
		m = m.WithTransparency(*spec.Transparency)
	}
	if spec.RefractiveIndex != nil {
		m = m.WithRefractiveIndex(*spec.RefractiveIndex)
	}
	if spec.Pattern != nil {
		m = m.WithPattern(b.patternFromSpec(*spec.Pattern))
	}
	return m
}

// patternFromSpec builds a pattern tree. Specs are validated by the loader;
// a missing colour reads as black.
func (b *builder) patternFromSpec(spec loaders.PatternSpec) *material.Pattern {
	color := func(i int) core.Color {
		if i < len(spec.Colors) {
			return spec.Colors[i].Color()
		}
		return core.Black
	}

	var kind material.PatternKind
	switch spec.Type {
	case "solid":
		kind = material.Solid{Color: color(0)}
	case "stripe":
		kind = material.Stripe{A: color(0), B: color(1)}
	case "gradient":
		kind = material.Gradient{A: color(0), B: color(1)}
	case "ring":
		kind = material.Ring{A: color(0), B: color(1)}
	case "checker":
		kind = material.Checker{A: color(0), B: color(1)}
	case "radial-gradient":
		kind = material.RadialGradient{A: color(0), B: color(1)}
	case "perlin":
		inner := material.NewSolidPattern(core.Black)
		if spec.Inner != nil {
			inner = b.patternFromSpec(*spec.Inner)
		}
		kind = material.Perlin{Inner: inner, Scale: spec.Scale}
	case "nested":
		chain := make([]*material.Pattern, 0, len(spec.Patterns))
		for _, p := range spec.Patterns {
			chain = append(chain, b.patternFromSpec(p))
		}
		kind = material.Nested{Patterns: chain}
	case "image":
		kind = b.imageTexture(spec)
	default:
		b.logger.Printf("Warning: unknown pattern type %q; using solid black\n", spec.Type)
		kind = material.Solid{Color: core.Black}
	}
	return b.pattern(kind, b.matrix(spec.Transform))
}

// imageTexture loads the image of an image pattern. A missing or unreadable
// file logs a warning and paints the surface black.
func (b *builder) imageTexture(spec loaders.PatternSpec) material.PatternKind {
	mapping, err := material.ParseUVMapping(spec.Mapping)
	if err != nil {
		b.logger.Printf("Warning: %v; using spherical mapping\n", err)
	}

	path := spec.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.dir, path)
	}
	img, err := loaders.LoadImage(path)
	if err != nil {
		b.logger.Printf("Warning: image pattern %s: %v; using solid black\n", spec.File, err)
		return material.Solid{Color: core.Black}
	}
	b.logger.Printf("Loaded texture %s (%dx%d, %s mapping)\n", spec.File, img.Width, img.Height, mapping)

	return material.ImageTexture{
		Width:   img.Width,
		Height:  img.Height,
		Pixels:  img.Pixels,
		Mapping: mapping,
	}
}
