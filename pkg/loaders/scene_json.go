package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Defaults applied to fields a scene file leaves out
const (
	DefaultWidth    = 400
	DefaultHeight   = 200
	DefaultMaxDepth = 5
	DefaultFOV      = 60.0 // degrees
)

// Vec3 is a JSON triple such as [1, 0.5, 0]
type Vec3 [3]float64

// Point converts the triple to a point
func (v Vec3) Point() core.Tuple { return core.Point(v[0], v[1], v[2]) }

// Vector converts the triple to a vector
func (v Vec3) Vector() core.Tuple { return core.Vector(v[0], v[1], v[2]) }

// Color converts the triple to a colour
func (v Vec3) Color() core.Color { return core.NewColor(v[0], v[1], v[2]) }

// SceneFile is the parsed form of a JSON scene description
type SceneFile struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Group       string      `json:"group,omitempty"` // discovery group
	Width       int         `json:"width,omitempty"`
	Height      int         `json:"height,omitempty"`
	MaxDepth    int         `json:"maxDepth,omitempty"`
	Background  *Vec3       `json:"background,omitempty"`
	Fresnel     bool        `json:"fresnel,omitempty"`
	Camera      CameraSpec  `json:"camera"`
	Lights      []LightSpec `json:"lights"`
	Shapes      []ShapeSpec `json:"shapes"`

	// Dir is the directory the file was loaded from; image patterns resolve
	// relative paths against it
	Dir string `json:"-"`
}

// CameraSpec places the camera with a view transform
type CameraSpec struct {
	FOV  float64 `json:"fov,omitempty"` // degrees
	From Vec3    `json:"from"`
	To   Vec3    `json:"to"`
	Up   *Vec3   `json:"up,omitempty"` // defaults to +y
}

// LightSpec describes a point light
type LightSpec struct {
	Position  Vec3  `json:"position"`
	Intensity *Vec3 `json:"intensity,omitempty"` // defaults to white
}

// ShapeSpec describes one shape instance
type ShapeSpec struct {
	Type        string        `json:"type"` // sphere, plane or cube
	Transform   Transform     `json:"transform,omitempty"`
	Material    *MaterialSpec `json:"material,omitempty"`
	CastShadows *bool         `json:"castShadows,omitempty"`
}

// MaterialSpec overrides fields of a base material. Unset fields keep the base value.
type MaterialSpec struct {
	Preset          string       `json:"preset,omitempty"` // "", "default" or "glass"
	Color           *Vec3        `json:"color,omitempty"`
	Ambient         *float64     `json:"ambient,omitempty"`
	Diffuse         *float64     `json:"diffuse,omitempty"`
	Specular        *float64     `json:"specular,omitempty"`
	Shininess       *float64     `json:"shininess,omitempty"`
	Reflective      *float64     `json:"reflective,omitempty"`
	Transparency    *float64     `json:"transparency,omitempty"`
	RefractiveIndex *float64     `json:"refractiveIndex,omitempty"`
	Pattern         *PatternSpec `json:"pattern,omitempty"`
}

// PatternSpec describes a pattern tree
type PatternSpec struct {
	Type      string        `json:"type"` // solid, stripe, gradient, ring, checker, radial-gradient, perlin, nested, image
	Colors    []Vec3        `json:"colors,omitempty"`
	Transform Transform     `json:"transform,omitempty"`
	Inner     *PatternSpec  `json:"inner,omitempty"`    // perlin
	Scale     float64       `json:"scale,omitempty"`    // perlin
	Patterns  []PatternSpec `json:"patterns,omitempty"` // nested
	File      string        `json:"file,omitempty"`     // image, relative to the scene file
	Mapping   string        `json:"mapping,omitempty"`  // image: spherical, planar or cylindrical
}

// TransformOp is one step of a transform; exactly one field is set.
// Rotations are in degrees.
type TransformOp struct {
	Translate *Vec3       `json:"translate,omitempty"`
	Scale     *Vec3       `json:"scale,omitempty"`
	RotateX   *float64    `json:"rotateX,omitempty"`
	RotateY   *float64    `json:"rotateY,omitempty"`
	RotateZ   *float64    `json:"rotateZ,omitempty"`
	Shear     *[6]float64 `json:"shear,omitempty"`
}

// Transform is a list of operations applied in order: the first entry acts first
type Transform []TransformOp

func degrees(d float64) float64 {
	return d * math.Pi / 180
}

// Matrix composes the operations into a single matrix
func (t Transform) Matrix() (core.Matrix4, error) {
	m := core.Identity
	for i, op := range t {
		set := 0
		if op.Translate != nil {
			m = m.Translate(op.Translate[0], op.Translate[1], op.Translate[2])
			set++
		}
		if op.Scale != nil {
			m = m.Scale(op.Scale[0], op.Scale[1], op.Scale[2])
			set++
		}
		if op.RotateX != nil {
			m = m.RotateX(degrees(*op.RotateX))
			set++
		}
		if op.RotateY != nil {
			m = m.RotateY(degrees(*op.RotateY))
			set++
		}
		if op.RotateZ != nil {
			m = m.RotateZ(degrees(*op.RotateZ))
			set++
		}
		if op.Shear != nil {
			s := op.Shear
			m = m.Shear(s[0], s[1], s[2], s[3], s[4], s[5])
			set++
		}
		if set != 1 {
			return core.Identity, fmt.Errorf("transform step %d must set exactly one operation, got %d", i, set)
		}
	}
	return m, nil
}

var (
	shapeTypes   = map[string]bool{"sphere": true, "plane": true, "cube": true}
	patternTypes = map[string]int{ // type -> required number of colours
		"solid":           1,
		"stripe":          2,
		"gradient":        2,
		"ring":            2,
		"checker":         2,
		"radial-gradient": 2,
		"perlin":          0,
		"nested":          0,
		"image":           0,
	}
)

// ParseSceneJSON decodes and validates a scene description, filling in defaults
func ParseSceneJSON(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var sf SceneFile
	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("failed to decode scene JSON: %w", err)
	}

	if sf.Width <= 0 {
		sf.Width = DefaultWidth
	}
	if sf.Height <= 0 {
		sf.Height = DefaultHeight
	}
	if sf.MaxDepth <= 0 {
		sf.MaxDepth = DefaultMaxDepth
	}
	if sf.Camera.FOV <= 0 {
		sf.Camera.FOV = DefaultFOV
	}
	if sf.Camera.FOV >= 180 {
		return nil, fmt.Errorf("camera fov must be below 180 degrees, got %g", sf.Camera.FOV)
	}
	if sf.Camera.From == sf.Camera.To {
		return nil, fmt.Errorf("camera from and to must differ")
	}

	if len(sf.Lights) == 0 {
		return nil, fmt.Errorf("scene has no lights")
	}
	for i, s := range sf.Shapes {
		if !shapeTypes[s.Type] {
			return nil, fmt.Errorf("shape %d: unknown type %q", i, s.Type)
		}
		if _, err := s.Transform.Matrix(); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		if s.Material != nil {
			if err := s.Material.validate(); err != nil {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
		}
	}
	return &sf, nil
}

func (m *MaterialSpec) validate() error {
	switch m.Preset {
	case "", "default", "glass":
	default:
		return fmt.Errorf("unknown material preset %q", m.Preset)
	}
	if m.Shininess != nil && *m.Shininess == 0 {
		return fmt.Errorf("shininess must be non-zero")
	}
	if m.RefractiveIndex != nil && *m.RefractiveIndex == 0 {
		return fmt.Errorf("refractive index must be non-zero")
	}
	if m.Pattern != nil {
		return m.Pattern.validate()
	}
	return nil
}

func (p *PatternSpec) validate() error {
	want, ok := patternTypes[p.Type]
	if !ok {
		return fmt.Errorf("unknown pattern type %q", p.Type)
	}
	if len(p.Colors) != want {
		return fmt.Errorf("%s pattern needs %d colours, got %d", p.Type, want, len(p.Colors))
	}
	if _, err := p.Transform.Matrix(); err != nil {
		return fmt.Errorf("%s pattern: %w", p.Type, err)
	}

	switch p.Type {
	case "perlin":
		if p.Inner == nil {
			return fmt.Errorf("perlin pattern needs an inner pattern")
		}
		return p.Inner.validate()
	case "nested":
		for i := range p.Patterns {
			if err := p.Patterns[i].validate(); err != nil {
				return fmt.Errorf("nested pattern %d: %w", i, err)
			}
		}
	case "image":
		if p.File == "" {
			return fmt.Errorf("image pattern needs a file")
		}
		if filepath.IsAbs(p.File) || strings.Contains(p.File, "..") {
			return fmt.Errorf("image pattern file must be a relative path without '..': %q", p.File)
		}
		if _, err := material.ParseUVMapping(p.Mapping); err != nil {
			return fmt.Errorf("image pattern: %w", err)
		}
	}
	return nil
}

// LoadSceneJSON loads and parses a JSON scene file
func LoadSceneJSON(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sf, err := ParseSceneJSON(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filename), err)
	}
	if sf.Name == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	sf.Dir = filepath.Dir(filename)
	return sf, nil
}

// validateFilePath keeps scene loading inside a scenes/ directory (or the temp
// directory, for tests) and limited to .json files
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.ToSlash(filepath.Clean(filename))
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	inScenes := strings.HasPrefix(cleanPath, "scenes/") || strings.Contains(cleanPath, "/scenes/")
	inTemp := strings.HasPrefix(cleanPath, filepath.ToSlash(os.TempDir()))
	if !inScenes && !inTemp {
		return fmt.Errorf("file path must be in scenes/ directory")
	}
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid file path: directory traversal not allowed")
	}

	if !strings.HasSuffix(strings.ToLower(cleanPath), ".json") {
		return fmt.Errorf("invalid file type: only .json files are allowed")
	}
	return nil
}
