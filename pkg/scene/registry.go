package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Builtin describes a scene compiled into the binary
type Builtin struct {
	ID          string
	Name        string
	Description string
	New         func(logger core.Logger) *Scene
}

var builtins = []Builtin{
	{"default", "Default Scene", "Checkered room with glass, mirror and patterned spheres", NewDefaultScene},
	{"refraction", "Refraction", "Nested glass, water and diamond solids with an air bubble", NewRefractionScene},
	{"patterns", "Patterns", "Perlin, nested and basic patterns on planes and spheres", NewPatternScene},
	{"cubes", "Cubes", "A cube-built table with a glass block inside a cube room", NewCubeScene},
	{"mirrors", "Mirrors", "Facing mirrors whose reflections stop at the bounce limit", NewMirrorScene},
	{"world", "Reference World", "Two concentric spheres lit by one point light", NewWorldScene},
}

// Builtins returns the built-in scenes in display order
func Builtins() []Builtin {
	out := make([]Builtin, len(builtins))
	copy(out, builtins)
	return out
}

// NewBuiltin creates the built-in scene with the given id
func NewBuiltin(id string, logger core.Logger) (*Scene, error) {
	for _, b := range builtins {
		if b.ID == id {
			return b.New(logger), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}

// Load resolves a scene reference: a path ending in .json is loaded from
// disk, a "json:<name>" id maps to scenes/<name>.json, anything else names
// a built-in scene
func Load(ref string, logger core.Logger) (*Scene, error) {
	switch {
	case strings.HasPrefix(ref, "json:"):
		return FromFile(filepath.Join(ScenesDir, strings.TrimPrefix(ref, "json:")+".json"), logger)
	case strings.EqualFold(filepath.Ext(ref), ".json"):
		return FromFile(ref, logger)
	default:
		return NewBuiltin(ref, logger)
	}
}
