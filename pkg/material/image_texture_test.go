package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestUVMapping_Map(t *testing.T) {
	tests := []struct {
		name    string
		mapping UVMapping
		point   core.Tuple
		u, v    float64
	}{
		{"spherical -z", SphericalMap, core.Point(0, 0, -1), 0, 0.5},
		{"spherical +x", SphericalMap, core.Point(1, 0, 0), 0.25, 0.5},
		{"spherical +z", SphericalMap, core.Point(0, 0, 1), 0.5, 0.5},
		{"spherical -x", SphericalMap, core.Point(-1, 0, 0), 0.75, 0.5},
		{"spherical north pole", SphericalMap, core.Point(0, 1, 0), 0.5, 1},
		{"spherical south pole", SphericalMap, core.Point(0, -1, 0), 0.5, 0},
		{"spherical diagonal", SphericalMap, core.Point(math.Sqrt2/2, math.Sqrt2/2, 0), 0.25, 0.75},

		{"planar 1", PlanarMap, core.Point(0.25, 0, 0.5), 0.25, 0.5},
		{"planar 2", PlanarMap, core.Point(0.25, 0, -0.25), 0.25, 0.75},
		{"planar ignores y", PlanarMap, core.Point(0.25, 0.5, -0.25), 0.25, 0.75},
		{"planar repeats", PlanarMap, core.Point(1.25, 0, 0.5), 0.25, 0.5},
		{"planar negative", PlanarMap, core.Point(0.25, 0, -1.75), 0.25, 0.25},
		{"planar integer", PlanarMap, core.Point(1, 0, -1), 0, 0},
		{"planar origin", PlanarMap, core.Point(0, 0, 0), 0, 0},

		{"cylindrical -z", CylindricalMap, core.Point(0, 0, -1), 0, 0},
		{"cylindrical half height", CylindricalMap, core.Point(0, 0.5, -1), 0, 0.5},
		{"cylindrical repeats", CylindricalMap, core.Point(0, 1, -1), 0, 0},
		{"cylindrical 1/8", CylindricalMap, core.Point(0.70711, 0.5, -0.70711), 0.125, 0.5},
		{"cylindrical +x", CylindricalMap, core.Point(1, 0.5, 0), 0.25, 0.5},
		{"cylindrical 3/8", CylindricalMap, core.Point(0.70711, 0.5, 0.70711), 0.375, 0.5},
		{"cylindrical below", CylindricalMap, core.Point(0, -0.25, 1), 0.5, 0.75},
		{"cylindrical 5/8", CylindricalMap, core.Point(-0.70711, 0.5, 0.70711), 0.625, 0.5},
		{"cylindrical above", CylindricalMap, core.Point(-1, 1.25, 0), 0.75, 0.25},
		{"cylindrical 7/8", CylindricalMap, core.Point(-0.70711, 0.5, -0.70711), 0.875, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := tt.mapping.Map(tt.point)
			if math.Abs(u-tt.u) > 1e-4 || math.Abs(v-tt.v) > 1e-4 {
				t.Errorf("Map(%v) = (%v, %v), want (%v, %v)", tt.point, u, v, tt.u, tt.v)
			}
		})
	}
}

func TestParseUVMapping(t *testing.T) {
	for _, m := range []UVMapping{SphericalMap, PlanarMap, CylindricalMap} {
		parsed, err := ParseUVMapping(m.String())
		if err != nil || parsed != m {
			t.Errorf("ParseUVMapping(%q) = %v, %v", m.String(), parsed, err)
		}
	}
	if m, err := ParseUVMapping(""); err != nil || m != SphericalMap {
		t.Errorf("Empty mapping should be spherical, got %v, %v", m, err)
	}
	if _, err := ParseUVMapping("cubic"); err == nil {
		t.Error("Expected error for unknown mapping")
	}
}

func TestImageTexture_UVColor(t *testing.T) {
	white := core.White
	red := core.NewColor(1, 0, 0)
	green := core.NewColor(0, 1, 0)
	blue := core.NewColor(0, 0, 1)

	// Layout:
	//   white red
	//   green blue
	texture := ImageTexture{
		Width:  2,
		Height: 2,
		Pixels: []core.Color{white, red, green, blue},
	}

	tests := []struct {
		name     string
		u, v     float64
		expected core.Color
	}{
		{"top left", 0.1, 0.9, white},
		{"top right", 0.9, 0.9, red},
		{"bottom left", 0.1, 0.1, green},
		{"bottom right", 0.9, 0.1, blue},
		{"top edge stays on top row", 0.1, 1, white},
		{"right edge clamps", 1, 0.9, red},
		{"wraps above one", 1.1, 1.9, white},
		{"wraps below zero", -0.1, -0.9, blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.UVColor(tt.u, tt.v); !got.ApproxEqual(tt.expected) {
				t.Errorf("UVColor(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.expected)
			}
		})
	}

	var empty ImageTexture
	if got := empty.UVColor(0.5, 0.5); !got.ApproxEqual(core.Black) {
		t.Errorf("Empty texture should be black, got %v", got)
	}
}

func TestImageTexture_Pattern(t *testing.T) {
	// Left half red, right half blue, mapped onto the xz plane
	red := core.NewColor(1, 0, 0)
	blue := core.NewColor(0, 0, 1)
	p := NewImageTexture(2, 1, []core.Color{red, blue}, PlanarMap)

	if p.Kind.String() != "image" {
		t.Errorf("Kind = %q, want image", p.Kind.String())
	}
	if got := p.ColorAt(core.Point(0.25, 0, 0.5)); !got.ApproxEqual(red) {
		t.Errorf("ColorAt(0.25, 0, 0.5) = %v, want red", got)
	}
	if got := p.ColorAt(core.Point(1.75, 3, 0.5)); !got.ApproxEqual(blue) {
		t.Errorf("ColorAt(1.75, 3, 0.5) = %v, want blue", got)
	}
}
