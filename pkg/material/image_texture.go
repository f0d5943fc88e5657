package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// UVMapping projects a point in pattern space onto texture coordinates in [0, 1]
type UVMapping int

const (
	SphericalMap   UVMapping = iota // Longitude/latitude around the origin
	PlanarMap                       // Tiles the xz plane once per unit
	CylindricalMap                  // Wraps around the y axis, repeating every unit of y
)

// ParseUVMapping resolves a mapping name; the empty name is spherical
func ParseUVMapping(name string) (UVMapping, error) {
	switch name {
	case "", "spherical":
		return SphericalMap, nil
	case "planar":
		return PlanarMap, nil
	case "cylindrical":
		return CylindricalMap, nil
	}
	return SphericalMap, fmt.Errorf("unknown uv mapping %q", name)
}

func (m UVMapping) String() string {
	switch m {
	case PlanarMap:
		return "planar"
	case CylindricalMap:
		return "cylindrical"
	default:
		return "spherical"
	}
}

// azimuth is the u coordinate around the y axis, 0 at -z and increasing
// counter-clockwise seen from above
func azimuth(p core.Tuple) float64 {
	theta := math.Atan2(p.X, p.Z)
	return 1 - (theta/(2*math.Pi) + 0.5)
}

// Map returns the texture coordinates of p
func (m UVMapping) Map(p core.Tuple) (u, v float64) {
	switch m {
	case PlanarMap:
		return fraction(p.X), fraction(p.Z)
	case CylindricalMap:
		return azimuth(p), fraction(p.Y)
	default:
		radius := core.Vector(p.X, p.Y, p.Z).Length()
		phi := math.Acos(p.Y / radius)
		return azimuth(p), 1 - phi/math.Pi
	}
}

// ImageTexture paints an image onto a surface through a UV mapping.
// Pixels are row-major with row 0 at the top (v = 1).
type ImageTexture struct {
	Width   int
	Height  int
	Pixels  []core.Color
	Mapping UVMapping
}

// NewImageTexture creates an identity-transformed image pattern
func NewImageTexture(width, height int, pixels []core.Color, mapping UVMapping) *Pattern {
	return NewIdentityPattern(ImageTexture{Width: width, Height: height, Pixels: pixels, Mapping: mapping})
}

// UVColor samples the image at (u, v) with nearest-neighbour filtering.
// Coordinates outside [0, 1] wrap around.
func (t ImageTexture) UVColor(u, v float64) core.Color {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return core.Black
	}
	if u < 0 || u > 1 {
		u = fraction(u)
	}
	if v < 0 || v > 1 {
		v = fraction(v)
	}

	x := int(u * float64(t.Width))
	y := int((1 - v) * float64(t.Height))
	x = min(max(x, 0), t.Width-1)
	y = min(max(y, 0), t.Height-1)
	return t.Pixels[y*t.Width+x]
}

func (t ImageTexture) colorAt(p core.Tuple) core.Color {
	return t.UVColor(t.Mapping.Map(p))
}

func (t ImageTexture) String() string { return "image" }
