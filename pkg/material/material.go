package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refractive indices of common media
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.5
	Diamond = 2.417
)

// Material describes how a surface responds to light under the Phong model,
// plus the reflective and refractive properties used by recursive shading.
// Materials are plain values; the With* methods return modified copies.
type Material struct {
	Color           core.Color // Base colour, used when Pattern is nil
	Ambient         float64    // Ambient reflection coefficient
	Diffuse         float64    // Diffuse (Lambertian) coefficient
	Specular        float64    // Specular highlight coefficient
	Shininess       float64    // Specular exponent; larger is tighter
	Pattern         *Pattern   // Optional colour field replacing Color
	Reflective      float64    // 0 = matte, 1 = perfect mirror
	Transparency    float64    // 0 = opaque, 1 = fully transparent
	RefractiveIndex float64    // 1 = vacuum
}

// DefaultMaterial returns a white, non-reflective, opaque material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		RefractiveIndex: Vacuum,
	}
}

// NewGlass returns the default material made fully transparent with the refractive index of glass
func NewGlass() Material {
	return DefaultMaterial().WithTransparency(1).WithRefractiveIndex(Glass)
}

// WithColor returns a copy with the base colour replaced
func (m Material) WithColor(c core.Color) Material {
	m.Color = c
	return m
}

// WithAmbient returns a copy with the ambient coefficient set to |a|
func (m Material) WithAmbient(a float64) Material {
	m.Ambient = math.Abs(a)
	return m
}

// WithDiffuse returns a copy with the diffuse coefficient set to |d|
func (m Material) WithDiffuse(d float64) Material {
	m.Diffuse = math.Abs(d)
	return m
}

// WithSpecular returns a copy with the specular coefficient set to |s|
func (m Material) WithSpecular(s float64) Material {
	m.Specular = math.Abs(s)
	return m
}

// WithShininess returns a copy with the specular exponent set to |s|
func (m Material) WithShininess(s float64) Material {
	m.Shininess = math.Abs(s)
	return m
}

// WithPattern returns a copy painted with p
func (m Material) WithPattern(p *Pattern) Material {
	m.Pattern = p
	return m
}

// WithReflective returns a copy with reflectivity clamped to [0, 1]
func (m Material) WithReflective(r float64) Material {
	m.Reflective = clamp01(r)
	return m
}

// WithTransparency returns a copy with transparency clamped to [0, 1]
func (m Material) WithTransparency(t float64) Material {
	m.Transparency = clamp01(t)
	return m
}

// WithRefractiveIndex returns a copy with the given index of refraction
func (m Material) WithRefractiveIndex(n float64) Material {
	m.RefractiveIndex = math.Abs(n)
	return m
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
