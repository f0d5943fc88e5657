package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Lighting evaluates the Phong reflection model for one light at a surface point.
// object supplies the local frame for patterns; the result is not clamped.
func (m Material) Lighting(object ObjectSpace, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	base := m.Color
	if m.Pattern != nil {
		base = m.Pattern.AtShape(object, point)
	}

	effective := base.Blend(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDir := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflected := lightDir.Negate().Reflect(normal)
	if reflectDotEye := reflected.Dot(eye); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
