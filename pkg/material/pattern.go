package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern places a PatternKind in space with its own transform, independent of
// the transform of whatever shape it is painted on
type Pattern struct {
	Kind      PatternKind
	transform core.Matrix4
	inverse   core.Matrix4
}

// NewPattern creates a pattern with the given transform.
// It fails with core.ErrNotInvertible when the transform is singular.
func NewPattern(kind PatternKind, transform core.Matrix4) (*Pattern, error) {
	inverse, ok := transform.Inverse()
	if !ok {
		return nil, fmt.Errorf("%s pattern: %w", kind, core.ErrNotInvertible)
	}
	return &Pattern{Kind: kind, transform: transform, inverse: inverse}, nil
}

// NewIdentityPattern creates a pattern with the identity transform
func NewIdentityPattern(kind PatternKind) *Pattern {
	return &Pattern{Kind: kind, transform: core.Identity, inverse: core.Identity}
}

// Transform returns the pattern transform
func (p *Pattern) Transform() core.Matrix4 {
	return p.transform
}

// WithTransform returns a copy of the pattern using transform
func (p *Pattern) WithTransform(transform core.Matrix4) (*Pattern, error) {
	return NewPattern(p.Kind, transform)
}

// ColorAt evaluates the kind at a point already in pattern space
func (p *Pattern) ColorAt(patternPoint core.Tuple) core.Color {
	return p.Kind.colorAt(patternPoint)
}

// ColorAtObject moves an object-space point into pattern space and evaluates it
func (p *Pattern) ColorAtObject(objectPoint core.Tuple) core.Color {
	return p.Kind.colorAt(p.inverse.MultiplyTuple(objectPoint))
}

// AtShape evaluates the pattern for a world-space point on object.
// world -> object space (shape inverse) -> pattern space (pattern inverse).
func (p *Pattern) AtShape(object ObjectSpace, worldPoint core.Tuple) core.Color {
	return p.ColorAtObject(object.WorldToObject(worldPoint))
}

// NewSolidPattern creates an identity-transformed solid pattern
func NewSolidPattern(c core.Color) *Pattern {
	return NewIdentityPattern(Solid{Color: c})
}

// NewStripePattern creates an identity-transformed stripe pattern
func NewStripePattern(a, b core.Color) *Pattern {
	return NewIdentityPattern(Stripe{A: a, B: b})
}

// NewGradientPattern creates an identity-transformed gradient pattern
func NewGradientPattern(a, b core.Color) *Pattern {
	return NewIdentityPattern(Gradient{A: a, B: b})
}

// NewRingPattern creates an identity-transformed ring pattern
func NewRingPattern(a, b core.Color) *Pattern {
	return NewIdentityPattern(Ring{A: a, B: b})
}

// NewCheckerPattern creates an identity-transformed 3D checker pattern
func NewCheckerPattern(a, b core.Color) *Pattern {
	return NewIdentityPattern(Checker{A: a, B: b})
}

// NewRadialGradientPattern creates an identity-transformed radial gradient
func NewRadialGradientPattern(a, b core.Color) *Pattern {
	return NewIdentityPattern(RadialGradient{A: a, B: b})
}

// NewPerlinPattern creates an identity-transformed Perlin displacement of inner
func NewPerlinPattern(inner *Pattern, scale float64) *Pattern {
	return NewIdentityPattern(Perlin{Inner: inner, Scale: scale})
}

// NewNestedPattern creates an identity-transformed blend of patterns
func NewNestedPattern(patterns ...*Pattern) *Pattern {
	return NewIdentityPattern(Nested{Patterns: patterns})
}
