package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is a Kind placed in the world with a transform and a material.
// Shapes are immutable once built: the With* methods return new instances.
// A *Shape is shared by every Intersection that refers to it, and pointer
// identity is what the refraction bookkeeping compares.
type Shape struct {
	Kind        Kind
	Material    material.Material
	CastShadows bool

	transform        core.Matrix4
	inverse          core.Matrix4
	inverseTranspose core.Matrix4
}

// NewShape creates a shape with the default material.
// It fails with core.ErrNotInvertible when the transform is singular.
func NewShape(kind Kind, transform core.Matrix4) (*Shape, error) {
	s := &Shape{
		Kind:        kind,
		Material:    material.DefaultMaterial(),
		CastShadows: true,
	}
	if err := s.setTransform(transform); err != nil {
		return nil, err
	}
	return s, nil
}

func newIdentityShape(kind Kind) *Shape {
	return &Shape{
		Kind:             kind,
		Material:         material.DefaultMaterial(),
		CastShadows:      true,
		transform:        core.Identity,
		inverse:          core.Identity,
		inverseTranspose: core.Identity,
	}
}

// NewSphere creates a unit sphere at the origin
func NewSphere() *Shape { return newIdentityShape(Sphere{}) }

// NewPlane creates the xz plane
func NewPlane() *Shape { return newIdentityShape(Plane{}) }

// NewCube creates the axis-aligned cube from -1 to 1
func NewCube() *Shape { return newIdentityShape(Cube{}) }

func (s *Shape) setTransform(transform core.Matrix4) error {
	inverse, ok := transform.Inverse()
	if !ok {
		return fmt.Errorf("%s transform: %w", s.Kind, core.ErrNotInvertible)
	}
	s.transform = transform
	s.inverse = inverse
	s.inverseTranspose = inverse.Transpose()
	return nil
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix4 {
	return s.transform
}

// Inverse returns the cached world-to-object transform
func (s *Shape) Inverse() core.Matrix4 {
	return s.inverse
}

// WithTransform returns a copy of the shape using transform
func (s *Shape) WithTransform(transform core.Matrix4) (*Shape, error) {
	c := *s
	if err := c.setTransform(transform); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithMaterial returns a copy of the shape using m
func (s *Shape) WithMaterial(m material.Material) *Shape {
	c := *s
	c.Material = m
	return &c
}

// WithoutShadows returns a copy that is ignored by shadow rays
func (s *Shape) WithoutShadows() *Shape {
	c := *s
	c.CastShadows = false
	return &c
}

// WithShadows returns a copy that blocks shadow rays
func (s *Shape) WithShadows() *Shape {
	c := *s
	c.CastShadows = true
	return &c
}

// WorldToObject moves a world-space point into the shape's object space
func (s *Shape) WorldToObject(point core.Tuple) core.Tuple {
	return s.inverse.MultiplyTuple(point)
}

// Intersect returns every intersection of the world-space ray with the shape
func (s *Shape) Intersect(ray core.Ray) Intersections {
	local := ray.Transform(s.inverse)
	roots := s.Kind.localIntersect(local)
	if len(roots) == 0 {
		return nil
	}

	xs := make(Intersections, len(roots))
	for i, t := range roots {
		xs[i] = Intersection{T: t, Shape: s}
	}
	return xs
}

// NormalAt returns the unit world-space surface normal at a world-space point.
// Normals go back through the inverse transpose so they stay perpendicular
// under non-uniform scaling.
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectPoint := s.inverse.MultiplyTuple(worldPoint)
	objectNormal := s.Kind.localNormalAt(objectPoint)
	worldNormal := s.inverseTranspose.MultiplyTuple(objectNormal)
	return worldNormal.AsVector().Normalize()
}

// String describes the shape for logs and the inspect endpoint
func (s *Shape) String() string {
	return s.Kind.String()
}
