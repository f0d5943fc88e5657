package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera maps pixels of an hsize×vsize image onto a canvas one unit in front of
// the eye. The camera looks down -z from the origin until a view transform
// moves it.
type Camera struct {
	HSize       int     // Image width in pixels
	VSize       int     // Image height in pixels
	FieldOfView float64 // Horizontal or vertical angle in radians, whichever side is longer

	transform  core.Matrix4
	inverse    core.Matrix4
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity,
		inverse:     core.Identity,
	}
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// WithTransform returns a copy of the camera using the given view transform.
// It fails with core.ErrNotInvertible when the transform is singular.
func (c *Camera) WithTransform(transform core.Matrix4) (*Camera, error) {
	inverse, ok := transform.Inverse()
	if !ok {
		return nil, fmt.Errorf("camera transform: %w", core.ErrNotInvertible)
	}
	copied := *c
	copied.transform = transform
	copied.inverse = inverse
	return &copied, nil
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix4 {
	return c.transform
}

// PixelSize returns the width of one pixel on the canvas
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray from the eye through the centre of pixel (px, py).
// (0, 0) is the top-left pixel.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Origin)
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
