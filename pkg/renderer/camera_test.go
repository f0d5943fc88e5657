package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_New(t *testing.T) {
	c := NewCamera(160, 120, math.Pi/2)
	if c.HSize != 160 || c.VSize != 120 || c.FieldOfView != math.Pi/2 {
		t.Errorf("Unexpected camera %+v", c)
	}
	if c.Transform() != core.Identity {
		t.Errorf("Expected identity transform, got %v", c.Transform())
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.hsize, tt.vsize, math.Pi/2)
			if math.Abs(c.PixelSize()-0.01) > 1e-9 {
				t.Errorf("Expected pixel size 0.01, got %f", c.PixelSize())
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	base := NewCamera(201, 101, math.Pi/2)
	transformed, err := base.WithTransform(core.RotationY(math.Pi / 4).Multiply(core.Translation(0, -2, 5)))
	if err != nil {
		t.Fatalf("WithTransform failed: %v", err)
	}

	h := math.Sqrt2 / 2
	tests := []struct {
		name      string
		camera    *Camera
		px, py    int
		origin    core.Tuple
		direction core.Tuple
	}{
		{"centre of the canvas", base, 100, 50, core.Origin, core.Vector(0, 0, -1)},
		{"corner of the canvas", base, 0, 0, core.Origin, core.Vector(0.66519, 0.33259, -0.66851)},
		{"transformed camera", transformed, 100, 50, core.Point(0, 2, -5), core.Vector(h, 0, -h)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := tt.camera.RayForPixel(tt.px, tt.py)
			if !ray.Origin.ApproxEqual(tt.origin) {
				t.Errorf("Expected origin %v, got %v", tt.origin, ray.Origin)
			}
			if !ray.Direction.ApproxEqual(tt.direction) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}

	if base.Transform() != core.Identity {
		t.Error("WithTransform must not modify the original camera")
	}
}

func TestCamera_SingularTransform(t *testing.T) {
	c := NewCamera(10, 10, math.Pi/3)
	_, err := c.WithTransform(core.Scaling(0, 1, 1))
	if !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
}
