package core

import (
	"math"
	"testing"
)

func TestTransforms_ApplyToTuples(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix4
		input    Tuple
		expected Tuple
	}{
		{"translate point", Translation(5, -3, 2), Point(-3, 4, 5), Point(2, 1, 7)},
		{"translate vector is a no-op", Translation(5, -3, 2), Vector(-3, 4, 5), Vector(-3, 4, 5)},
		{"scale point", Scaling(2, 3, 4), Point(-4, 6, 8), Point(-8, 18, 32)},
		{"scale vector", Scaling(2, 3, 4), Vector(-4, 6, 8), Vector(-8, 18, 32)},
		{"reflect via negative scale", Scaling(-1, 1, 1), Point(2, 3, 4), Point(-2, 3, 4)},
		{"half quarter around x", RotationX(math.Pi / 4), Point(0, 1, 0), Point(0, math.Sqrt2/2, math.Sqrt2/2)},
		{"full quarter around x", RotationX(math.Pi / 2), Point(0, 1, 0), Point(0, 0, 1)},
		{"half quarter around y", RotationY(math.Pi / 4), Point(0, 0, 1), Point(math.Sqrt2/2, 0, math.Sqrt2/2)},
		{"full quarter around y", RotationY(math.Pi / 2), Point(0, 0, 1), Point(1, 0, 0)},
		{"half quarter around z", RotationZ(math.Pi / 4), Point(0, 1, 0), Point(-math.Sqrt2/2, math.Sqrt2/2, 0)},
		{"full quarter around z", RotationZ(math.Pi / 2), Point(0, 1, 0), Point(-1, 0, 0)},
		{"shear x by y", Shearing(1, 0, 0, 0, 0, 0), Point(2, 3, 4), Point(5, 3, 4)},
		{"shear x by z", Shearing(0, 1, 0, 0, 0, 0), Point(2, 3, 4), Point(6, 3, 4)},
		{"shear y by x", Shearing(0, 0, 1, 0, 0, 0), Point(2, 3, 4), Point(2, 5, 4)},
		{"shear y by z", Shearing(0, 0, 0, 1, 0, 0), Point(2, 3, 4), Point(2, 7, 4)},
		{"shear z by x", Shearing(0, 0, 0, 0, 1, 0), Point(2, 3, 4), Point(2, 3, 6)},
		{"shear z by y", Shearing(0, 0, 0, 0, 0, 1), Point(2, 3, 4), Point(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(tt.input); !got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransforms_InverseTranslationAndRotation(t *testing.T) {
	inv, ok := Translation(5, -3, 2).Inverse()
	if !ok {
		t.Fatal("translation should be invertible")
	}
	if got := inv.MultiplyTuple(Point(-3, 4, 5)); !got.ApproxEqual(Point(-8, 7, 3)) {
		t.Errorf("Expected (-8,7,3), got %v", got)
	}

	inv, _ = RotationX(math.Pi / 4).Inverse()
	if got := inv.MultiplyTuple(Point(0, 1, 0)); !got.ApproxEqual(Point(0, math.Sqrt2/2, -math.Sqrt2/2)) {
		t.Errorf("Expected inverse rotation to go the other way, got %v", got)
	}
}

func TestTransforms_Chaining(t *testing.T) {
	p := Point(1, 0, 1)

	chained := Identity.RotateX(math.Pi/2).Scale(5, 5, 5).Translate(10, 5, 7)
	if got := chained.MultiplyTuple(p); !got.ApproxEqual(Point(15, 0, 7)) {
		t.Errorf("Expected (15,0,7), got %v", got)
	}

	explicit := Translation(10, 5, 7).Multiply(Scaling(5, 5, 5)).Multiply(RotationX(math.Pi / 2))
	if !chained.ApproxEqual(explicit) {
		t.Errorf("Chained transform %v differs from explicit product %v", chained, explicit)
	}

	sheared := Identity.Shear(1, 0, 0, 0, 0, 0).RotateY(0).RotateZ(0)
	if got := sheared.MultiplyTuple(Point(2, 3, 4)); !got.ApproxEqual(Point(5, 3, 4)) {
		t.Errorf("Expected (5,3,4), got %v", got)
	}
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix4
	}{
		{
			name:     "default orientation",
			from:     Point(0, 0, 0),
			to:       Point(0, 0, -1),
			up:       Vector(0, 1, 0),
			expected: Identity,
		},
		{
			name:     "looking in positive z",
			from:     Point(0, 0, 0),
			to:       Point(0, 0, 1),
			up:       Vector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "moves the world",
			from:     Point(0, 0, 8),
			to:       Point(0, 0, 0),
			up:       Vector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: Point(1, 3, 2),
			to:   Point(4, -2, 8),
			up:   Vector(1, 1, 0),
			expected: NewMatrix4(
				-0.50709, 0.50709, 0.67612, -2.36643,
				0.76772, 0.60609, 0.12122, -2.82843,
				-0.35857, 0.59761, -0.71714, 0.00000,
				0.00000, 0.00000, 0.00000, 1.00000,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ViewTransform(tt.from, tt.to, tt.up)
			for r := 0; r < 4; r++ {
				for c := 0; c < 4; c++ {
					if math.Abs(got[r][c]-tt.expected[r][c]) > 1e-4 {
						t.Fatalf("Expected %v, got %v", tt.expected, got)
					}
				}
			}
		})
	}
}
