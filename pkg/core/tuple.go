package core

import "math"

// Tuple is a homogeneous 3D coordinate. Points carry W=1 and vectors carry W=0,
// which lets one 4x4 matrix translate points while leaving directions untouched.
type Tuple struct {
	X, Y, Z, W float64
}

// Point creates a position (W=1)
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a direction (W=0)
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Origin is the point (0, 0, 0)
var Origin = Point(0, 0, 0)

// IsPoint reports whether the tuple is a position
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a direction
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples.
// Point - Point yields a vector, Point - Vector yields a point.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the right-handed cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Length returns the magnitude of the tuple
func (t Tuple) Length() float64 {
	return math.Sqrt(t.Dot(t))
}

// Normalize returns a unit vector in the same direction.
// A zero-length input yields non-finite components.
func (t Tuple) Normalize() Tuple {
	length := t.Length()
	return Tuple{t.X / length, t.Y / length, t.Z / length, t.W / length}
}

// Reflect mirrors the tuple around normal n
func (t Tuple) Reflect(n Tuple) Tuple {
	return t.Subtract(n.Multiply(2 * t.Dot(n)))
}

// AsVector returns the tuple with W forced to 0
func (t Tuple) AsVector() Tuple {
	t.W = 0
	return t
}

// ApproxEqual compares two tuples component-wise within Epsilon
func (t Tuple) ApproxEqual(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}
