package core

import "math"

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix4 {
	return Matrix4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling scales along each axis
func Scaling(x, y, z float64) Matrix4 {
	return Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX rotates around the X axis by r radians
func RotationX(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY rotates around the Y axis by r radians
func RotationY(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ rotates around the Z axis by r radians
func RotationZ(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing moves each component in proportion to the other two.
// xy means "x in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// The chaining helpers below apply a further transform after m,
// so Identity.RotateX(a).Scale(s, s, s) == Scaling(s, s, s) * RotationX(a).

// Translate applies a translation after m
func (m Matrix4) Translate(x, y, z float64) Matrix4 {
	return Translation(x, y, z).Multiply(m)
}

// Scale applies a scaling after m
func (m Matrix4) Scale(x, y, z float64) Matrix4 {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX applies an X rotation after m
func (m Matrix4) RotateX(r float64) Matrix4 {
	return RotationX(r).Multiply(m)
}

// RotateY applies a Y rotation after m
func (m Matrix4) RotateY(r float64) Matrix4 {
	return RotationY(r).Multiply(m)
}

// RotateZ applies a Z rotation after m
func (m Matrix4) RotateZ(r float64) Matrix4 {
	return RotationZ(r).Multiply(m)
}

// Shear applies a shearing after m
func (m Matrix4) Shear(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}
