package core

import "fmt"

// Matrix is a square matrix of arbitrary size stored row-major.
// It backs the cofactor expansion used by Matrix4 for determinants and inversion.
type Matrix [][]float64

// NewMatrix creates a zero-filled n×n matrix
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for r := range m {
		m[r] = make([]float64, n)
	}
	return m
}

// Size returns the number of rows (and columns)
func (m Matrix) Size() int {
	return len(m)
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	n := m.Size()
	t := NewMatrix(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			t[r][c] = m[c][r]
		}
	}
	return t
}

// Submatrix returns a copy of m with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	n := m.Size()
	sub := make(Matrix, 0, n-1)
	for r := 0; r < n; r++ {
		if r == row {
			continue
		}
		line := make([]float64, 0, n-1)
		for c := 0; c < n; c++ {
			if c == col {
				continue
			}
			line = append(line, m[r][c])
		}
		sub = append(sub, line)
	}
	return sub
}

// Minor is the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the minor at (row, col) negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant expands along row 0 until the 2×2 base case
func (m Matrix) Determinant() float64 {
	switch m.Size() {
	case 0:
		return 1
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}

	det := 0.0
	for c := range m[0] {
		det += m[0][c] * m.Cofactor(0, c)
	}
	return det
}

// Inverse returns the adjugate divided by the determinant.
// ok is false when the determinant is zero.
func (m Matrix) Inverse() (inv Matrix, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return nil, false
	}

	n := m.Size()
	inv = NewMatrix(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			// transposed write builds the adjugate in place
			inv[c][r] = m.Cofactor(r, c) / det
		}
	}
	return inv, true
}

// Matrix4 is a 4×4 transform applied as M * v
type Matrix4 [4][4]float64

// Identity is the multiplicative identity
var Identity = Matrix4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// NewMatrix4 builds a Matrix4 from 16 row-major values
func NewMatrix4(values ...float64) Matrix4 {
	if len(values) != 16 {
		panic(fmt.Sprintf("NewMatrix4 needs 16 values, got %d", len(values)))
	}
	var m Matrix4
	for i, v := range values {
		m[i/4][i%4] = v
	}
	return m
}

// Matrix returns the matrix as a generic square matrix
func (m Matrix4) Matrix() Matrix {
	g := NewMatrix(4)
	for r := 0; r < 4; r++ {
		copy(g[r], m[r][:])
	}
	return g
}

func matrix4From(g Matrix) Matrix4 {
	var m Matrix4
	for r := 0; r < 4; r++ {
		copy(m[r][:], g[r])
	}
	return m
}

// Multiply returns the product m × other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[r][k] * other[k][c]
			}
			result[r][c] = sum
		}
	}
	return result
}

// MultiplyTuple transforms a tuple by m
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix4) Transpose() Matrix4 {
	return matrix4From(m.Matrix().Transpose())
}

// Determinant computes the determinant by cofactor expansion
func (m Matrix4) Determinant() float64 {
	return m.Matrix().Determinant()
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix4) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse of m; ok is false when m is singular
func (m Matrix4) Inverse() (Matrix4, bool) {
	inv, ok := m.Matrix().Inverse()
	if !ok {
		return Matrix4{}, false
	}
	return matrix4From(inv), true
}

// ApproxEqual compares two matrices element-wise within Epsilon
func (m Matrix4) ApproxEqual(other Matrix4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !FloatEqual(m[r][c], other[r][c]) {
				return false
			}
		}
	}
	return true
}
