package math

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Matrix4 is a 4×4 affine transform, row-major
type Matrix4 [4][4]float64

// Identity4 returns the 4×4 identity matrix
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Square returns m as a generic SquareMatrix
func (m Matrix4) Square() SquareMatrix {
	return SquareMatrix{size: 4, data: m}
}

func fromSquare(sq SquareMatrix) Matrix4 {
	if sq.size != 4 {
		panic(fmt.Sprintf("expected a 4x4 matrix, got %dx%d", sq.size, sq.size))
	}
	return Matrix4(sq.data)
}

// Multiply returns m × other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	return fromSquare(m.Square().Multiply(other.Square()))
}

// MultiplyPoint transforms a point, translation included. m is assumed to be
// affine: the bottom row is ignored and the result always has w = 1.
func (m Matrix4) MultiplyPoint(p core.Point) core.Point {
	return core.NewPoint(
		m[0][0]*p[0]+m[0][1]*p[1]+m[0][2]*p[2]+m[0][3]*p[3],
		m[1][0]*p[0]+m[1][1]*p[1]+m[1][2]*p[2]+m[1][3]*p[3],
		m[2][0]*p[0]+m[2][1]*p[1]+m[2][2]*p[2]+m[2][3]*p[3],
	)
}

// MultiplyVector transforms a vector. With w = 0 the translation column
// contributes nothing, and the result is always a vector (w = 0).
func (m Matrix4) MultiplyVector(v core.Vector) core.Vector {
	return core.NewVector(
		m[0][0]*v[0]+m[0][1]*v[1]+m[0][2]*v[2]+m[0][3]*v[3],
		m[1][0]*v[0]+m[1][1]*v[1]+m[1][2]*v[2]+m[1][3]*v[3],
		m[2][0]*v[0]+m[2][1]*v[1]+m[2][2]*v[2]+m[2][3]*v[3],
	)
}

// Transpose swaps rows and columns
func (m Matrix4) Transpose() Matrix4 {
	return fromSquare(m.Square().Transpose())
}

// Determinant returns the determinant of m
func (m Matrix4) Determinant() float64 {
	return m.Square().Determinant()
}

// Inverse returns m⁻¹, or ErrSingularMatrix
func (m Matrix4) Inverse() (Matrix4, error) {
	inv, err := m.Square().Inverse()
	if err != nil {
		return Matrix4{}, err
	}
	return fromSquare(inv), nil
}

// MustInverse is Inverse for matrices known to be invertible; it panics otherwise
func (m Matrix4) MustInverse() Matrix4 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// ApproxEqual compares two matrices element-wise within core.Epsilon
func (m Matrix4) ApproxEqual(other Matrix4) bool {
	return m.Square().ApproxEqual(other.Square())
}

// Invertible pairs a transform with its precomputed inverse.
// Shapes, patterns and cameras all hold one.
type Invertible struct {
	Matrix  Matrix4
	Inverse Matrix4
}

// NewInvertible inverts m once. A singular m is reported as a wrapped ErrSingularMatrix.
func NewInvertible(m Matrix4) (Invertible, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Invertible{}, fmt.Errorf("invert transform: %w", err)
	}
	return Invertible{Matrix: m, Inverse: inv}, nil
}

// IdentityInvertible returns the identity paired with itself
func IdentityInvertible() Invertible {
	return Invertible{Matrix: Identity4(), Inverse: Identity4()}
}
