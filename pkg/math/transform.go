package math

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Transform accumulates affine operations starting from the identity.
// Each call left-multiplies the accumulated matrix, so the operations apply
// to a point in the order they were written: NewTransform().Scaling(...).Translation(...)
// scales first, then translates.
type Transform struct {
	matrix Matrix4
}

// NewTransform starts a builder at the identity
func NewTransform() *Transform {
	return &Transform{matrix: Identity4()}
}

func (t *Transform) then(op Matrix4) *Transform {
	t.matrix = op.Multiply(t.matrix)
	return t
}

// Translation moves by (x, y, z)
func (t *Transform) Translation(x, y, z float64) *Transform {
	return t.then(Translation(x, y, z))
}

// Scaling scales each axis
func (t *Transform) Scaling(x, y, z float64) *Transform {
	return t.then(Scaling(x, y, z))
}

// RotationX rotates about the x axis by radians
func (t *Transform) RotationX(radians float64) *Transform {
	return t.then(RotationX(radians))
}

// RotationY rotates about the y axis by radians
func (t *Transform) RotationY(radians float64) *Transform {
	return t.then(RotationY(radians))
}

// RotationZ rotates about the z axis by radians
func (t *Transform) RotationZ(radians float64) *Transform {
	return t.then(RotationZ(radians))
}

// Shearing moves each component in proportion to the other two
func (t *Transform) Shearing(xy, xz, yx, yz, zx, zy float64) *Transform {
	return t.then(Shearing(xy, xz, yx, yz, zx, zy))
}

// ViewTransform orients the world as seen from `from` looking at `to`
func (t *Transform) ViewTransform(from, to core.Point, up core.Vector) *Transform {
	return t.then(ViewTransform(from, to, up))
}

// Build returns the accumulated matrix
func (t *Transform) Build() Matrix4 {
	return t.matrix
}

// Translation returns the elementary translation matrix
func Translation(x, y, z float64) Matrix4 {
	return Matrix4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling returns the elementary scaling matrix
func Scaling(x, y, z float64) Matrix4 {
	return Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation about the x axis
func RotationX(radians float64) Matrix4 {
	sin, cos := math.Sincos(radians)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation about the y axis
func RotationY(radians float64) Matrix4 {
	sin, cos := math.Sincos(radians)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation about the z axis
func RotationZ(radians float64) Matrix4 {
	sin, cos := math.Sincos(radians)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns the elementary shearing matrix
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform builds the orientation for an eye at `from` looking at `to`,
// composed with a translation of -from
func ViewTransform(from, to core.Point, up core.Vector) Matrix4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X(), left.Y(), left.Z(), 0},
		{trueUp.X(), trueUp.Y(), trueUp.Z(), 0},
		{-forward.X(), -forward.Y(), -forward.Z(), 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X(), -from.Y(), -from.Z()))
}
