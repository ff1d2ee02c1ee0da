package core

import "math"

// Vector is a direction or displacement: a homogeneous 4-tuple with w = 0
type Vector [4]float64

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z, 0}
}

// X returns the x component
func (v Vector) X() float64 { return v[0] }

// Y returns the y component
func (v Vector) Y() float64 { return v[1] }

// Z returns the z component
func (v Vector) Z() float64 { return v[2] }

// W returns the homogeneous coordinate, always 0 for vectors built by NewVector
func (v Vector) W() float64 { return v[3] }

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return AddTuples(v, other)
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return SubtractTuples(v, other)
}

// Negate returns the opposite vector
func (v Vector) Negate() Vector {
	return NegateTuple(v)
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return ScaleTuple(v, scalar)
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(scalar float64) Vector {
	return DivideTuple(v, scalar)
}

// Magnitude returns the length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	length := v.Magnitude()
	if length == 0 {
		return Vector{}
	}
	return v.Divide(length)
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return NewVector(
		v[1]*other[2]-v[2]*other[1],
		v[2]*other[0]-v[0]*other[2],
		v[0]*other[1]-v[1]*other[0],
	)
}

// Reflect reflects v about the given normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// ApproxEqual compares two vectors within Epsilon
func (v Vector) ApproxEqual(other Vector) bool {
	return TuplesApproxEqual(v, other)
}
