package core

import "math"

// Epsilon is the tolerance used for every approximate float comparison
const Epsilon = 1e-5

// ApproxEqual reports whether a and b differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is any fixed-length float tuple used by the renderer.
// Colours are 3-tuples; points and vectors are homogeneous 4-tuples.
type Tuple interface {
	~[3]float64 | ~[4]float64
}

// AddTuples returns the component-wise sum a + b
func AddTuples[T Tuple](a, b T) T {
	var r T
	for i := 0; i < len(r); i++ {
		r[i] = a[i] + b[i]
	}
	return r
}

// SubtractTuples returns the component-wise difference a - b
func SubtractTuples[T Tuple](a, b T) T {
	var r T
	for i := 0; i < len(r); i++ {
		r[i] = a[i] - b[i]
	}
	return r
}

// NegateTuple returns -a
func NegateTuple[T Tuple](a T) T {
	var r T
	for i := 0; i < len(r); i++ {
		r[i] = -a[i]
	}
	return r
}

// ScaleTuple multiplies every component by s
func ScaleTuple[T Tuple](a T, s float64) T {
	var r T
	for i := 0; i < len(r); i++ {
		r[i] = a[i] * s
	}
	return r
}

// DivideTuple divides every component by s
func DivideTuple[T Tuple](a T, s float64) T {
	var r T
	for i := 0; i < len(r); i++ {
		r[i] = a[i] / s
	}
	return r
}

// HadamardTuples returns the element-wise product of a and b.
// Only colours use it, for light modulation.
func HadamardTuples[T Tuple](a, b T) T {
	var r T
	for i := 0; i < len(r); i++ {
		r[i] = a[i] * b[i]
	}
	return r
}

// TuplesApproxEqual compares a and b component-wise within Epsilon
func TuplesApproxEqual[T Tuple](a, b T) bool {
	for i := 0; i < len(a); i++ {
		if !ApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
