package core

// Point is a position in space: a homogeneous 4-tuple with w = 1
type Point [4]float64

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z, 1}
}

// Origin returns the point (0, 0, 0)
func Origin() Point {
	return NewPoint(0, 0, 0)
}

// X returns the x component
func (p Point) X() float64 { return p[0] }

// Y returns the y component
func (p Point) Y() float64 { return p[1] }

// Z returns the z component
func (p Point) Z() float64 { return p[2] }

// W returns the homogeneous coordinate
func (p Point) W() float64 { return p[3] }

// Sub returns the displacement from other to p
func (p Point) Sub(other Point) Vector {
	return Vector(SubtractTuples(p, other))
}

// Add moves the point along v
func (p Point) Add(v Vector) Point {
	return AddTuples(p, Point(v))
}

// SubVector moves the point against v
func (p Point) SubVector(v Vector) Point {
	return SubtractTuples(p, Point(v))
}

// ApproxEqual compares two points within Epsilon
func (p Point) ApproxEqual(other Point) bool {
	return TuplesApproxEqual(p, other)
}
