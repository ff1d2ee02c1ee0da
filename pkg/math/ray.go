package math

import "github.com/df07/go-phong-raytracer/pkg/core"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    core.Point
	Direction core.Vector
}

// NewRay creates a new ray
func NewRay(origin core.Point, direction core.Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) core.Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to both origin and direction
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyPoint(r.Origin),
		Direction: m.MultiplyVector(r.Direction),
	}
}
