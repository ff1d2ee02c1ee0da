package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is a light source with no size, radiating equally in all
// directions
type PointLight struct {
	Position  core.Point
	Intensity core.Colour
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Colour) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit vector from point towards the light and the
// distance between them
func (l PointLight) DirectionFrom(point core.Point) (core.Vector, float64) {
	v := l.Position.Sub(point)
	distance := v.Magnitude()
	return v.Normalize(), distance
}
