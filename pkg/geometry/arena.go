package geometry

import (
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// Handle indexes a shape in an Arena
type Handle int

// Arena owns the shapes of a scene. Intersections refer to shapes by
// Handle, so they stay valid for as long as the arena does.
type Arena struct {
	shapes []*Shape
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

// Add stores a shape and returns its handle
func (a *Arena) Add(s *Shape) Handle {
	a.shapes = append(a.shapes, s)
	return Handle(len(a.shapes) - 1)
}

// Get returns the shape for h. It panics on a handle the arena did not issue.
func (a *Arena) Get(h Handle) *Shape {
	return a.shapes[h]
}

// Len returns the number of shapes
func (a *Arena) Len() int {
	return len(a.shapes)
}

// Intersect collects the intersections of ray with every shape, unsorted
func (a *Arena) Intersect(ray mathpkg.Ray) []Intersection {
	var xs []Intersection
	for i, s := range a.shapes {
		for _, t := range s.Intersect(ray) {
			xs = append(xs, Intersection{T: t, Shape: Handle(i)})
		}
	}
	return xs
}
