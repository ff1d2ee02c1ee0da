package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// ShadowBias is how far OverPoint sits above the surface along the normal
const ShadowBias = 1e-4

// Intersection records where a ray met a shape
type Intersection struct {
	T     float64
	Shape Handle
}

// Hit returns the intersection with the smallest non-negative T. The second
// result is false when there is none.
func Hit(xs []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// Computations holds the geometry needed to shade one intersection
type Computations struct {
	T         float64
	Shape     Handle
	Point     core.Point  // Surface point
	OverPoint core.Point  // Point nudged along Normal, used for shadow rays
	Eye       core.Vector // Towards the ray origin
	Normal    core.Vector // Unit normal, facing the eye
	Inside    bool        // Ray started inside the shape
}

// PrepareComputations derives shading geometry for an intersection produced
// by ray against a shape in arena
func PrepareComputations(arena *Arena, x Intersection, ray mathpkg.Ray) Computations {
	point := ray.Position(x.T)
	eye := ray.Direction.Negate()
	normal := arena.Get(x.Shape).NormalAt(point)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	return Computations{
		T:         x.T,
		Shape:     x.Shape,
		Point:     point,
		OverPoint: point.Add(normal.Multiply(ShadowBias)),
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
	}
}
