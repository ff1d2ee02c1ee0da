package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// World is the set of shapes and the single light that illuminates them
type World struct {
	Shapes *geometry.Arena
	Light  lights.PointLight
}

// NewWorld creates an empty world lit by light
func NewWorld(light lights.PointLight) *World {
	return &World{
		Shapes: geometry.NewArena(),
		Light:  light,
	}
}

// Add places a shape in the world
func (w *World) Add(s *geometry.Shape) geometry.Handle {
	return w.Shapes.Add(s)
}

// Intersect returns every intersection of ray with the world's shapes
func (w *World) Intersect(ray mathpkg.Ray) []geometry.Intersection {
	return w.Shapes.Intersect(ray)
}

// IsShadowed reports whether any shape lies between point and the light.
// Callers pass the biased OverPoint of a hit, not the surface point.
func (w *World) IsShadowed(point core.Point) bool {
	direction, distance := w.Light.DirectionFrom(point)
	hit, ok := geometry.Hit(w.Intersect(mathpkg.NewRay(point, direction)))
	return ok && hit.T < distance
}

// ShadeHit returns the Phong colour for prepared hit geometry
func (w *World) ShadeHit(comps geometry.Computations) core.Colour {
	shape := w.Shapes.Get(comps.Shape)
	return lights.Lighting(
		shape.Material(),
		shape.ColourAt(comps.OverPoint),
		w.Light,
		comps.OverPoint,
		comps.Eye,
		comps.Normal,
		w.IsShadowed(comps.OverPoint),
	)
}

// Trace returns the colour seen along ray and whether it hit anything
func (w *World) Trace(ray mathpkg.Ray) (core.Colour, bool) {
	hit, ok := geometry.Hit(w.Intersect(ray))
	if !ok {
		return core.Black, false
	}
	return w.ShadeHit(geometry.PrepareComputations(w.Shapes, hit, ray)), true
}

// ColourAt returns the colour seen along ray, black on a miss
func (w *World) ColourAt(ray mathpkg.Ray) core.Colour {
	c, _ := w.Trace(ray)
	return c
}
