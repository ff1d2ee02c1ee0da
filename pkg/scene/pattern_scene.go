package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// NewPatternScene shows every pattern kind: a checkered floor, a sheared
// ringed wall and four patterned spheres
func NewPatternScene() (*Scene, error) {
	b := newBuilder(whiteLight(core.NewPoint(-7, 10, -10)))

	white := core.NewColour(1, 1, 1)
	grey := core.NewColour(0.5, 0.5, 0.5)
	lilac := core.NewColour(0.7, 0.6, 0.7)
	black := core.NewColour(0, 0, 0)

	b.plane(mathpkg.Identity4(), surface(
		b.pattern(material.Checkers, mathpkg.Identity4(), white, grey), 0.85, 0.15))

	b.plane(mathpkg.NewTransform().RotationX(1.571).Translation(0, 0, 5).Build(), surface(
		b.pattern(material.Rings, mathpkg.Shearing(1, 1, 0, 0, 0, 0), grey, white, lilac), 0.85, 0.15))

	b.sphere(mathpkg.NewTransform().Scaling(1.5, 1.5, 1.5).RotationX(1.5).Translation(-3, 1.5, -4).Build(), surface(
		b.pattern(material.Ring, mathpkg.Scaling(0.2, 0.2, 0.2), white, lilac), 0.7, 0.3))

	b.sphere(mathpkg.NewTransform().Scaling(1.5, 1.5, 1.5).Translation(3, 1.5, -4).Build(), surface(
		b.pattern(material.Stripes, mathpkg.Identity4(), grey, white, lilac), 0.7, 0.3))

	b.sphere(mathpkg.NewTransform().Scaling(0.33, 0.33, 0.33).Translation(0, 1, -7).Build(), surface(
		b.pattern(material.Gradient, mathpkg.NewTransform().Scaling(2, 2, 2).Translation(1, 0, 0).Build(), lilac, black), 0.7, 0.3))

	// A flattened disc with sheared rings
	b.sphere(mathpkg.NewTransform().Scaling(0.66, 0.11, 0.66).Translation(-2, 0.05, -6.25).Build(), surface(
		b.pattern(material.Rings, mathpkg.NewTransform().Scaling(0.2, 0.2, 0.2).Shearing(0, 0, 0, 0, 1, 1).Build(), grey, white, lilac), 0.7, 0.3))

	return b.build("patterns", CameraConfig{
		From: core.NewPoint(-1, 2, -9),
		To:   core.NewPoint(0, 1, 0),
		Up:   core.NewVector(0, 1, 0),
	})
}
