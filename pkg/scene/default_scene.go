package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// NewDefaultScene creates three spheres in a corner whose floor and walls are
// spheres flattened into discs
func NewDefaultScene() (*Scene, error) {
	b := newBuilder(whiteLight(core.NewPoint(0, 2, 2)))

	wall := solid(core.NewColour(1, 0.9, 0.9), 0.9, 0)

	// Floor
	b.sphere(mathpkg.Scaling(10, 0.01, 10), wall)

	// Left and right walls
	for _, angle := range []float64{-math.Pi / 4, math.Pi / 4} {
		b.sphere(mathpkg.NewTransform().
			Scaling(10, 0.01, 10).
			RotationX(math.Pi/2).
			RotationY(angle).
			Translation(0, 0, 5).
			Build(), wall)
	}

	// Middle, right and left spheres
	b.sphere(mathpkg.Translation(-0.5, 1, 0.5),
		solid(core.NewColour(0.1, 1, 0.5), 0.7, 0.3))
	b.sphere(mathpkg.NewTransform().Scaling(0.5, 0.5, 0.5).Translation(1.5, 0.5, -0.5).Build(),
		solid(core.NewColour(0.5, 1, 0.1), 0.7, 0.3))
	b.sphere(mathpkg.NewTransform().Scaling(0.33, 0.33, 0.33).Translation(-1.5, 0.33, -0.75).Build(),
		solid(core.NewColour(1, 0.8, 0.1), 0.7, 0.3))

	return b.build("default", CameraConfig{
		From: core.NewPoint(0, 1.5, -5),
		To:   core.NewPoint(0, 1, 0),
		Up:   core.NewVector(0, 1, 0),
	})
}
