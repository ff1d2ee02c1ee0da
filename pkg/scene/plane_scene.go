package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// NewPlaneScene creates three spheres resting on an infinite floor
func NewPlaneScene() (*Scene, error) {
	b := newBuilder(whiteLight(core.NewPoint(-10, 10, -10)))

	b.plane(mathpkg.Identity4(), solid(core.NewColour(1, 1, 1), 0.85, 0.15))

	b.sphere(mathpkg.Translation(-0.5, 1, 0.5),
		solid(core.NewColour(0.1, 1, 0.5), 0.7, 0.3))
	b.sphere(mathpkg.NewTransform().Scaling(0.33, 0.33, 0.33).Translation(-1.5, 0.33, -0.75).Build(),
		solid(core.NewColour(1, 0.8, 0.1), 0.7, 0.3))
	b.sphere(mathpkg.NewTransform().Scaling(0.5, 0.5, 0.5).Translation(1.5, 0.5, -0.5).Build(),
		solid(core.NewColour(0.5, 1, 0.1), 0.7, 0.3))

	return b.build("plane", CameraConfig{
		From: core.NewPoint(0, 1.5, -5),
		To:   core.NewPoint(0, 1, 0),
		Up:   core.NewVector(0, 1, 0),
	})
}
