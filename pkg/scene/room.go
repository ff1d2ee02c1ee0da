package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// NewRoomScene creates three spheres inside a box of planes, lit from low
// in the front left corner
func NewRoomScene() (*Scene, error) {
	b := newBuilder(whiteLight(core.NewPoint(-2, -1.5, -2)))

	b.sphere(mathpkg.Translation(-2, -1.5, 2),
		solid(core.NewColour(1, 0, 0), 0.7, 0.3))
	b.sphere(mathpkg.NewTransform().Scaling(1.25, 1.25, 1.25).Translation(1.5, -0.5, -2.5).Build(),
		solid(core.NewColour(0, 1, 0), 0.7, 0.3))
	b.sphere(mathpkg.NewTransform().Scaling(1.125, 1.125, 1.125).Translation(0, 0.25, -1).Build(),
		solid(core.NewColour(1, 0.5, 0), 0.7, 0.3))

	// Floor and ceiling
	b.plane(mathpkg.Translation(0, -3, 0),
		solid(core.NewColour(0.6, 0.8, 1), 0.85, 0.15))
	b.plane(mathpkg.NewTransform().RotationX(math.Pi).Translation(0, 2, 0).Build(),
		solid(core.NewColour(0.8, 0.9, 1), 0.85, 0.15))

	// Back, right and left walls
	b.plane(mathpkg.NewTransform().RotationX(math.Pi/2).Translation(0, 0, 3).Build(),
		solid(core.NewColour(0.7, 0.85, 1), 0.85, 0.15))
	b.plane(mathpkg.NewTransform().RotationX(math.Pi/2).Translation(0, 0, 4).RotationY(math.Pi/2).Build(),
		solid(core.NewColour(0.75, 0.88, 1), 0.85, 0.15))
	b.plane(mathpkg.NewTransform().RotationX(math.Pi/2).Translation(0, 0, 4).RotationY(-math.Pi/2).Build(),
		solid(core.NewColour(0.65, 0.82, 1), 0.85, 0.15))

	return b.build("room", CameraConfig{
		From: core.NewPoint(0, 0, -12),
		To:   core.NewPoint(0, -0.4, 0),
		Up:   core.NewVector(0, 1, 0),
	})
}
