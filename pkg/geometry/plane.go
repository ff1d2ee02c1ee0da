package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// parallelThreshold is the smallest |D.y| for which a ray is considered to
// cross the plane. Rays lying in the plane therefore miss it.
const parallelThreshold = 1e-4

func intersectPlane(ray mathpkg.Ray) []float64 {
	if math.Abs(ray.Direction.Y()) < parallelThreshold {
		return nil
	}
	return []float64{-ray.Origin.Y() / ray.Direction.Y()}
}

func planeNormal(core.Point) core.Vector {
	return core.NewVector(0, 1, 0)
}
