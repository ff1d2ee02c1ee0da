package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// intersectSphere solves |O + tD|² = 1 for an object-space ray. Both roots
// are returned in ascending order, equal when the ray is tangent.
func intersectSphere(ray mathpkg.Ray) []float64 {
	sphereToRay := ray.Origin.Sub(core.Origin())

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

func sphereNormal(objectPoint core.Point) core.Vector {
	return objectPoint.Sub(core.Origin())
}
