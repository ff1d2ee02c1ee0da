package lights

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Lighting evaluates the Phong reflection model at a surface point.
// surfaceColour is the material's pattern colour at point. In shadow only
// the ambient term contributes. The result is not clamped.
func Lighting(m material.Material, surfaceColour core.Colour, light PointLight, point core.Point, eye, normal core.Vector, inShadow bool) core.Colour {
	effectiveColour := surfaceColour.MultiplyColour(light.Intensity)
	ambient := effectiveColour.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDir, _ := light.DirectionFrom(point)

	// Light is on the other side of the surface
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}
	diffuse := effectiveColour.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectDotEye := lightDir.Negate().Reflect(normal).Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
