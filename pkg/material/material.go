package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// ErrInvalidMaterial is returned for negative reflectance coefficients
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds Phong reflectance coefficients and the surface pattern
type Material struct {
	Ambient   float64 // Fraction of the light's colour reflected regardless of geometry
	Diffuse   float64 // Lambertian reflectance
	Specular  float64 // Highlight strength
	Shininess float64 // Highlight exponent, typically 10 (broad) to 400 (tight)
	Pattern   Pattern
}

// DefaultMaterial returns a white, fairly glossy material
func DefaultMaterial() Material {
	return Material{
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
		Pattern:   NewSolidPattern(core.White),
	}
}

// NewMaterial creates a default material using the given pattern
func NewMaterial(pattern Pattern) Material {
	m := DefaultMaterial()
	m.Pattern = pattern
	return m
}

// NewSolidMaterial creates a default material of a single colour
func NewSolidMaterial(colour core.Colour) Material {
	return NewMaterial(NewSolidPattern(colour))
}

// Validate checks that every coefficient is non-negative
func (m Material) Validate() error {
	coefficients := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
	}
	for _, c := range coefficients {
		if c.value < 0 {
			return fmt.Errorf("%w: %s is %f", ErrInvalidMaterial, c.name, c.value)
		}
	}
	return nil
}

// ColourAt returns the pattern colour at a world point on a shape whose
// inverse transform is objectInverse
func (m Material) ColourAt(objectInverse mathpkg.Matrix4, worldPoint core.Point) core.Colour {
	return m.Pattern.ColourAtObject(objectInverse, worldPoint)
}
