package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// ShapeKind identifies the primitive a Shape represents
type ShapeKind int

const (
	SphereKind ShapeKind = iota // unit sphere centred on the object-space origin
	PlaneKind                   // infinite xz plane through the object-space origin
)

func (k ShapeKind) String() string {
	switch k {
	case SphereKind:
		return "sphere"
	case PlaneKind:
		return "plane"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ShapeID uniquely identifies a shape within the IDGenerator that issued it
type ShapeID uint64

// IDGenerator hands out increasing shape IDs. It is not safe for concurrent
// use; scenes are built on a single goroutine.
type IDGenerator struct {
	next ShapeID
}

// NewIDGenerator creates a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh ID
func (g *IDGenerator) Next() ShapeID {
	g.next++
	return g.next
}

// Shape is a transformed primitive with a material. Intersection and
// shading are done in object space using the precomputed inverse.
type Shape struct {
	kind            ShapeKind
	id              ShapeID
	transform       mathpkg.Invertible
	normalTransform mathpkg.Matrix4 // inverse transpose
	material        material.Material
}

func newShape(kind ShapeKind, ids *IDGenerator, transform mathpkg.Matrix4, m material.Material) (*Shape, error) {
	inv, err := mathpkg.NewInvertible(transform)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return &Shape{
		kind:            kind,
		id:              ids.Next(),
		transform:       inv,
		normalTransform: inv.Inverse.Transpose(),
		material:        m,
	}, nil
}

// NewSphere creates a unit sphere placed in the world by transform
func NewSphere(ids *IDGenerator, transform mathpkg.Matrix4, m material.Material) (*Shape, error) {
	return newShape(SphereKind, ids, transform, m)
}

// NewPlane creates an xz plane placed in the world by transform
func NewPlane(ids *IDGenerator, transform mathpkg.Matrix4, m material.Material) (*Shape, error) {
	return newShape(PlaneKind, ids, transform, m)
}

// Kind returns the primitive type
func (s *Shape) Kind() ShapeKind { return s.kind }

// ID returns the identifier assigned at construction
func (s *Shape) ID() ShapeID { return s.id }

// Transform returns the object-to-world matrix
func (s *Shape) Transform() mathpkg.Matrix4 { return s.transform.Matrix }

// InverseTransform returns the world-to-object matrix
func (s *Shape) InverseTransform() mathpkg.Matrix4 { return s.transform.Inverse }

// Material returns the surface material
func (s *Shape) Material() material.Material { return s.material }

// Intersect returns the ray parameters at which the world-space ray meets the
// shape. Values are not filtered by sign.
func (s *Shape) Intersect(ray mathpkg.Ray) []float64 {
	local := ray.Transform(s.transform.Inverse)
	switch s.kind {
	case SphereKind:
		return intersectSphere(local)
	case PlaneKind:
		return intersectPlane(local)
	}
	return nil
}

// NormalAt returns the unit world-space normal at a world point on the surface
func (s *Shape) NormalAt(worldPoint core.Point) core.Vector {
	objectPoint := s.transform.Inverse.MultiplyPoint(worldPoint)

	var objectNormal core.Vector
	switch s.kind {
	case SphereKind:
		objectNormal = sphereNormal(objectPoint)
	case PlaneKind:
		objectNormal = planeNormal(objectPoint)
	}

	return s.normalTransform.MultiplyVector(objectNormal).Normalize()
}

// ColourAt returns the material's pattern colour at a world point
func (s *Shape) ColourAt(worldPoint core.Point) core.Colour {
	return s.material.ColourAt(s.transform.Inverse, worldPoint)
}
