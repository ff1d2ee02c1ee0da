package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

func mustSphere(t *testing.T, transform mathpkg.Matrix4) *Shape {
	t.Helper()
	s, err := NewSphere(NewIDGenerator(), transform, material.DefaultMaterial())
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		transform mathpkg.Matrix4
		origin    core.Point
		direction core.Vector
		expected  []float64
	}{
		{
			name:      "through the centre",
			transform: mathpkg.Identity4(),
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{4, 6},
		},
		{
			name:      "tangent",
			transform: mathpkg.Identity4(),
			origin:    core.NewPoint(0, 1, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{5, 5},
		},
		{
			name:      "miss",
			transform: mathpkg.Identity4(),
			origin:    core.NewPoint(0, 2, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "origin inside",
			transform: mathpkg.Identity4(),
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{-1, 1},
		},
		{
			name:      "sphere behind ray",
			transform: mathpkg.Identity4(),
			origin:    core.NewPoint(0, 0, 5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{-6, -4},
		},
		{
			name:      "scaled sphere",
			transform: mathpkg.Scaling(2, 2, 2),
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{3, 7},
		},
		{
			name:      "translated sphere",
			transform: mathpkg.Translation(5, 0, 0),
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSphere(t, tt.transform)
			xs := s.Intersect(mathpkg.NewRay(tt.origin, tt.direction))

			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %v", len(tt.expected), xs)
			}
			for i := range xs {
				if !core.ApproxEqual(xs[i], tt.expected[i]) {
					t.Errorf("Intersection %d: expected %f, got %f", i, tt.expected[i], xs[i])
				}
			}
		})
	}
}

func TestSphere_NormalAt(t *testing.T) {
	third := math.Sqrt(3) / 3
	half := math.Sqrt(2) / 2

	tests := []struct {
		name      string
		transform mathpkg.Matrix4
		point     core.Point
		expected  core.Vector
	}{
		{"x axis", mathpkg.Identity4(), core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"y axis", mathpkg.Identity4(), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"z axis", mathpkg.Identity4(), core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{"nonaxial", mathpkg.Identity4(), core.NewPoint(third, third, third), core.NewVector(third, third, third)},
		{
			"translated",
			mathpkg.Translation(0, 1, 0),
			core.NewPoint(0, 1+half, -half),
			core.NewVector(0, half, -half),
		},
		{
			"scaled and rotated",
			mathpkg.Scaling(1, 0.5, 1).Multiply(mathpkg.RotationZ(math.Pi / 5)),
			core.NewPoint(0, half, -half),
			core.NewVector(0, 0.97014, -0.24254),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustSphere(t, tt.transform).NormalAt(tt.point)

			if !n.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
			if !core.ApproxEqual(n.Magnitude(), 1) {
				t.Errorf("Expected unit normal, got magnitude %f", n.Magnitude())
			}
			if n.W() != 0 {
				t.Errorf("Expected normal to be a vector, got w=%f", n.W())
			}
		})
	}
}

func TestSphere_ColourAtUsesObjectSpace(t *testing.T) {
	white := core.NewColour(1, 1, 1)
	black := core.NewColour(0, 0, 0)
	m := material.NewMaterial(material.NewStripePattern(white, black))

	s, err := NewSphere(NewIDGenerator(), mathpkg.Scaling(2, 2, 2), m)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	if got := s.ColourAt(core.NewPoint(1.5, 0, 0)); !got.ApproxEqual(white) {
		t.Errorf("Expected white, got %v", got)
	}
	if got := s.ColourAt(core.NewPoint(2.5, 0, 0)); !got.ApproxEqual(black) {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestNewSphere_Errors(t *testing.T) {
	ids := NewIDGenerator()

	_, err := NewSphere(ids, mathpkg.Scaling(1, 0, 1), material.DefaultMaterial())
	if !errors.Is(err, mathpkg.ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}

	bad := material.DefaultMaterial()
	bad.Diffuse = -1
	_, err = NewSphere(ids, mathpkg.Identity4(), bad)
	if !errors.Is(err, material.ErrInvalidMaterial) {
		t.Errorf("Expected ErrInvalidMaterial, got %v", err)
	}
}

func TestIDGenerator(t *testing.T) {
	ids := NewIDGenerator()
	a, err := NewSphere(ids, mathpkg.Identity4(), material.DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewPlane(ids, mathpkg.Identity4(), material.DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}

	if a.ID() == b.ID() {
		t.Errorf("Expected distinct IDs, both were %d", a.ID())
	}
	if b.ID() <= a.ID() {
		t.Errorf("Expected increasing IDs, got %d then %d", a.ID(), b.ID())
	}
	if a.Kind() != SphereKind || b.Kind() != PlaneKind {
		t.Errorf("Unexpected kinds %v, %v", a.Kind(), b.Kind())
	}
}
