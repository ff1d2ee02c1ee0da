package material

import (
	"errors"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()

	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200.0 {
		t.Errorf("Unexpected default coefficients: %+v", m)
	}
	if m.Pattern.Kind != Solid || m.Pattern.Colours[0] != core.White {
		t.Errorf("Expected white solid pattern, got %v %v", m.Pattern.Kind, m.Pattern.Colours[0])
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Expected default material to be valid, got %v", err)
	}
}

func TestNewSolidMaterial(t *testing.T) {
	m := NewSolidMaterial(core.NewColour(1, 0, 0))

	if m.Ambient != 0.1 || m.Shininess != 200.0 {
		t.Errorf("Expected default coefficients, got %+v", m)
	}
	got := m.ColourAt(mathpkg.Identity4(), core.NewPoint(3, -2, 7))
	if got != core.NewColour(1, 0, 0) {
		t.Errorf("Expected red everywhere, got %v", got)
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Material)
	}{
		{"negative ambient", func(m *Material) { m.Ambient = -0.1 }},
		{"negative diffuse", func(m *Material) { m.Diffuse = -1 }},
		{"negative specular", func(m *Material) { m.Specular = -0.5 }},
		{"negative shininess", func(m *Material) { m.Shininess = -10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMaterial()
			tt.modify(&m)
			if err := m.Validate(); !errors.Is(err, ErrInvalidMaterial) {
				t.Errorf("Expected ErrInvalidMaterial, got %v", err)
			}
		})
	}
}
