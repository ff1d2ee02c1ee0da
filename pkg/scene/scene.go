package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// CameraConfig places the camera in a scene
type CameraConfig struct {
	From core.Point  // Eye position
	To   core.Point  // Point the camera looks at
	Up   core.Vector // Approximate up direction
}

// ViewTransform returns the world-to-camera matrix for the config
func (c CameraConfig) ViewTransform() mathpkg.Matrix4 {
	return mathpkg.ViewTransform(c.From, c.To, c.Up)
}

// Scene is a world together with where to view it from
type Scene struct {
	Name   string
	World  *World
	Camera CameraConfig
}

// builder accumulates shapes for a scene and keeps the first construction
// error, so scene definitions read as a flat list of shapes
type builder struct {
	ids   *geometry.IDGenerator
	world *World
	err   error
}

func newBuilder(light lights.PointLight) *builder {
	return &builder{
		ids:   geometry.NewIDGenerator(),
		world: NewWorld(light),
	}
}

func (b *builder) sphere(transform mathpkg.Matrix4, m material.Material) {
	if b.err != nil {
		return
	}
	s, err := geometry.NewSphere(b.ids, transform, m)
	if err != nil {
		b.err = err
		return
	}
	b.world.Add(s)
}

func (b *builder) plane(transform mathpkg.Matrix4, m material.Material) {
	if b.err != nil {
		return
	}
	p, err := geometry.NewPlane(b.ids, transform, m)
	if err != nil {
		b.err = err
		return
	}
	b.world.Add(p)
}

func (b *builder) pattern(kind material.PatternKind, transform mathpkg.Matrix4, colours ...core.Colour) material.Pattern {
	p, err := material.NewPattern(kind, transform, colours...)
	if err != nil && b.err == nil {
		b.err = err
	}
	return p
}

func (b *builder) build(name string, camera CameraConfig) (*Scene, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build scene %q: %w", name, b.err)
	}
	return &Scene{Name: name, World: b.world, Camera: camera}, nil
}

// surface returns a material with the given pattern and diffuse/specular mix
func surface(p material.Pattern, diffuse, specular float64) material.Material {
	m := material.NewMaterial(p)
	m.Diffuse = diffuse
	m.Specular = specular
	return m
}

func solid(c core.Colour, diffuse, specular float64) material.Material {
	return surface(material.NewSolidPattern(c), diffuse, specular)
}

func whiteLight(position core.Point) lights.PointLight {
	return lights.NewPointLight(position, core.NewColour(1, 1, 1))
}
