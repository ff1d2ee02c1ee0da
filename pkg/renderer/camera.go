package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// Camera maps pixels on a canvas one unit in front of the eye to world rays
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64
	transform   mathpkg.Invertible // world to camera
	halfWidth   float64
	halfHeight  float64
	pixelSize   float64
}

// NewCamera creates a camera for an hsize x vsize canvas. transform is the
// view transform, usually built with mathpkg.ViewTransform.
func NewCamera(hsize, vsize int, fieldOfView float64, transform mathpkg.Matrix4) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size %dx%d: %w", hsize, vsize, ErrInvalidConfig)
	}
	inv, err := mathpkg.NewInvertible(transform)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth, halfHeight = halfView, halfView/aspect
	} else {
		halfWidth, halfHeight = halfView*aspect, halfView
	}

	return &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   inv,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelSize:   halfWidth * 2 / float64(hsize),
	}, nil
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize returns the world-space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() mathpkg.Matrix4 { return c.transform.Matrix }

// RayForPixel returns the ray from the eye through the centre of pixel (x, y)
func (c *Camera) RayForPixel(x, y int) mathpkg.Ray {
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transform.Inverse.MultiplyPoint(core.NewPoint(worldX, worldY, -1))
	origin := c.transform.Inverse.MultiplyPoint(core.Origin())
	direction := pixel.Sub(origin).Normalize()

	return mathpkg.NewRay(origin, direction)
}
