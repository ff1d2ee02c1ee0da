package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrOutOfBounds is returned for pixel coordinates outside the canvas
var ErrOutOfBounds = errors.New("pixel out of bounds")

// Canvas is a grid of unclamped colours, row-major from the top left
type Canvas struct {
	width  int
	height int
	pixels []core.Colour
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Colour, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel sets the colour at (x, y). Distinct pixels may be written from
// different goroutines.
func (c *Canvas) WritePixel(x, y int, colour core.Colour) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	c.pixels[y*c.width+x] = colour
	return nil
}

// PixelAt returns the colour at (x, y)
func (c *Canvas) PixelAt(x, y int) (core.Colour, error) {
	if !c.inBounds(x, y) {
		return core.Colour{}, fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return c.pixels[y*c.width+x], nil
}

// scaleChannel maps a colour channel onto [0, max], rounding to nearest
func scaleChannel(v float64, max int) int {
	scaled := int(math.Round(v * float64(max)))
	if scaled < 0 {
		return 0
	}
	if scaled > max {
		return max
	}
	return scaled
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each channel
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(scaleChannel(p.R(), 255)),
				G: uint8(scaleChannel(p.G(), 255)),
				B: uint8(scaleChannel(p.B(), 255)),
				A: 255,
			})
		}
	}
	return img
}
