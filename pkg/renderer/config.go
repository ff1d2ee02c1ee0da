package renderer

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ErrInvalidConfig is returned by RenderConfig.Validate
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains configuration for a render
type RenderConfig struct {
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	FieldOfView float64 // Horizontal or vertical field of view in radians, whichever is larger
	NumWorkers  int     // Number of parallel workers (0 = use CPU count, 1 = serial)
	TileSize    int     // Edge length of the square tiles handed to workers
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:       800,
		Height:      400,
		FieldOfView: math.Pi / 3,
		NumWorkers:  0, // Auto-detect CPU count
		TileSize:    32,
	}
}

// Validate checks the config for values that cannot be rendered
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FieldOfView <= 0 || c.FieldOfView >= math.Pi:
		return fmt.Errorf("%w: field of view %f must be in (0, pi)", ErrInvalidConfig, c.FieldOfView)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.NumWorkers)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	}
	return nil
}

// Workers returns the effective number of workers
func (c RenderConfig) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// NewCamera creates a camera with the config's size and field of view
func (c RenderConfig) NewCamera(view mathpkg.Matrix4) (*Camera, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewCamera(c.Width, c.Height, c.FieldOfView, view)
}
