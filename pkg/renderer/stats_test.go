package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Create a 2x2 image
	// Top-left: Red (1, 0, 0) -> Lum = 0.2126
	// Top-right: Green (0, 1, 0) -> Lum = 0.7152
	// Bottom-left: Blue (0, 0, 1) -> Lum = 0.0722
	// Bottom-right: Black (0, 0, 0) -> Lum = 0.0

	// Expected average: (0.2126 + 0.7152 + 0.0722 + 0.0) / 4 = 1.0 / 4 = 0.25

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_OverexposedCanvas(t *testing.T) {
	// Channels above 1 clamp to white -> Lum = 1.0
	c := NewCanvas(1, 1)
	_ = c.WritePixel(0, 0, core.NewColour(1.9, 1.9, 1.9))

	avgLum := CalculateAverageLuminance(c.ToImage())
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestRenderStats_Coverage(t *testing.T) {
	if got := (RenderStats{}).Coverage(); got != 0 {
		t.Errorf("Expected 0 coverage for empty stats, got %f", got)
	}
	if got := (RenderStats{TotalPixels: 8, HitPixels: 2}).Coverage(); got != 0.25 {
		t.Errorf("Expected 0.25 coverage, got %f", got)
	}
}
