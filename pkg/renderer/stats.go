package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	RenderID         string        // Identifies the render in logs and responses
	TotalPixels      int           // Total number of pixels rendered
	HitPixels        int           // Pixels whose primary ray hit a shape
	Tiles            int           // Number of tiles the image was split into
	Workers          int           // Number of goroutines that rendered tiles
	Duration         time.Duration // Wall time of the render
	AverageLuminance float64       // Mean Rec. 709 luminance of the clamped image
}

// Coverage returns the fraction of pixels that hit geometry
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img, with
// each channel normalised to [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(pixels)
}
