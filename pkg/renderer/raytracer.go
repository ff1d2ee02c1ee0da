package renderer

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// World interface to avoid circular imports
type World interface {
	// Trace returns the colour seen along ray and whether it hit anything
	Trace(ray mathpkg.Ray) (core.Colour, bool)
}

// Raytracer renders a world through a camera onto a canvas
type Raytracer struct {
	world  World
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. The canvas size is taken from the
// camera; config supplies the worker and tile settings.
func NewRaytracer(world World, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		world:  world,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Render draws the whole image, serially when one worker is configured and
// in parallel tiles otherwise. Both paths produce identical canvases.
func (rt *Raytracer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	if rt.config.Workers() == 1 {
		return rt.RenderSerial(ctx)
	}
	return rt.RenderParallel(ctx)
}

// RenderSerial draws every pixel on the calling goroutine
func (rt *Raytracer) RenderSerial(ctx context.Context) (*Canvas, RenderStats, error) {
	canvas := NewCanvas(rt.camera.HSize(), rt.camera.VSize())
	stats := rt.startStats(1, 1)

	start := time.Now()
	hits, err := rt.renderBounds(ctx, canvas, image.Rect(0, 0, canvas.Width(), canvas.Height()))
	if err != nil {
		return nil, stats, fmt.Errorf("render %s: %w", stats.RenderID, err)
	}

	rt.finishStats(&stats, canvas, hits, time.Since(start))
	return canvas, stats, nil
}

// RenderParallel splits the image into tiles and renders them on up to
// config.Workers() goroutines. The first failing tile cancels the rest.
func (rt *Raytracer) RenderParallel(ctx context.Context) (*Canvas, RenderStats, error) {
	canvas := NewCanvas(rt.camera.HSize(), rt.camera.VSize())

	tileSize := rt.config.TileSize
	if tileSize <= 0 {
		tileSize = DefaultRenderConfig().TileSize
	}
	tiles := NewTileGrid(canvas.Width(), canvas.Height(), tileSize)
	workers := min(rt.config.Workers(), len(tiles))
	stats := rt.startStats(workers, len(tiles))

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var hits atomic.Int64
	for _, tile := range tiles {
		g.Go(func() error {
			n, err := rt.renderBounds(gctx, canvas, tile.Bounds)
			hits.Add(int64(n))
			if err != nil {
				return fmt.Errorf("tile %d: %w", tile.ID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, fmt.Errorf("render %s: %w", stats.RenderID, err)
	}

	rt.finishStats(&stats, canvas, int(hits.Load()), time.Since(start))
	return canvas, stats, nil
}

// renderBounds traces one ray per pixel inside bounds, checking for
// cancellation once per row. It returns the number of pixels that hit.
func (rt *Raytracer) renderBounds(ctx context.Context, canvas *Canvas, bounds image.Rectangle) (int, error) {
	hits := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return hits, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			colour, hit := rt.world.Trace(rt.camera.RayForPixel(x, y))
			if hit {
				hits++
			}
			if err := canvas.WritePixel(x, y, colour); err != nil {
				return hits, err
			}
		}
	}
	return hits, nil
}

func (rt *Raytracer) startStats(workers, tiles int) RenderStats {
	stats := RenderStats{
		RenderID:    uuid.NewString(),
		TotalPixels: rt.camera.HSize() * rt.camera.VSize(),
		Tiles:       tiles,
		Workers:     workers,
	}
	rt.logger.Printf("Render %s: %dx%d using %d workers (%d tiles)...\n",
		stats.RenderID, rt.camera.HSize(), rt.camera.VSize(), workers, tiles)
	return stats
}

func (rt *Raytracer) finishStats(stats *RenderStats, canvas *Canvas, hits int, elapsed time.Duration) {
	stats.HitPixels = hits
	stats.Duration = elapsed
	stats.AverageLuminance = CalculateAverageLuminance(canvas.ToImage())
	rt.logger.Printf("Render %s: completed in %v, %.1f%% coverage, average luminance %.3f\n",
		stats.RenderID, elapsed, stats.Coverage()*100, stats.AverageLuminance)
}
