package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Scene      string
	Width      int
	Height     int
	FovDegrees float64
	Workers    int
	TileSize   int
	Format     string
	OutputDir  string
}

func main() {
	defaults := renderer.DefaultRenderConfig()

	// Parse command line flags
	sceneType := flag.String("scene", scene.DefaultSceneID, "Scene to render: "+strings.Join(scene.SceneIDs(), ", "))
	width := flag.Int("width", defaults.Width, "Image width in pixels")
	height := flag.Int("height", defaults.Height, "Image height in pixels")
	fov := flag.Float64("fov", defaults.FieldOfView*180/math.Pi, "Field of view in degrees")
	workers := flag.Int("workers", defaults.NumWorkers, "Number of parallel workers (0 = use CPU count, 1 = serial)")
	tileSize := flag.Int("tile", defaults.TileSize, "Tile size in pixels for parallel rendering")
	format := flag.String("format", "png", "Output format: png or ppm")
	outputDir := flag.String("output", "output", "Base directory for rendered images")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/<width>_<height>_<timestamp>.<format>")
		return
	}

	if *list {
		printScenes(os.Stdout)
		return
	}

	config := Config{
		Scene:      *sceneType,
		Width:      *width,
		Height:     *height,
		FovDegrees: *fov,
		Workers:    *workers,
		TileSize:   *tileSize,
		Format:     *format,
		OutputDir:  *outputDir,
	}

	filename, err := run(context.Background(), config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// run renders the configured scene and writes it to disk, returning the
// path of the written file
func run(ctx context.Context, config Config, logger core.Logger) (string, error) {
	if config.Format != "png" && config.Format != "ppm" {
		return "", fmt.Errorf("unknown format %q", config.Format)
	}

	selectedScene, err := createScene(config.Scene)
	if err != nil {
		return "", err
	}

	renderConfig := renderer.RenderConfig{
		Width:       config.Width,
		Height:      config.Height,
		FieldOfView: config.FovDegrees * math.Pi / 180,
		NumWorkers:  config.Workers,
		TileSize:    config.TileSize,
	}
	camera, err := renderConfig.NewCamera(selectedScene.Camera.ViewTransform())
	if err != nil {
		return "", err
	}

	logger.Printf("Rendering scene %q...\n", selectedScene.Name)
	raytracer := renderer.NewRaytracer(selectedScene.World, camera, renderConfig, logger)
	canvas, stats, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}
	logger.Printf("%d of %d pixels hit geometry\n", stats.HitPixels, stats.TotalPixels)

	outputDir := createOutputDir(config.OutputDir, selectedScene.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	filename := filepath.Join(outputDir, renderer.OutputFilename(canvas.Width(), canvas.Height(), time.Now(), config.Format))
	if err := writeImage(filename, canvas, config.Format); err != nil {
		return "", err
	}
	return filename, nil
}

// createScene builds a named built-in scene
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene specified")
	}
	return scene.NewScene(sceneType)
}

// createOutputDir returns the directory renders of a scene are saved under
func createOutputDir(base, sceneType string) string {
	return filepath.Join(base, sceneType)
}

// writeImage saves the canvas as PNG or plain PPM
func writeImage(filename string, canvas *renderer.Canvas, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	switch format {
	case "ppm":
		err = renderer.WritePPM(file, canvas, 255)
	default:
		err = png.Encode(file, canvas.ToImage())
	}
	if err != nil {
		return fmt.Errorf("saving %s: %w", strings.ToUpper(format), err)
	}
	return file.Close()
}

func printScenes(w io.Writer) {
	for _, group := range scene.ListScenes().Groups {
		fmt.Fprintf(w, "%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(w, "  %-10s %s\n", info.ID, info.Description)
		}
	}
}
