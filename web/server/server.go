package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

//go:embed static
var staticFS embed.FS

// staticFiles returns the embedded web UI rooted at its directory
func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Server handles web requests for the raytracer
type Server struct {
	port int
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	// Serve static files
	s.mux.Handle("/", http.FileServer(http.FS(staticFiles())))

	// API endpoints
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	return s
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string  `json:"scene"`    // Scene ID (e.g., "room")
	Width    int     `json:"width"`    // Image width
	Height   int     `json:"height"`   // Image height
	Fov      float64 `json:"fov"`      // Field of view in degrees
	Workers  int     `json:"workers"`  // Parallel workers, 0 for CPU count
	TileSize int     `json:"tileSize"` // Tile edge length in pixels
	Format   string  `json:"format"`   // "png" or "ppm"
}

// renderConfig converts the request into a renderer config
func (req *RenderRequest) renderConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.Fov * math.Pi / 180,
		NumWorkers:  req.Workers,
		TileSize:    req.TileSize,
	}
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	HitPixels        int     `json:"hitPixels"`
	Coverage         float64 `json:"coverage"`
	Tiles            int     `json:"tiles"`
	Workers          int     `json:"workers"`
	ElapsedMs        int64   `json:"elapsedMs"`
	AverageLuminance float64 `json:"averageLuminance"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:      stats.TotalPixels,
		HitPixels:        stats.HitPixels,
		Coverage:         stats.Coverage(),
		Tiles:            stats.Tiles,
		Workers:          stats.Workers,
		ElapsedMs:        stats.Duration.Milliseconds(),
		AverageLuminance: stats.AverageLuminance,
	}
}

// RenderComplete is the payload of the final SSE event of a streamed render
type RenderComplete struct {
	RenderID  string `json:"renderId"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// Handler returns the server's request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes grouped for display
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	s.writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders a scene and returns the finished image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	canvas, stats, err := s.renderScene(r.Context(), req, renderer.NewDefaultLogger())
	if err != nil {
		s.writeError(w, renderStatus(err), fmt.Sprintf("Render error: %v", err))
		return
	}

	w.Header().Set("X-Render-Id", stats.RenderID)
	switch req.Format {
	case "ppm":
		w.Header().Set("Content-Type", "image/x-portable-pixmap")
		err = renderer.WritePPM(w, canvas, 255)
	default:
		w.Header().Set("Content-Type", "image/png")
		err = png.Encode(w, canvas.ToImage())
	}
	if err != nil {
		log.Printf("Error writing render %s: %v", stats.RenderID, err)
	}
}

// renderStatus maps a render error to an HTTP status code
func renderStatus(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		return http.StatusNotFound
	case errors.Is(err, renderer.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// renderScene builds the requested scene and renders it
func (s *Server) renderScene(ctx context.Context, req *RenderRequest, logger core.Logger) (*renderer.Canvas, renderer.RenderStats, error) {
	sceneObj, err := scene.NewScene(req.Scene)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	config := req.renderConfig()
	camera, err := config.NewCamera(sceneObj.Camera.ViewTransform())
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	logger.Printf("Rendering scene %q at %dx%d\n", sceneObj.Name, req.Width, req.Height)
	raytracer := renderer.NewRaytracer(sceneObj.World, camera, config, logger)
	return raytracer.Render(ctx)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	query := r.URL.Query()
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tile", 32, 1, 1024); err != nil {
		return nil, err
	}

	req.Format = query.Get("format")
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "ppm":
	default:
		return nil, fmt.Errorf("unknown format: %s", req.Format)
	}

	// Performance warning
	if req.Width*req.Height > 1920*1080 {
		log.Printf("Render warning: %dx%d image may render slowly", req.Width, req.Height)
	}

	return req, nil
}

// parseCommonSceneParams parses the parameters shared by rendering and
// inspection: which scene, and the camera's image size and field of view
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = scene.DefaultSceneID
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 4000); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 200, 1, 4000); err != nil {
		return err
	}
	if req.Fov, err = parseFloatParam(query, "fov", 60, 1, 179); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
