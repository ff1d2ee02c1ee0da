package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

type sseEvent struct {
	name string
	data string
}

// parseSSE splits a recorded event stream into its events
func parseSSE(body string) []sseEvent {
	var events []sseEvent
	for _, block := range strings.Split(body, "\n\n") {
		var ev sseEvent
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				ev.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				ev.data = strings.TrimPrefix(line, "data: ")
			}
		}
		if ev.name != "" {
			events = append(events, ev)
		}
	}
	return events
}

func TestHandleHealth(t *testing.T) {
	rec := serve(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body: %s", rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	rec := serve(t, "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var response scene.ScenesResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	found := map[string]bool{}
	for _, group := range response.Groups {
		for _, info := range group.Scenes {
			found[info.ID] = true
		}
	}
	for _, id := range scene.SceneIDs() {
		if !found[id] {
			t.Errorf("Scene %q missing from response", id)
		}
	}
}

func TestHandleRender_PNG(t *testing.T) {
	rec := serve(t, "/api/render?scene=plane&width=32&height=16&workers=2&tile=8")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if rec.Header().Get("X-Render-Id") == "" {
		t.Error("Expected X-Render-Id header")
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("Expected 32x16 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleRender_PPM(t *testing.T) {
	rec := serve(t, "/api/render?scene=room&width=10&height=5&format=ppm")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Body.String(), "P3\n10 5\n255\n") {
		t.Errorf("Unexpected PPM header: %q", rec.Body.String()[:20])
	}
	if !strings.HasSuffix(rec.Body.String(), "\n") {
		t.Error("PPM should end with a newline")
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"non-numeric width", "width=abc", http.StatusBadRequest},
		{"zero height", "height=0", http.StatusBadRequest},
		{"fov too wide", "fov=180", http.StatusBadRequest},
		{"unknown format", "format=jpg", http.StatusBadRequest},
		{"negative workers", "workers=-1", http.StatusBadRequest},
		{"unknown scene", "scene=nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, "/api/render?"+tt.query)
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("Expected JSON error body, got %s", rec.Body.String())
			}
		})
	}
}

func TestHandleRenderStream(t *testing.T) {
	rec := serve(t, "/api/render/stream?scene=patterns&width=24&height=12&tile=6&workers=2")
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %q", ct)
	}

	events := parseSSE(rec.Body.String())
	if len(events) < 2 {
		t.Fatalf("Expected console and complete events, got %v", events)
	}
	if events[0].name != "console" {
		t.Errorf("Expected first event to be console, got %q", events[0].name)
	}

	last := events[len(events)-1]
	if last.name != "complete" {
		t.Fatalf("Expected final event to be complete, got %q: %s", last.name, last.data)
	}

	var result RenderComplete
	if err := json.Unmarshal([]byte(last.data), &result); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if result.RenderID == "" {
		t.Error("Expected a render ID")
	}
	if result.Width != 24 || result.Height != 12 {
		t.Errorf("Expected 24x12, got %dx%d", result.Width, result.Height)
	}
	if result.Stats.TotalPixels != 24*12 {
		t.Errorf("Expected %d pixels, got %d", 24*12, result.Stats.TotalPixels)
	}
	if result.Stats.Tiles != 8 {
		t.Errorf("Expected 8 tiles, got %d", result.Stats.Tiles)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageData)
	if err != nil {
		t.Fatalf("Image is not base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Image is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 24 {
		t.Errorf("Expected image width 24, got %d", img.Bounds().Dx())
	}

	// The render ID logged to the console matches the completed render
	var consoleText strings.Builder
	for _, ev := range events[:len(events)-1] {
		var msg ConsoleMessage
		if err := json.Unmarshal([]byte(ev.data), &msg); err != nil {
			t.Fatalf("Console event is not a message: %v", err)
		}
		consoleText.WriteString(msg.Message)
	}
	if !strings.Contains(consoleText.String(), result.RenderID) {
		t.Errorf("Console output does not mention render %s:\n%s", result.RenderID, consoleText.String())
	}
}

func TestHandleRenderStream_Errors(t *testing.T) {
	for _, query := range []string{"scene=nope", "width=-3"} {
		t.Run(query, func(t *testing.T) {
			events := parseSSE(serve(t, "/api/render/stream?"+query).Body.String())
			if len(events) == 0 {
				t.Fatal("Expected an error event")
			}
			last := events[len(events)-1]
			if last.name != "error" {
				t.Errorf("Expected error event, got %q", last.name)
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	t.Run("centre of default scene hits the middle sphere", func(t *testing.T) {
		rec := serve(t, "/api/inspect?scene=default&width=400&height=200&x=200&y=100")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var response InspectResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !response.Hit {
			t.Fatal("Expected a hit")
		}
		if response.GeometryType != "sphere" {
			t.Errorf("Expected sphere, got %q", response.GeometryType)
		}
		if response.Material == nil || response.Material.Diffuse != 0.7 || response.Material.Pattern != "solid" {
			t.Errorf("Unexpected material: %+v", response.Material)
		}
		if response.Distance < 3 || response.Distance > 5 {
			t.Errorf("Expected distance between 3 and 5, got %f", response.Distance)
		}
		if response.Inside {
			t.Error("Camera is outside every sphere")
		}
	})

	t.Run("sky above the plane scene misses", func(t *testing.T) {
		rec := serve(t, "/api/inspect?scene=plane&width=400&height=200&x=200&y=0")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var response InspectResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if response.Hit {
			t.Errorf("Expected a miss, got %+v", response)
		}
	})

	errorTests := []struct {
		name   string
		query  url.Values
		status int
	}{
		{"missing x", url.Values{"y": {"1"}}, http.StatusBadRequest},
		{"out of bounds", url.Values{"x": {"400"}, "y": {"0"}}, http.StatusBadRequest},
		{"unknown scene", url.Values{"scene": {"nope"}, "x": {"0"}, "y": {"0"}}, http.StatusNotFound},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, "/api/inspect?"+tt.query.Encode())
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestInspectPixel_IgnoresRenderSettings(t *testing.T) {
	sceneObj, err := scene.NewScene("default")
	if err != nil {
		t.Fatal(err)
	}

	// No worker or tile settings, as parsed for an inspect request
	req := &RenderRequest{Width: 400, Height: 200, Fov: 60}
	response, err := NewServer(0).inspectPixel(sceneObj, req, 200, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !response.Hit || response.GeometryType != "sphere" {
		t.Errorf("Expected the centre pixel to hit a sphere, got %+v", response)
	}

	if _, err := NewServer(0).inspectPixel(sceneObj, &RenderRequest{Fov: 60}, 0, 0); !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for an empty image, got %v", err)
	}
}

func TestStaticIndex(t *testing.T) {
	rec := serve(t, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html, got %q", ct)
	}
	for _, endpoint := range []string{"/api/scenes", "/api/render/stream", "/api/inspect"} {
		if !strings.Contains(rec.Body.String(), endpoint) {
			t.Errorf("Index page does not use %s", endpoint)
		}
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"missing uses default", "", 7, false},
		{"in range", "12", 12, false},
		{"below min", "0", 0, true},
		{"above max", "101", 0, true},
		{"not a number", "x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.value != "" {
				values.Set("n", tt.value)
			}
			got, err := parseIntParam(values, "n", 7, 1, 100)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
