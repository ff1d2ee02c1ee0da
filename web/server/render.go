package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRenderStream renders a scene while streaming its log output via
// SSE, finishing with a "complete" event that carries the image
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	canvas, stats, err := s.renderScene(ctx, req, webLogger)

	// The logger is not used past this point, so the console stream can be
	// drained ahead of the final event
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Render error: %v", err))
		return
	}

	imageData, err := s.imageToBase64PNG(canvas.ToImage())
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(RenderComplete{
		RenderID:  stats.RenderID,
		Width:     canvas.Width(),
		Height:    canvas.Height(),
		ImageData: imageData,
		Stats:     newStats(stats),
	})
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("failed to encode result: %v", err))
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: string(data)})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	return consoleChan, NewWebLogger(consoleChan)
}

// sendEvent queues an event for the writer unless the client has gone
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}

// handleError queues an error event
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	data, _ := json.Marshal(map[string]string{"error": message})
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: string(data)})
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan <-chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}
			if err := s.sendSSEEvent(w, event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// sendSSEEvent writes a single SSE event and flushes it
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}

// streamConsoleMessages forwards console messages as SSE events until the
// console channel closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for {
		select {
		case consoleMsg, ok := <-consoleChan:
			if !ok {
				return
			}

			data, err := json.Marshal(consoleMsg)
			if err != nil {
				log.Printf("Error marshaling console message: %v", err)
				continue
			}

			select {
			case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
			case <-ctx.Done():
				return
			default:
				// Channel full, skip message to avoid blocking
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}
