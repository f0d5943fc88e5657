package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultProgressRows is how many rows are rendered between progress events
const DefaultProgressRows = 16

// ProgressUpdate is sent after every batch of completed rows
type ProgressUpdate struct {
	RowsComplete int    `json:"rowsComplete"`
	TotalRows    int    `json:"totalRows"`
	ImageData    string `json:"imageData"` // Base64 encoded PNG of the canvas so far
	ElapsedMs    int64  `json:"elapsedMs"`
}

// CompleteUpdate is sent once the last row is done
type CompleteUpdate struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	MaxDepth         int     `json:"maxDepth"`
	TotalPixels      int     `json:"totalPixels"`
	PrimaryHits      int     `json:"primaryHits"`
	ShapeCount       int     `json:"shapeCount"`
	AverageLuminance float64 `json:"averageLuminance"`
	ElapsedMs        int64   `json:"elapsedMs"`
	Summary          string  `json:"summary"`
	ImageData        string  `json:"imageData"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "complete", "error"
	Data string `json:"data"` // JSON-encoded data
}

// RenderingPipeline contains the configured scene and raytracer
type RenderingPipeline struct {
	Scene     *scene.Scene
	Raytracer *renderer.Raytracer
}

// handleRender renders a scene row by row, streaming partial images via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// All writes to w happen on the writer goroutine
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

	// Console lines are forwarded until the render finishes
	consoleChan, webLogger := s.setupConsoleLogging()
	streamerDone := make(chan struct{})
	go func() {
		defer close(streamerDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()
	stopConsole := func() {
		close(consoleChan)
		<-streamerDone
	}

	pipeline, err := s.setupRenderingPipeline(req, webLogger)
	if err != nil {
		stopConsole()
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	startTime := time.Now()
	img := canvas.New(req.Width, req.Height)
	stats, err := pipeline.Raytracer.RenderContext(ctx, func(x, y int, c core.Color) {
		img.WritePixel(x, y, c)
		if x == req.Width-1 && (y+1)%req.ProgressRows == 0 && y+1 < req.Height {
			s.handleProgress(ctx, sseEventChan, img, y+1, startTime)
		}
	})
	stopConsole()

	if err != nil {
		// Client disconnected; nothing left to send
		return
	}
	s.handleComplete(ctx, sseEventChan, img, stats, pipeline.Scene, startTime)
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
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents writes events until the channel closes or the client goes away
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data)
			if err != nil {
				// Client disconnected during write; keep draining so senders never block
				continue
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Drain without writing until the handler closes the channel
			for range sseEventChan {
			}
			return
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		}
	}
}

// setupRenderingPipeline creates and configures the scene and raytracer
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger core.Logger) (*RenderingPipeline, error) {
	sceneObj, err := s.configureScene(req, logger)
	if err != nil {
		return nil, err
	}

	raytracer := sceneObj.NewRaytracer(logger)
	config := raytracer.Config()
	config.ProgressRows = req.ProgressRows
	raytracer.SetConfig(config)

	return &RenderingPipeline{
		Scene:     sceneObj,
		Raytracer: raytracer,
	}, nil
}

// handleProgress sends the partially rendered canvas
func (s *Server) handleProgress(ctx context.Context, sseEventChan chan SSEEvent, img *canvas.Canvas, rows int, startTime time.Time) {
	imageData, err := s.imageToBase64PNG(img.Image())
	if err != nil {
		log.Printf("Error encoding progress image: %v", err)
		return
	}

	data, err := json.Marshal(ProgressUpdate{
		RowsComplete: rows,
		TotalRows:    img.Height,
		ImageData:    imageData,
		ElapsedMs:    time.Since(startTime).Milliseconds(),
	})
	if err != nil {
		log.Printf("Error marshaling progress update: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "progress", Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleComplete sends the final image with the render statistics
func (s *Server) handleComplete(ctx context.Context, sseEventChan chan SSEEvent, img *canvas.Canvas,
	stats renderer.RenderStats, sceneObj *scene.Scene, startTime time.Time) {

	rgba := img.Image()
	imageData, err := s.imageToBase64PNG(rgba)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	update := CompleteUpdate{
		Width:            stats.Width,
		Height:           stats.Height,
		MaxDepth:         stats.MaxDepth,
		TotalPixels:      stats.TotalPixels,
		PrimaryHits:      stats.PrimaryHits,
		ShapeCount:       sceneObj.ShapeCount(),
		AverageLuminance: renderer.CalculateAverageLuminance(rgba),
		ElapsedMs:        time.Since(startTime).Milliseconds(),
		Summary:          stats.Summary(message.NewPrinter(language.English)),
		ImageData:        imageData,
	}

	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Error marshaling completion update: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: string(data)}:
	case <-ctx.Done():
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	if req.ProgressRows, err = parseIntParam(r.URL.Query(), "progressRows", DefaultProgressRows, 1, MaxImageSize); err != nil {
		return nil, err
	}

	if req.Width*req.Height > 800*600 && req.MaxDepth > 10 {
		log.Printf("Render warning: Large image with deep recursion may render slowly")
	}

	return req, nil
}

// handleImage renders a scene and returns it as a single encoded image
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	formatName := r.URL.Query().Get("format")
	if formatName == "" {
		formatName = string(canvas.PNG)
	}
	format, err := canvas.ParseFormat(formatName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scale, err := parseIntParam(r.URL.Query(), "scale", 1, 1, MaxScale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger := log.Default()
	sceneObj, err := s.configureScene(req, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img := canvas.New(req.Width, req.Height)
	if _, err := sceneObj.NewRaytracer(logger).RenderContext(r.Context(), func(x, y int, c core.Color) {
		img.WritePixel(x, y, c)
	}); err != nil {
		// The client is gone; there is nobody to answer
		return
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, format, scale); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", sceneObj.Name+format.Extension()))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing image response: %v", err)
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, msg string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: msg}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
