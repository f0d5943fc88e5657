package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits shared by the render, image and inspect endpoints
const (
	MinImageSize  = 10
	MaxImageSize  = 2000
	MaxDepthLimit = 50
	MaxScale      = 8
	DefaultScene  = "default"
)

// Server handles web requests for the raytracer
type Server struct {
	port         int
	defaultScene string // scene used when a request names none
	defaultDepth int    // bounce limit used when a request names none; 0 keeps the scene's own
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, defaultScene: DefaultScene}
}

// WithDefaultScene returns a copy of the server that renders id when a request
// omits the scene parameter. The id must name a loadable scene.
func (s *Server) WithDefaultScene(id string) (*Server, error) {
	if _, err := s.loadScene(id, nil); err != nil {
		return nil, err
	}
	clone := *s
	clone.defaultScene = id
	return &clone, nil
}

// WithDefaultDepth returns a copy of the server that uses depth as the bounce
// limit when a request omits maxDepth. Zero restores each scene's own depth.
func (s *Server) WithDefaultDepth(depth int) (*Server, error) {
	if depth < 0 || depth > MaxDepthLimit {
		return nil, fmt.Errorf("default depth must be between 0 and %d, got: %d", MaxDepthLimit, depth)
	}
	clone := *s
	clone.defaultDepth = depth
	return &clone, nil
}

// RenderRequest holds the scene parameters common to every endpoint.
// Zero size or depth fields mean "use the scene's own configuration".
type RenderRequest struct {
	Scene        string `json:"scene"`        // Scene id (e.g., "default" or "json:glass-room")
	Width        int    `json:"width"`        // Image width
	Height       int    `json:"height"`       // Image height
	MaxDepth     int    `json:"maxDepth"`     // Reflection/refraction bounces
	ProgressRows int    `json:"progressRows"` // Rows between progress events
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// writeJSON writes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and JSON scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(log.Default())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = s.defaultScene
	}

	sceneObj, err := s.loadScene(sceneName, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sceneObj.Configure(scene.RenderConfig{MaxDepth: s.defaultDepth})

	config := sceneObj.RenderConfig
	response := map[string]interface{}{
		"scene":       sceneName,
		"name":        sceneObj.Name,
		"description": sceneObj.Description,
		"shapeCount":  sceneObj.ShapeCount(),
		"lightCount":  len(sceneObj.World.Lights),
		"defaults": map[string]interface{}{
			"width":    config.Width,
			"height":   config.Height,
			"maxDepth": config.MaxDepth,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height":   map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"maxDepth": map[string]int{"min": 1, "max": MaxDepthLimit},
			"scale":    map[string]int{"min": 1, "max": MaxScale},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// parseCommonSceneParams parses the scene, size and depth parameters
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = s.defaultScene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", s.defaultDepth, 1, MaxDepthLimit); err != nil {
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

// loadScene resolves a scene id. File paths are refused: JSON scenes are
// only reachable through their "json:<name>" id.
func (s *Server) loadScene(ref string, logger core.Logger) (*scene.Scene, error) {
	if strings.ContainsAny(ref, `/\`) || strings.Contains(ref, "..") || strings.HasSuffix(strings.ToLower(ref), ".json") {
		return nil, fmt.Errorf("invalid scene id: %s", ref)
	}
	sceneObj, err := scene.Load(ref, logger)
	if err != nil {
		return nil, fmt.Errorf("unknown scene: %s", ref)
	}
	return sceneObj, nil
}

// configureScene loads the requested scene and applies size and depth overrides
func (s *Server) configureScene(req *RenderRequest, logger core.Logger) (*scene.Scene, error) {
	sceneObj, err := s.loadScene(req.Scene, logger)
	if err != nil {
		return nil, err
	}
	sceneObj.Configure(scene.RenderConfig{Width: req.Width, Height: req.Height, MaxDepth: req.MaxDepth})

	// Report the effective values back to the caller
	req.Width = sceneObj.RenderConfig.Width
	req.Height = sceneObj.RenderConfig.Height
	req.MaxDepth = sceneObj.RenderConfig.MaxDepth
	return sceneObj, nil
}
