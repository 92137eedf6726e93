package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request parsed from query parameters
type RenderRequest struct {
	Scene        string  // Scene name (e.g. "cornell")
	Width        int     // Image width
	Height       int     // Image height
	Depth        int     // Maximum recursion depth
	SuperSamples int     // Antialiasing grid size
	AAThreshold  float64 // Edge detection threshold
	KdTree       bool    // Whether to build the kd-tree
}

// Stats represents render statistics returned alongside the image
type Stats struct {
	Scene          string `json:"scene"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	ElapsedMs      int64  `json:"elapsedMs"`
	BoundaryPixels int64  `json:"boundaryPixels"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/scenes", s.handleScenes)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scene.Names())
}

// handleRender renders the requested scene and returns the PNG, with
// render statistics in the X-Render-Stats header
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	aspectRatio := float64(req.Width) / float64(req.Height)
	selectedScene, err := scene.ByName(req.Scene, aspectRatio)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	config := renderer.DefaultConfig()
	config.Depth = req.Depth
	config.SuperSamples = req.SuperSamples
	config.AAThreshold = req.AAThreshold
	config.UseKdTree = req.KdTree

	raytracer := renderer.NewRayTracer(selectedScene, config, serverLogger{})

	startTime := time.Now()
	raytracer.StartRender(req.Width, req.Height)
	raytracer.Wait()
	raytracer.StartAntialias()
	raytracer.Wait()

	stats := Stats{
		Scene:          req.Scene,
		Width:          req.Width,
		Height:         req.Height,
		ElapsedMs:      time.Since(startTime).Milliseconds(),
		BoundaryPixels: raytracer.Stats().BoundaryPixels,
	}
	statsJSON, _ := json.Marshal(stats)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Stats", string(statsJSON))
	if err := png.Encode(w, raytracer.Image()); err != nil {
		log.Printf("Error encoding PNG response: %v", err)
	}
}

// parseRenderRequest extracts render parameters from query values,
// applying defaults for anything omitted
func parseRenderRequest(query url.Values) (RenderRequest, error) {
	req := RenderRequest{
		Scene:        "default",
		Width:        400,
		Height:       300,
		Depth:        5,
		SuperSamples: 3,
		AAThreshold:  0.1,
		KdTree:       true,
	}

	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}

	intParams := map[string]*int{
		"width":   &req.Width,
		"height":  &req.Height,
		"depth":   &req.Depth,
		"samples": &req.SuperSamples,
	}
	for name, target := range intParams {
		if v := query.Get(name); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return req, fmt.Errorf("parameter %q must be an integer: %v", name, err)
			}
			*target = parsed
		}
	}

	if v := query.Get("aaThreshold"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, fmt.Errorf("parameter \"aaThreshold\" must be a number: %v", err)
		}
		req.AAThreshold = parsed
	}
	if v := query.Get("kd"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("parameter \"kd\" must be a boolean: %v", err)
		}
		req.KdTree = parsed
	}

	if req.Width <= 0 || req.Height <= 0 {
		return req, fmt.Errorf("width and height must be positive, got %dx%d", req.Width, req.Height)
	}
	if req.Width*req.Height > 4096*4096 {
		return req, fmt.Errorf("image size %dx%d exceeds the 4096x4096 limit", req.Width, req.Height)
	}

	return req, nil
}

// serverLogger implements core.Logger on top of the standard log package
type serverLogger struct{}

func (serverLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
