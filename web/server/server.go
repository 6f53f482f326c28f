package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// Server handles web requests for the interactive raytracer
type Server struct {
	port int
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	// API endpoints
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	return s
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
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the scenes that can be rendered
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// RenderRequest holds the scene parameters shared by render and inspect
type RenderRequest struct {
	Scene       string  `json:"scene"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AA          int     `json:"aa"`          // N gives NxN samples per pixel
	Reflections int     `json:"reflections"` // Reflection recursion budget
	Spot        bool    `json:"spot"`        // Switch the spot light on
	Light       bool    `json:"light"`       // Switch the positional light on
	PlaneZ      float64 `json:"planeZ"`      // Depth of the transparent plane
	Ground      string  `json:"ground"`      // Named material for the ground plane; empty keeps the scene's

	demoParams []string // Demo-only parameters present in the query
}

// demoOnlyParams only apply to the default scene, which has the spot light
// and the transparent plane
var demoOnlyParams = []string{"spot", "light", "planeZ"}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default"}
	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, 16, 2000); err != nil {
		return nil, err
	}
	if req.AA, err = parseIntParam(query, "aa", 1, 1, 8); err != nil {
		return nil, err
	}
	if req.Reflections, err = parseIntParam(query, "reflections", 0, 0, 2); err != nil {
		return nil, err
	}
	if req.Spot, err = parseBoolParam(query, "spot", false); err != nil {
		return nil, err
	}
	if req.Light, err = parseBoolParam(query, "light", true); err != nil {
		return nil, err
	}
	if req.PlaneZ, err = parseFloatParam(query, "planeZ", scene.TransparentPlaneZ, -20, 20); err != nil {
		return nil, err
	}
	for _, key := range demoOnlyParams {
		if query.Has(key) {
			req.demoParams = append(req.demoParams, key)
		}
	}
	if req.Ground = query.Get("ground"); req.Ground != "" {
		if _, ok := material.Named(req.Ground); !ok {
			return nil, fmt.Errorf("unknown material: %s", req.Ground)
		}
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.AA > 3 {
		log.Printf("Render warning: Large image with heavy anti-aliasing may render slowly")
	}
	return req, nil
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
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene. The light and plane parameters
// only exist in the default scene; passing them for another scene is an
// error. The ground material applies to the first opaque object, which is
// the ground plane in every built-in scene.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	var built *scene.Scene
	if req.Scene == "default" {
		demo, err := scene.NewDefaultScene(req.Width, req.Height, nil)
		if err != nil {
			return nil, err
		}
		demo.Positional.SetOn(req.Light)
		demo.Spot.SetOn(req.Spot)
		demo.TransparentPlane.SetPoint(core.NewVec3(0, 0, req.PlaneZ))
		built = demo.Scene
	} else {
		if len(req.demoParams) > 0 {
			return nil, fmt.Errorf("parameters %v only apply to the default scene", req.demoParams)
		}
		var err error
		if built, err = scene.Build(req.Scene, req.Width, req.Height, nil); err != nil {
			return nil, err
		}
	}

	if req.Ground != "" && len(built.OpaqueObjects) > 0 {
		ground, _ := material.Named(req.Ground)
		built.OpaqueObjects[0].Material = ground
	}
	return built, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
