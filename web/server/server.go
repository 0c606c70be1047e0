// Package server exposes the raytracer over HTTP: a render endpoint that
// streams a finished PNG and a scene listing for clients to discover what
// they can ask for.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/renderer"
	"github.com/polyfan/go-fan-raytracer/pkg/scene"
	"github.com/polyfan/go-fan-raytracer/pkg/tracer"
)

// Limits keep a public endpoint from being asked for an exponential render.
const (
	maxDimension = 2000
	maxRays      = 16
	maxDepth     = 8
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	return &Server{port: port, logger: logger}
}

// SceneInfo describes one renderable scene for the listing endpoint
type SceneInfo struct {
	Name  string   `json:"name"`
	Views []string `json:"views"`
}

// Handler returns the server's routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	return mux
}

// Start runs the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting raytracer server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleRender renders a scene and streams the PNG.
// Query parameters: scene, view, width, height, rays, depth.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	width, err := intParam(query.Get("width"), 400, 1, maxDimension)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid width: %v", err), http.StatusBadRequest)
		return
	}
	height, err := intParam(query.Get("height"), 240, 1, maxDimension)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid height: %v", err), http.StatusBadRequest)
		return
	}
	rays, err := intParam(query.Get("rays"), 6, 1, maxRays)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid rays: %v", err), http.StatusBadRequest)
		return
	}
	depth, err := intParam(query.Get("depth"), 3, 0, maxDepth)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid depth: %v", err), http.StatusBadRequest)
		return
	}

	selectedScene, err := scene.ByName(sceneName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := selectedScene.Views[0]
	if name := query.Get("view"); name != "" {
		found := false
		for _, v := range selectedScene.Views {
			if v.Name == name {
				view, found = v, true
				break
			}
		}
		if !found {
			http.Error(w, fmt.Sprintf("Scene %q has no view %q", sceneName, name), http.StatusBadRequest)
			return
		}
	}

	s.logger.Printf("Render request: scene=%s view=%s %dx%d rays=%d depth=%d",
		sceneName, view.Name, width, height, rays, depth)

	rend := renderer.NewRenderer(selectedScene, tracer.NewTracer(rays, depth), renderer.Config{
		Width:  width,
		Height: height,
	}, s.logger)
	img, stats := rend.Render(renderer.NewCameraFromView(view))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Time", stats.Elapsed.String())
	if err := png.Encode(w, img); err != nil {
		s.logger.Printf("Error encoding PNG: %v", err)
	}
}

// handleScenes lists the renderable scenes and their camera views
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	var infos []SceneInfo
	for _, name := range scene.Names() {
		sc, err := scene.ByName(name)
		if err != nil {
			continue
		}
		info := SceneInfo{Name: name}
		for _, v := range sc.Views {
			info.Views = append(info.Views, v.Name)
		}
		infos = append(infos, info)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		s.logger.Printf("Error encoding scene list: %v", err)
	}
}

// intParam parses an integer query parameter with a default and bounds
func intParam(value string, defaultValue, minValue, maxValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if parsed < minValue || parsed > maxValue {
		return 0, fmt.Errorf("%d out of range [%d, %d]", parsed, minValue, maxValue)
	}
	return parsed, nil
}
