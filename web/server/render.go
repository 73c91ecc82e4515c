package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/df07/go-sphere-raytracer/pkg/display"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

const (
	maxDimension = 2000
	maxSamples   = 10000
	maxDepth     = 1000
)

var renderCounter atomic.Int64

// RenderRequest represents a render request from the client. Zero sampling
// fields keep the scene's own configuration.
type RenderRequest struct {
	Scene   string
	Width   int
	Height  int
	Samples int
	Depth   int
	Seed    int64
}

// parseRenderRequest parses and range-checks request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, maxDimension); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", 42, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// createScene resolves a built-in scene ID or a "file:" ID from the scenes directory.
// Clients never supply file paths.
func (s *Server) createScene(id string) (*scene.Scene, error) {
	if !strings.HasPrefix(id, "file:") {
		return scene.ByName(id)
	}

	files, err := scene.ListSceneFiles(s.scenesDir)
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.ID == id {
			return loaders.LoadSceneFile(info.FilePath)
		}
	}
	return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, id)
}

// handleRender renders the requested scene once and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Width > 0 || req.Height > 0 {
		width, height := sceneObj.Width, sceneObj.Height
		if req.Width > 0 {
			width = req.Width
		}
		if req.Height > 0 {
			height = req.Height
		}
		sceneObj = sceneObj.Resize(width, height)
	}
	sceneObj.SamplingConfig = sceneObj.SamplingConfig.Merge(renderer.SamplingConfig{
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.Depth,
	})
	if err := sceneObj.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	raytracer := renderer.NewRaytracer(sceneObj, sceneObj.Width, sceneObj.Height)
	raytracer.SetLogger(NewWebLogger(renderID))

	config := renderer.DefaultRenderConfig()
	config.Seed = req.Seed

	// The request context cancels the render when the client disconnects
	fb, stats, err := raytracer.Render(r.Context(), config)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("Render error: %v", err))
		return
	}

	data, err := display.EncodePNG(fb)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Total-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
