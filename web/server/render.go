package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/framebuffer"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// Stats represents render statistics
type Stats struct {
	Bands         int     `json:"bands"`
	SamplesPerPx  int     `json:"samplesPerPixel"`
	TotalSamples  int64   `json:"totalSamples"`
	RaysPerSecond float64 `json:"raysPerSecond"`
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	RenderID  string           `json:"renderId"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	ElapsedMs int64            `json:"elapsedMs"`
	Console   []ConsoleMessage `json:"console"`
}

// RenderingPipeline contains the configured scene and raytracer
type RenderingPipeline struct {
	Scene       *scene.Scene
	Raytracer   *renderer.RayTracer
	FrameBuffer *framebuffer.FrameBuffer
}

// handleRender renders one frame and returns it as a PNG, or as JSON with
// stats and console output when format=json
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	pipeline, err := s.setupRenderingPipeline(req, webLogger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	startTime := time.Now()
	if err := pipeline.Raytracer.RaytraceScene(pipeline.FrameBuffer, req.Reflections, pipeline.Scene, req.AA); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}
	elapsed := time.Since(startTime)

	if r.URL.Query().Get("format") != "json" {
		var buf bytes.Buffer
		if err := png.Encode(&buf, pipeline.FrameBuffer.Image()); err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("X-Render-ID", webLogger.RenderID())
		w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(elapsed.Milliseconds(), 10))
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
		return
	}

	imageData, err := s.imageToBase64PNG(pipeline.FrameBuffer.Image())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	stats := pipeline.Raytracer.LastStats()
	writeJSON(w, http.StatusOK, RenderResponse{
		RenderID:  webLogger.RenderID(),
		Width:     req.Width,
		Height:    req.Height,
		ImageData: imageData,
		Stats: Stats{
			Bands:         stats.Bands,
			SamplesPerPx:  stats.SamplesPerPx,
			TotalSamples:  int64(stats.TotalSamples),
			RaysPerSecond: stats.RaysPerSecond(),
		},
		ElapsedMs: elapsed.Milliseconds(),
		Console:   drainConsole(consoleChan),
	})
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, *WebLogger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// setupRenderingPipeline builds the scene, frame buffer and ray tracer for a request
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger core.Logger) (*RenderingPipeline, error) {
	sceneObj, err := s.createScene(req)
	if err != nil {
		return nil, err
	}
	fb, err := framebuffer.New(req.Width, req.Height, scene.BackgroundColor)
	if err != nil {
		return nil, err
	}
	return &RenderingPipeline{
		Scene:       sceneObj,
		Raytracer:   renderer.NewRayTracer(renderer.DefaultRenderConfig(), logger),
		FrameBuffer: fb,
	}, nil
}

// drainConsole collects the messages logged so far without blocking
func drainConsole(consoleChan chan ConsoleMessage) []ConsoleMessage {
	messages := []ConsoleMessage{}
	for {
		select {
		case msg := <-consoleChan:
			messages = append(messages, msg)
		default:
			return messages
		}
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
