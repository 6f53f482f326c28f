package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Console message levels
const (
	LevelInfo    = "info"
	LevelTiming  = "timing"
	LevelInspect = "inspect"
	LevelWarning = "warning"
	LevelError   = "error"
)

// ConsoleMessage is one line the ray tracer logged during a request
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// WebLogger implements core.Logger by collecting messages for the response
// and mirroring them to the server log tagged with the request ID
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger for one request
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

var _ core.Logger = (*WebLogger)(nil)

// RenderID returns the request ID messages are tagged with
func (wl *WebLogger) RenderID() string {
	return wl.renderID
}

// Printf implements core.Logger
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	level := messageLevel(message)
	log.Printf("[%s] %s: %s", wl.renderID, level, strings.TrimRight(message, "\n"))

	if wl.consoleChan == nil {
		return
	}
	// Never block the render on a slow or full console
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
	}
}

// messageLevel classifies a ray tracer log line
func messageLevel(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.HasPrefix(message, "Render time:"):
		return LevelTiming
	case strings.HasPrefix(message, "Inspect "):
		return LevelInspect
	case strings.Contains(lower, "error"), strings.Contains(lower, "failed"):
		return LevelError
	case strings.Contains(lower, "warning"):
		return LevelWarning
	default:
		return LevelInfo
	}
}
