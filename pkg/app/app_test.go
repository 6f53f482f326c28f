package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/framebuffer"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *captureLogger) last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

func newTestState(t *testing.T) (*State, *captureLogger) {
	t.Helper()
	logger := &captureLogger{}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 24
	cfg.Persistent = false
	s, err := NewState(cfg, logger)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	t.Cleanup(s.Close)
	return s, logger
}

func TestHandleKey_LightSelectionAndToggle(t *testing.T) {
	s, logger := newTestState(t)

	s.HandleKey('b')
	if s.CurrentLight != 1 {
		t.Fatalf("Expected light 1 selected, got %d", s.CurrentLight)
	}
	if s.Scene.Spot.IsOn() {
		t.Fatal("Expected spot light to start off")
	}
	s.HandleKey('o')
	if !s.Scene.Spot.IsOn() {
		t.Error("Expected spot light on after toggle")
	}
	if logger.last() != "ON\n" {
		t.Errorf("Expected ON to be logged, got %q", logger.last())
	}

	s.HandleKey('A')
	if s.CurrentLight != 0 {
		t.Fatalf("Expected light 0 selected, got %d", s.CurrentLight)
	}
	s.HandleKey('O')
	if s.Scene.Positional.IsOn() {
		t.Error("Expected positional light off after toggle")
	}
	if logger.last() != "OFF\n" {
		t.Errorf("Expected OFF to be logged, got %q", logger.last())
	}
}

func TestHandleKey_TranslateLight(t *testing.T) {
	tests := []struct {
		key  rune
		want core.Vec3
	}{
		{'x', core.NewVec3(14.5, 15, 15)},
		{'X', core.NewVec3(15.5, 15, 15)},
		{'y', core.NewVec3(15, 14.5, 15)},
		{'Y', core.NewVec3(15, 15.5, 15)},
		{'z', core.NewVec3(15, 15, 14.5)},
		{'Z', core.NewVec3(15, 15, 15.5)},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			s, _ := newTestState(t)
			s.HandleKey(tt.key)
			got := s.Scene.Positional.Position
			if !got.Equals(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHandleKey_SpotDirectionIsNormalized(t *testing.T) {
	s, _ := newTestState(t)

	// (0,-1,0) + (0.5,0,0)
	s.HandleKey('J')
	dir := s.Scene.Spot.Direction()
	want := core.NewVec3(0.5, -1, 0).Normalize()
	if !dir.Equals(want) {
		t.Errorf("Expected %v, got %v", want, dir)
	}
	if !s.SpotDir.Equals(core.NewVec3(0.5, -1, 0)) {
		t.Errorf("Expected raw spot direction (0.5,-1,0), got %v", s.SpotDir)
	}

	s.HandleKey('k')
	s.HandleKey('l')
	if !s.SpotDir.Equals(core.NewVec3(0.5, -1.5, -0.5)) {
		t.Errorf("Expected raw spot direction (0.5,-1.5,-0.5), got %v", s.SpotDir)
	}
}

func TestHandleKey_Settings(t *testing.T) {
	s, logger := newTestState(t)

	s.HandleKey('+')
	if s.AntiAliasing != 3 {
		t.Errorf("Expected AA 3, got %d", s.AntiAliasing)
	}
	if logger.last() != "Anti aliasing: 3\n" {
		t.Errorf("Unexpected log %q", logger.last())
	}
	s.HandleKey('-')
	if s.AntiAliasing != 1 {
		t.Errorf("Expected AA 1, got %d", s.AntiAliasing)
	}

	for _, key := range []rune{'0', '1', '2'} {
		s.HandleKey(key)
		if s.Reflections != int(key-'0') {
			t.Errorf("Key %c: expected %d reflections, got %d", key, key-'0', s.Reflections)
		}
	}
	if logger.last() != "Num reflections: 2\n" {
		t.Errorf("Unexpected log %q", logger.last())
	}

	s.HandleKey('p')
	if !s.Animated {
		t.Error("Expected animation on")
	}
	s.HandleKey('d')
	if s.Animated {
		t.Error("Expected animation off")
	}
}

func TestHandleKey_EscapeAndUnmapped(t *testing.T) {
	s, logger := newTestState(t)

	if s.HandleKey('q') {
		t.Error("Expected q to be unmapped")
	}
	if logger.last() != "113 unmapped key pressed.\n" {
		t.Errorf("Unexpected log %q", logger.last())
	}
	if s.Quit {
		t.Error("Unmapped key must not quit")
	}

	if !s.HandleKey(KeyEscape) {
		t.Error("Expected escape to be mapped")
	}
	if !s.Quit {
		t.Error("Expected escape to request quit")
	}
}

func TestTick_ReversesAtBounds(t *testing.T) {
	s, _ := newTestState(t)

	s.Tick()
	if s.PlaneZ != scene.TransparentPlaneZ {
		t.Errorf("Expected plane to stay put while paused, got z=%f", s.PlaneZ)
	}

	s.Animated = true
	for i := 0; i < 200; i++ {
		s.Tick()
		if s.PlaneZ < -MaxPlaneZ-PlaneStep || s.PlaneZ > MaxPlaneZ+PlaneStep {
			t.Fatalf("Plane left its range: z=%f", s.PlaneZ)
		}
	}
	if got := s.Scene.TransparentPlane.Point.Z; got != s.PlaneZ {
		t.Errorf("Expected plane point z=%f, got %f", s.PlaneZ, got)
	}
}

func TestRender_DrawsSceneAndHUD(t *testing.T) {
	s, logger := newTestState(t)
	s.HUD = false

	if err := s.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	center, _ := s.FrameBuffer.GetColor(16, 12)
	if center.Equals(scene.BackgroundColor) {
		t.Error("Expected an object at the image center")
	}
	if !strings.HasPrefix(logger.last(), "Render time:") {
		t.Errorf("Expected render time to be logged, got %q", logger.last())
	}
}

func TestResize(t *testing.T) {
	s, _ := newTestState(t)
	if err := s.Resize(40, 30); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if s.FrameBuffer.Width() != 40 || s.FrameBuffer.Height() != 30 {
		t.Fatalf("Expected 40x30, got %dx%d", s.FrameBuffer.Width(), s.FrameBuffer.Height())
	}
	if err := s.Render(); err != nil {
		t.Errorf("Render after resize failed: %v", err)
	}
	if err := s.Resize(0, 30); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestDrawHUD_WritesPixels(t *testing.T) {
	fb, err := framebuffer.New(64, 24, core.Black)
	if err != nil {
		t.Fatal(err)
	}
	DrawHUD(fb, []string{"AA"})

	lit := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			c, _ := fb.GetColor(x, y)
			if c.Equals(core.White) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected HUD text to light some pixels")
	}
}

func TestStatusLines(t *testing.T) {
	s, _ := newTestState(t)
	lines := s.StatusLines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "light A ON") {
		t.Errorf("Unexpected first line %q", lines[0])
	}
}

func TestSaveSnapshot(t *testing.T) {
	s, logger := newTestState(t)
	if err := s.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SaveSnapshot(path); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected snapshot file: %v", err)
	}
	if !strings.Contains(logger.last(), "frame.png") {
		t.Errorf("Expected snapshot to be logged, got %q", logger.last())
	}
}

func TestNewState_PersistentPool(t *testing.T) {
	logger := &captureLogger{}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 12
	cfg.HUD = false
	cfg.Render.Workers = 3
	s, err := NewState(cfg, logger)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	if len(logger.lines) == 0 || logger.lines[0] != "Render workers: 3\n" {
		t.Errorf("Expected the worker count to be logged, got %q", logger.lines)
	}
	for i := 0; i < 2; i++ {
		if err := s.Render(); err != nil {
			t.Fatalf("Render %d failed: %v", i, err)
		}
	}

	s.Close()
	s.Close()
	if err := s.Render(); err != nil {
		t.Errorf("Render after Close failed: %v", err)
	}
}
