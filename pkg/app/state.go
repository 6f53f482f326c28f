package app

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/framebuffer"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/loaders"
	"github.com/df07/go-interactive-raytracer/pkg/material"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

const (
	// MaxPlaneZ bounds the animated plane to [-MaxPlaneZ, MaxPlaneZ]
	MaxPlaneZ = 20.0
	// PlaneStep is how far the plane moves per tick
	PlaneStep = 0.4
	// LightStep is the translation and spot direction increment per key press
	LightStep = 0.5
)

// Config holds the startup parameters of an interactive session
type Config struct {
	Width        int
	Height       int
	TexturePath  string // Image mapped onto the gold cylinder; empty uses the procedural flag
	HUD          bool   // Draw the status overlay after each frame
	AntiAliasing int
	Reflections  int
	Render       renderer.RenderConfig
	Persistent   bool // Reuse one worker pool across frames
}

// DefaultConfig returns the window size and settings of the demo
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		HUD:          true,
		AntiAliasing: 1,
		Render:       renderer.DefaultRenderConfig(),
		Persistent:   true,
	}
}

// State is everything the keyboard, the timer and the renderer share.
// It is only touched between frames.
type State struct {
	Scene       *scene.DemoScene
	FrameBuffer *framebuffer.FrameBuffer
	Tracer      *renderer.RayTracer
	Logger      core.Logger

	CurrentLight int
	AntiAliasing int
	Reflections  int
	Animated     bool
	HUD          bool
	Quit         bool

	PlaneZ   float64
	PlaneInc float64
	SpotDir  core.Vec3 // Unnormalized; the spot light stores the unit vector

	pool *renderer.WorkerPool // nil unless the session is persistent
}

// NewState builds the demo scene, frame buffer and ray tracer
func NewState(cfg Config, logger core.Logger) (*State, error) {
	if logger == nil {
		logger = core.NewDefaultLogger()
	}

	var texture material.Texture
	if cfg.TexturePath != "" {
		tex, err := loaders.LoadTexture(cfg.TexturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
		texture = tex
	}

	demo, err := scene.NewDefaultScene(cfg.Width, cfg.Height, texture)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	fb, err := framebuffer.New(cfg.Width, cfg.Height, scene.BackgroundColor)
	if err != nil {
		return nil, err
	}

	tracer := renderer.NewRayTracer(cfg.Render, logger)
	var pool *renderer.WorkerPool
	if cfg.Persistent {
		pool = renderer.NewWorkerPool(cfg.Render.Workers)
		tracer.SetExecutor(pool)
		logger.Printf("Render workers: %d\n", pool.GetNumWorkers())
	}

	return &State{
		Scene:        demo,
		FrameBuffer:  fb,
		Tracer:       tracer,
		Logger:       logger,
		AntiAliasing: max(1, cfg.AntiAliasing),
		Reflections:  cfg.Reflections,
		HUD:          cfg.HUD,
		PlaneZ:       scene.TransparentPlaneZ,
		PlaneInc:     PlaneStep,
		SpotDir:      demo.Spot.Direction(),
		pool:         pool,
	}, nil
}

// Close releases the persistent worker pool, if any
func (s *State) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SelectedLight returns the light the keyboard currently controls
func (s *State) SelectedLight() lights.Light {
	return s.Scene.Lights[s.CurrentLight]
}

// Tick advances the animation by one timer step
func (s *State) Tick() {
	if s.Animated {
		s.PlaneZ += s.PlaneInc
		if s.PlaneZ <= -MaxPlaneZ || s.PlaneZ >= MaxPlaneZ {
			s.PlaneInc = -s.PlaneInc
		}
	}
	s.Scene.TransparentPlane.SetPoint(core.NewVec3(0, 0, s.PlaneZ))
}

// Resize replaces the frame buffer and camera for a new window size
func (s *State) Resize(width, height int) error {
	if width == s.FrameBuffer.Width() && height == s.FrameBuffer.Height() {
		return nil
	}
	fb, err := framebuffer.New(width, height, s.FrameBuffer.ClearColor())
	if err != nil {
		return err
	}
	camera, err := geometry.NewPerspectiveCamera(scene.DefaultEye, scene.DefaultFocus, core.AxisY, scene.DefaultFOV, width, height)
	if err != nil {
		return fmt.Errorf("failed to resize camera: %w", err)
	}
	s.FrameBuffer = fb
	s.Scene.SetCamera(camera)
	return nil
}

// Render clears the frame buffer, ray traces the scene and draws the HUD
func (s *State) Render() error {
	s.FrameBuffer.Clear()
	if err := s.Tracer.RaytraceScene(s.FrameBuffer, s.Reflections, s.Scene.Scene, s.AntiAliasing); err != nil {
		return err
	}
	if s.HUD {
		DrawHUD(s.FrameBuffer, s.StatusLines())
	}
	return nil
}

// StatusLines describes the interactive state for the HUD
func (s *State) StatusLines() []string {
	light := s.SelectedLight()
	onOff := "OFF"
	if light.IsOn() {
		onOff = "ON"
	}
	pos := light.ActualPosition(s.Scene.EyeFrame())
	anim := "off"
	if s.Animated {
		anim = "on"
	}
	return []string{
		fmt.Sprintf("light %c %s (%.1f, %.1f, %.1f)", 'A'+rune(s.CurrentLight), onOff, pos.X, pos.Y, pos.Z),
		fmt.Sprintf("aa %d  refl %d  anim %s", s.AntiAliasing, s.Reflections, anim),
	}
}

// SaveSnapshot writes the current frame buffer to a PNG file
func (s *State) SaveSnapshot(path string) error {
	if err := s.FrameBuffer.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	s.Logger.Printf("Snapshot saved as %s\n", path)
	return nil
}
