package scene

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// BackgroundColor is the clear color used for rays that miss every opaque object
var BackgroundColor = core.PaleGreen

// Scene contains all the elements needed for rendering.
// Objects and lights are read-only while a frame renders.
type Scene struct {
	Camera             *geometry.PerspectiveCamera
	OpaqueObjects      []geometry.VisibleShape
	TransparentObjects []geometry.TransparentShape
	Lights             []lights.Light
}

// NewScene creates an empty scene without a camera
func NewScene() *Scene {
	return &Scene{
		OpaqueObjects:      make([]geometry.VisibleShape, 0),
		TransparentObjects: make([]geometry.TransparentShape, 0),
		Lights:             make([]lights.Light, 0),
	}
}

// AddOpaqueObject adds a shape with its material. texture may be nil.
func (s *Scene) AddOpaqueObject(shape geometry.Shape, mat material.Material, texture material.Texture) {
	s.OpaqueObjects = append(s.OpaqueObjects, geometry.VisibleShape{
		Shape:    shape,
		Material: mat,
		Texture:  texture,
	})
}

// AddTransparentObject adds a see-through shape with its color and opacity
func (s *Scene) AddTransparentObject(shape geometry.Shape, color core.Vec3, alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %f", alpha)
	}
	s.TransparentObjects = append(s.TransparentObjects, geometry.TransparentShape{
		Shape: shape,
		Color: color,
		Alpha: alpha,
	})
	return nil
}

// AddLight adds a light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// SetCamera replaces the active camera
func (s *Scene) SetCamera(camera *geometry.PerspectiveCamera) {
	s.Camera = camera
}

// EyeFrame returns the camera frame, or the world frame when no camera is set
func (s *Scene) EyeFrame() core.Frame {
	if s.Camera == nil {
		return core.WorldFrame()
	}
	return s.Camera.Frame
}

// GetPrimitiveCount returns the total number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.OpaqueObjects) + len(s.TransparentObjects)
}
