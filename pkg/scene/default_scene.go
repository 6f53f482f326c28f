package scene

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// DemoScene is the interactive demo: a scene plus handles to the parts the
// keyboard and animation timer manipulate
type DemoScene struct {
	*Scene

	TransparentPlane *geometry.Plane
	Positional       *lights.PositionalLight
	Spot             *lights.SpotLight
}

// Default camera and animation parameters of the demo
var (
	DefaultEye   = core.NewVec3(6, 6, 6)
	DefaultFocus = core.NewVec3(0, 0, 0)
)

const (
	DefaultFOV = 120.0

	// TransparentPlaneZ is the starting depth of the animated plane
	TransparentPlaneZ = -20.0
)

// NewDefaultScene builds the demo scene. texture is mapped onto the gold
// cylinder; nil selects the procedural flag.
func NewDefaultScene(width, height int, texture material.Texture) (*DemoScene, error) {
	camera, err := geometry.NewPerspectiveCamera(DefaultEye, DefaultFocus, core.AxisY, DefaultFOV, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}
	if texture == nil {
		texture = material.NewFlagTexture(190, 100)
	}

	s := NewScene()
	s.SetCamera(camera)

	// Ground
	ground, err := geometry.NewPlane(core.NewVec3(0, -2, 0), core.AxisY)
	if err != nil {
		return nil, fmt.Errorf("failed to create ground plane: %w", err)
	}
	s.AddOpaqueObject(ground, material.Tin, nil)

	// Animated see-through plane behind the objects
	glass, err := geometry.NewPlane(core.NewVec3(0, 0, TransparentPlaneZ), core.AxisZ)
	if err != nil {
		return nil, fmt.Errorf("failed to create transparent plane: %w", err)
	}
	if err := s.AddTransparentObject(glass, core.Red, 0.25); err != nil {
		return nil, err
	}

	sphere, err := geometry.NewSphere(core.NewVec3(-1, 3, -1), 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create sphere: %w", err)
	}
	s.AddOpaqueObject(sphere, material.Brass, nil)

	cylY, err := geometry.NewCylinderY(core.NewVec3(8, 3, -2), 1.5, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to create Y cylinder: %w", err)
	}
	s.AddOpaqueObject(cylY, material.Gold, texture)

	disk, err := geometry.NewDisk(core.NewVec3(-8, 0, 10), core.AxisX, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to create disk: %w", err)
	}
	s.AddOpaqueObject(disk, material.Turquoise, nil)

	cylZ, err := geometry.NewCylinderZ(core.NewVec3(0, 0, 9), 2, 2.5)
	if err != nil {
		return nil, fmt.Errorf("failed to create Z cylinder: %w", err)
	}
	s.AddOpaqueObject(cylZ, material.Emerald, nil)

	triangle, err := geometry.NewTriangle(core.NewVec3(3, 3, -2), core.NewVec3(7, 3.5, -10), core.NewVec3(8, -1, 2))
	if err != nil {
		return nil, fmt.Errorf("failed to create triangle: %w", err)
	}
	s.AddOpaqueObject(triangle, material.Pearl, nil)

	closed, err := geometry.NewClosedCylinderY(core.NewVec3(4.5, 3.5, 5), 1, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to create closed cylinder: %w", err)
	}
	s.AddOpaqueObject(closed, material.Chrome, nil)

	cone, err := geometry.NewConeY(core.NewVec3(-2.5, 8, 5.5), 2.5, 6)
	if err != nil {
		return nil, fmt.Errorf("failed to create cone: %w", err)
	}
	s.AddOpaqueObject(cone, material.RedPlastic, nil)

	// Lights: a white positional light and a switched-off spot
	positional := lights.NewPositionalLight(core.NewVec3(15, 15, 15), core.White)
	s.AddLight(positional)

	spot, err := lights.NewSpotLight(core.NewVec3(-15, 5, 10), core.White, core.NewVec3(0, -1, 0), 90)
	if err != nil {
		return nil, fmt.Errorf("failed to create spot light: %w", err)
	}
	spot.SetOn(false)
	s.AddLight(spot)

	return &DemoScene{
		Scene:            s,
		TransparentPlane: glass,
		Positional:       positional,
		Spot:             spot,
	}, nil
}

// NewPlaneScene builds a single tin ground plane at y=-2 viewed from the
// default eye, lit by one switched-off light
func NewPlaneScene(width, height int) (*Scene, error) {
	camera, err := geometry.NewPerspectiveCamera(DefaultEye, DefaultFocus, core.AxisY, DefaultFOV, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	ground, err := geometry.NewPlane(core.NewVec3(0, -2, 0), core.AxisY)
	if err != nil {
		return nil, fmt.Errorf("failed to create ground plane: %w", err)
	}

	s := NewScene()
	s.SetCamera(camera)
	s.AddOpaqueObject(ground, material.Tin, nil)

	light := lights.NewPositionalLight(core.NewVec3(15, 15, 15), core.White)
	light.SetOn(false)
	s.AddLight(light)
	return s, nil
}
