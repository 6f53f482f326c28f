package scene

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewPrimitivesScene lines up the quadric primitives (open and closed
// cylinders, a Z cylinder and cones) on a tin ground plane, lit by a
// positional light and a spot light aimed at the row
func NewPrimitivesScene(width, height int) (*Scene, error) {
	camera, err := geometry.NewPerspectiveCamera(core.NewVec3(0, 3, 12), core.NewVec3(0, 1, 0), core.AxisY, 50, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	s := NewScene()
	s.SetCamera(camera)

	ground, err := geometry.NewPlane(core.NewVec3(0, 0, 0), core.AxisY)
	if err != nil {
		return nil, fmt.Errorf("failed to create ground plane: %w", err)
	}
	s.AddOpaqueObject(ground, material.Tin, nil)

	type placed struct {
		name  string
		shape func() (geometry.Shape, error)
		mat   material.Material
	}
	row := []placed{
		{"open cylinder", func() (geometry.Shape, error) {
			return geometry.NewCylinderY(core.NewVec3(-4.5, 1, 0), 0.8, 2)
		}, material.Gold},
		{"closed cylinder", func() (geometry.Shape, error) {
			return geometry.NewClosedCylinderY(core.NewVec3(-1.5, 1, 0), 0.8, 2)
		}, material.Chrome},
		{"z cylinder", func() (geometry.Shape, error) {
			return geometry.NewCylinderZ(core.NewVec3(1.5, 0.8, 0), 0.8, 2.5)
		}, material.Emerald},
		{"cone", func() (geometry.Shape, error) {
			return geometry.NewConeY(core.NewVec3(4.5, 2.5, 0), 1, 2.5)
		}, material.RedPlastic},
	}
	for _, p := range row {
		shape, err := p.shape()
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", p.name, err)
		}
		s.AddOpaqueObject(shape, p.mat, nil)
	}

	s.AddLight(lights.NewPositionalLight(core.NewVec3(5, 10, 10), core.White))
	spot, err := lights.NewSpotLight(core.NewVec3(0, 8, 4), core.NewVec3(0.6, 0.6, 0.6), core.NewVec3(0, -1, -0.5), 60)
	if err != nil {
		return nil, fmt.Errorf("failed to create spot light: %w", err)
	}
	s.AddLight(spot)
	return s, nil
}
