package scene

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewTextureScene demonstrates texture mapping on each UV parameterization:
// a checkered plane, a textured sphere, cylinder, disk and triangle. texture
// is applied to the cylinder; nil selects the procedural flag.
func NewTextureScene(width, height int, texture material.Texture) (*Scene, error) {
	camera, err := geometry.NewPerspectiveCamera(core.NewVec3(0, 2, 10), core.NewVec3(0, 1, 0), core.AxisY, 50, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}
	if texture == nil {
		texture = material.NewFlagTexture(190, 100)
	}
	checker := material.NewCheckerboardTexture(64, 64, 8, core.White, core.NewVec3(0.2, 0.2, 0.2))
	redChecker := material.NewCheckerboardTexture(64, 64, 16, core.Red, core.White)

	s := NewScene()
	s.SetCamera(camera)

	ground, err := geometry.NewPlane(core.NewVec3(0, 0, 0), core.AxisY)
	if err != nil {
		return nil, fmt.Errorf("failed to create ground plane: %w", err)
	}
	s.AddOpaqueObject(ground, material.Tin, checker)

	sphere, err := geometry.NewSphere(core.NewVec3(-3, 1, 0), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create sphere: %w", err)
	}
	s.AddOpaqueObject(sphere, material.Pearl, redChecker)

	cylinder, err := geometry.NewCylinderY(core.NewVec3(0, 1, 0), 1, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to create cylinder: %w", err)
	}
	s.AddOpaqueObject(cylinder, material.Gold, texture)

	disk, err := geometry.NewDisk(core.NewVec3(3, 1.2, 0), core.NewVec3(0, 0, 1), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create disk: %w", err)
	}
	s.AddOpaqueObject(disk, material.Turquoise, redChecker)

	triangle, err := geometry.NewTriangle(core.NewVec3(-1, 2.5, -2), core.NewVec3(1, 2.5, -2), core.NewVec3(0, 4, -2))
	if err != nil {
		return nil, fmt.Errorf("failed to create triangle: %w", err)
	}
	s.AddOpaqueObject(triangle, material.Silver, checker)

	s.AddLight(lights.NewPositionalLight(core.NewVec3(0, 10, 10), core.White))
	return s, nil
}
