package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// SphereGridSize is the number of spheres along each side of the grid
const SphereGridSize = 8

// oklchToRGB converts OKLCH color space to RGB
// L: lightness (0-1), C: chroma (0-0.4), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLab to linear RGB
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of spheres whose hue varies along X and
// chroma along Z, with shininess alternating between rows
func NewSphereGridScene(width, height int) (*Scene, error) {
	camera, err := geometry.NewPerspectiveCamera(core.NewVec3(4.5, 6, 18), core.NewVec3(4.5, 0.8, 4.5), core.AxisY, 40, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	s := NewScene()
	s.SetCamera(camera)

	ground, err := geometry.NewPlane(core.NewVec3(0, 0, 0), core.AxisY)
	if err != nil {
		return nil, fmt.Errorf("failed to create ground plane: %w", err)
	}
	s.AddOpaqueObject(ground, material.NewSolidMaterial(core.Gray, 10), nil)

	// Spread the grid over a 9x9 area centered on (4.5, 4.5)
	const targetArea = 9.0
	spacing := targetArea / float64(SphereGridSize-1)
	radius := spacing * 0.35

	for i := 0; i < SphereGridSize; i++ {
		for j := 0; j < SphereGridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := float64(i) / float64(SphereGridSize-1) * 360.0
			chroma := 0.05 + float64(j)/float64(SphereGridSize-1)*0.2
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)

			sphere, err := geometry.NewSphere(core.NewVec3(x, radius, z), radius)
			if err != nil {
				return nil, fmt.Errorf("failed to create sphere (%d, %d): %w", i, j, err)
			}
			shininess := 10.0
			if j%2 == 1 {
				shininess = 80
			}
			s.AddOpaqueObject(sphere, material.NewSolidMaterial(oklchToRGB(lightness, chroma, hue), shininess), nil)
		}
	}

	s.AddLight(lights.NewPositionalLight(core.NewVec3(20, 25, 20), core.White))
	return s, nil
}
