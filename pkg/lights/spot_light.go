package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// SpotLight is a positional light restricted to a cone
type SpotLight struct {
	PositionalLight

	direction core.Vec3 // Unit axis of the cone
	fov       float64   // Full cone angle in radians
	cosHalf   float64   // cos(fov/2)
}

// NewSpotLight creates a spot light at position aimed along direction.
// fovDegrees is the full opening angle of the cone.
func NewSpotLight(position, color, direction core.Vec3, fovDegrees float64) (*SpotLight, error) {
	if direction.IsZero() {
		return nil, fmt.Errorf("spot light direction must be non-zero")
	}
	if fovDegrees <= 0 || fovDegrees > 360 {
		return nil, fmt.Errorf("spot light fov must be in (0, 360] degrees, got %f", fovDegrees)
	}

	s := &SpotLight{PositionalLight: *NewPositionalLight(position, color)}
	s.SetDirection(direction)
	s.setFOV(fovDegrees * math.Pi / 180)
	return s, nil
}

// Direction returns the unit axis of the cone
func (s *SpotLight) Direction() core.Vec3 {
	return s.direction
}

// SetDirection aims the spot light; the direction is normalized.
// A zero vector leaves the current direction unchanged.
func (s *SpotLight) SetDirection(direction core.Vec3) {
	if direction.IsZero() {
		return
	}
	s.direction = direction.Normalize()
}

// FOV returns the full cone angle in radians
func (s *SpotLight) FOV() float64 {
	return s.fov
}

func (s *SpotLight) setFOV(fov float64) {
	s.fov = fov
	s.cosHalf = math.Cos(fov / 2)
}

// IsInCone reports whether point lies strictly inside the cone
func (s *SpotLight) IsInCone(point core.Vec3, eyeFrame core.Frame) bool {
	toPoint := point.Subtract(s.ActualPosition(eyeFrame)).Normalize()
	return toPoint.Dot(s.direction) > s.cosHalf
}

// Illuminate implements Light. Points outside the cone receive nothing.
func (s *SpotLight) Illuminate(point, normal core.Vec3, mat material.Material, eyeFrame core.Frame, inShadow bool) core.Vec3 {
	if !s.IsInCone(point, eyeFrame) {
		return core.Black
	}
	return s.PositionalLight.Illuminate(point, normal, mat, eyeFrame, inShadow)
}
