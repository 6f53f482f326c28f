package lights

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// PositionalLight is a point light radiating equally in every direction
type PositionalLight struct {
	Position core.Vec3 // World position, or camera-frame position when TiedToWorld is false
	Color    core.Vec3
	On       bool

	// TiedToWorld is false for lights that travel with the camera
	TiedToWorld bool

	AttenuationOn bool
	Attenuation   Attenuation
}

// NewPositionalLight creates a light at position that is on and fixed in the world
func NewPositionalLight(position, color core.Vec3) *PositionalLight {
	return &PositionalLight{
		Position:    position,
		Color:       color,
		On:          true,
		TiedToWorld: true,
		Attenuation: DefaultAttenuation(),
	}
}

// Illuminate implements Light
func (l *PositionalLight) Illuminate(point, normal core.Vec3, mat material.Material, eyeFrame core.Frame, inShadow bool) core.Vec3 {
	if !l.On {
		return core.Black
	}
	if inShadow {
		return AmbientColor(mat.Ambient, l.Color)
	}

	v := eyeFrame.Origin.Subtract(point).Normalize()
	return TotalColor(mat, l.Color, v, normal, l.ActualPosition(eyeFrame), point, l.AttenuationOn, l.Attenuation)
}

// PointIsInAShadow implements Light
func (l *PositionalLight) PointIsInAShadow(point, normal core.Vec3, objects []geometry.VisibleShape, eyeFrame core.Frame) bool {
	return geometry.AnyHit(objects, ShadowFeeler(point, normal, l.ActualPosition(eyeFrame)))
}

// ActualPosition implements Light
func (l *PositionalLight) ActualPosition(eyeFrame core.Frame) core.Vec3 {
	if l.TiedToWorld {
		return l.Position
	}
	return eyeFrame.ToWorld(l.Position)
}

// IsOn implements Light
func (l *PositionalLight) IsOn() bool {
	return l.On
}

// SetOn implements Light
func (l *PositionalLight) SetOn(on bool) {
	l.On = on
}

// Toggle implements Light
func (l *PositionalLight) Toggle() {
	l.On = !l.On
}

// Translate implements Light
func (l *PositionalLight) Translate(delta core.Vec3) {
	l.Position = l.Position.Add(delta)
}

// ShadowFeeler returns the ray from a point toward a light.
// The origin is lifted off the surface by core.Epsilon along the normal.
func ShadowFeeler(point, normal, lightPos core.Vec3) core.Ray {
	origin := point.Add(normal.Multiply(core.Epsilon))
	return core.NewRayThrough(origin, lightPos)
}
