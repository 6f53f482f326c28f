package lights

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// Light is a local light source evaluated with the Phong model
type Light interface {
	// Illuminate returns this light's contribution at a surface point.
	// normal must face the viewer; eyeFrame is the camera frame.
	Illuminate(point, normal core.Vec3, mat material.Material, eyeFrame core.Frame, inShadow bool) core.Vec3

	// PointIsInAShadow casts a shadow feeler from point toward the light
	PointIsInAShadow(point, normal core.Vec3, objects []geometry.VisibleShape, eyeFrame core.Frame) bool

	// ActualPosition returns the world position, resolving camera-tied lights through eyeFrame
	ActualPosition(eyeFrame core.Frame) core.Vec3

	IsOn() bool
	SetOn(on bool)
	Toggle()

	// Translate moves the light by delta in its own coordinate system
	Translate(delta core.Vec3)
}

// Attenuation holds the coefficients of the distance falloff
// factor(d) = 1 / (Constant + Linear*d + Quadratic*d²)
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// DefaultAttenuation leaves the light unattenuated
func DefaultAttenuation() Attenuation {
	return Attenuation{Constant: 1}
}

// Factor returns the attenuation at distance d.
// A non-positive denominator yields 1.
func (a Attenuation) Factor(d float64) float64 {
	denominator := a.Constant + a.Linear*d + a.Quadratic*d*d
	if denominator <= 0 {
		return 1
	}
	return 1 / denominator
}
