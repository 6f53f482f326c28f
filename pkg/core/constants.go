package core

import "math"

const (
	// Epsilon offsets secondary ray origins off a surface
	Epsilon = 1.0e-5

	// Infinity is the "no hit" distance of a hit record
	Infinity = math.MaxFloat64
)

// Common colors
var (
	Black     = NewVec3(0, 0, 0)
	White     = NewVec3(1, 1, 1)
	Red       = NewVec3(1, 0, 0)
	Green     = NewVec3(0, 1, 0)
	Blue      = NewVec3(0, 0, 1)
	PaleGreen = NewVec3(0.596, 0.984, 0.596)
	Gray      = NewVec3(0.5, 0.5, 0.5)
)

// AxisX, AxisY and AxisZ are the world axes
var (
	AxisX = NewVec3(1, 0, 0)
	AxisY = NewVec3(0, 1, 0)
	AxisZ = NewVec3(0, 0, 1)
)
