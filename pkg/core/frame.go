package core

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateFrame is returned when a frame cannot form an orthonormal basis
var ErrDegenerateFrame = errors.New("degenerate frame: eye equals focus or up is parallel to the view direction")

// Frame is a right-handed orthonormal coordinate frame.
// U points right, V points up and W points backwards (from the focus towards the origin).
type Frame struct {
	Origin  Vec3
	U, V, W Vec3

	toWorld mgl64.Mat4
}

// NewFrame creates a frame located at eye, looking at focus
func NewFrame(eye, focus, up Vec3) (Frame, error) {
	back := eye.Subtract(focus)
	if back.LengthSquared() == 0 {
		return Frame{}, ErrDegenerateFrame
	}
	if back.Normalize().Cross(up.Normalize()).Length() < 1e-9 {
		return Frame{}, ErrDegenerateFrame
	}

	view := mgl64.LookAtV(toMgl(eye), toMgl(focus), toMgl(up))
	return Frame{
		Origin:  eye,
		U:       fromMgl(view.Row(0).Vec3()),
		V:       fromMgl(view.Row(1).Vec3()),
		W:       fromMgl(view.Row(2).Vec3()),
		toWorld: view.Inv(),
	}, nil
}

// WorldFrame returns the identity frame at the world origin
func WorldFrame() Frame {
	return Frame{
		Origin:  Vec3{},
		U:       AxisX,
		V:       AxisY,
		W:       AxisZ,
		toWorld: mgl64.Ident4(),
	}
}

// ToWorld converts a point expressed in frame coordinates into world coordinates
func (f Frame) ToWorld(p Vec3) Vec3 {
	return fromMgl(f.toWorld.Mul4x1(toMgl(p).Vec4(1)).Vec3())
}

// DirectionToWorld converts a direction expressed in frame coordinates into world coordinates
func (f Frame) DirectionToWorld(d Vec3) Vec3 {
	return fromMgl(f.toWorld.Mul4x1(toMgl(d).Vec4(0)).Vec3())
}

// IsOrthonormal reports whether U, V and W are unit length and mutually orthogonal
func (f Frame) IsOrthonormal() bool {
	const tolerance = 1e-9
	unit := func(v Vec3) bool { return math.Abs(v.Length()-1) < tolerance }
	return unit(f.U) && unit(f.V) && unit(f.W) &&
		math.Abs(f.U.Dot(f.V)) < tolerance &&
		math.Abs(f.U.Dot(f.W)) < tolerance &&
		math.Abs(f.V.Dot(f.W)) < tolerance
}

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
