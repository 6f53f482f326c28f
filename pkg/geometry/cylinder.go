package geometry

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// CylinderY is an open cylinder aligned with the Y axis.
// Length is the total height, centered on Center.
type CylinderY struct {
	Center core.Vec3
	Radius float64
	Length float64
}

// CylinderZ is an open cylinder aligned with the Z axis.
// Length is the total depth, centered on Center.
type CylinderZ struct {
	Center core.Vec3
	Radius float64
	Length float64
}

// ClosedCylinderY is a Y-aligned cylinder capped at both ends
type ClosedCylinderY struct {
	CylinderY
	top, bottom *Disk
}

// NewCylinderY creates a new open Y-aligned cylinder
func NewCylinderY(center core.Vec3, radius, length float64) (*CylinderY, error) {
	if err := validateCylinder(radius, length); err != nil {
		return nil, err
	}
	return &CylinderY{Center: center, Radius: radius, Length: length}, nil
}

// NewCylinderZ creates a new open Z-aligned cylinder
func NewCylinderZ(center core.Vec3, radius, length float64) (*CylinderZ, error) {
	if err := validateCylinder(radius, length); err != nil {
		return nil, err
	}
	return &CylinderZ{Center: center, Radius: radius, Length: length}, nil
}

// NewClosedCylinderY creates a Y-aligned cylinder with disk caps
func NewClosedCylinderY(center core.Vec3, radius, length float64) (*ClosedCylinderY, error) {
	side, err := NewCylinderY(center, radius, length)
	if err != nil {
		return nil, err
	}

	half := core.NewVec3(0, length/2, 0)
	top, err := NewDisk(center.Add(half), core.AxisY, radius)
	if err != nil {
		return nil, fmt.Errorf("failed to create top cap: %w", err)
	}
	bottom, err := NewDisk(center.Subtract(half), core.AxisY.Negate(), radius)
	if err != nil {
		return nil, fmt.Errorf("failed to create bottom cap: %w", err)
	}

	return &ClosedCylinderY{CylinderY: *side, top: top, bottom: bottom}, nil
}

func validateCylinder(radius, length float64) error {
	if radius <= 0 {
		return fmt.Errorf("cylinder radius must be positive, got %f", radius)
	}
	if length <= 0 {
		return fmt.Errorf("cylinder length must be positive, got %f", length)
	}
	return nil
}

// Hit tests the curved side of the cylinder
func (c *CylinderY) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	return hitCylinderY(ray, c.Center, c.Radius, c.Length, tMin, tMax)
}

// Hit tests the curved side by solving the Y-aligned case with Y and Z swapped
func (c *CylinderZ) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	local := core.Ray{Origin: swapYZ(ray.Origin), Direction: swapYZ(ray.Direction)}
	hit, ok := hitCylinderY(local, swapYZ(c.Center), c.Radius, c.Length, tMin, tMax)
	if !ok {
		return Intersection{}, false
	}
	hit.Point = swapYZ(hit.Point)
	hit.Normal = swapYZ(hit.Normal)
	return hit, true
}

// Hit tests the side and both caps, keeping the nearest
func (c *ClosedCylinderY) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	var closest Intersection
	found := false
	closestT := tMax

	for _, part := range []Shape{&c.CylinderY, c.top, c.bottom} {
		if hit, ok := part.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
			found = true
		}
	}
	return closest, found
}

func hitCylinderY(ray core.Ray, center core.Vec3, radius, length, tMin, tMax float64) (Intersection, bool) {
	ox := ray.Origin.X - center.X
	oz := ray.Origin.Z - center.Z
	dx := ray.Direction.X
	dz := ray.Direction.Z

	// Quadratic in the XZ plane; the Y extent is checked per root
	a := dx*dx + dz*dz
	b := 2 * (ox*dx + oz*dz)
	cc := ox*ox + oz*oz - radius*radius

	t0, t1, n := solveQuadratic(a, b, cc)
	halfLength := length / 2
	for i, t := range [2]float64{t0, t1} {
		if i >= n || !inRange(t, tMin, tMax) {
			continue
		}
		y := ray.Origin.Y + t*ray.Direction.Y - center.Y
		if y < -halfLength || y > halfLength {
			continue
		}
		point := ray.At(t)
		normal := core.NewVec3(point.X-center.X, 0, point.Z-center.Z).Multiply(1.0 / radius)
		u := angleUV(normal.X, normal.Z)
		v := (y + halfLength) / length
		return newIntersection(ray, t, normal, u, v), true
	}
	return Intersection{}, false
}

func swapYZ(v core.Vec3) core.Vec3 {
	return core.Vec3{X: v.X, Y: v.Z, Z: v.Y}
}
