package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Disk represents a circular disk in 3D space
type Disk struct {
	Center core.Vec3 // Center of the disk
	Normal core.Vec3 // Unit normal (pointing "up" from the disk)
	Radius float64   // Radius of the disk
	Right  core.Vec3 // Right vector (perpendicular to normal)
	Up     core.Vec3 // Up vector (perpendicular to normal and right)
}

// NewDisk creates a new disk
func NewDisk(center, normal core.Vec3, radius float64) (*Disk, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("disk radius must be positive, got %f", radius)
	}
	if normal.IsZero() {
		return nil, fmt.Errorf("disk normal must be non-zero")
	}

	n := normal.Normalize()
	right, up := tangentBasis(n)

	return &Disk{
		Center: center,
		Normal: n,
		Radius: radius,
		Right:  right,
		Up:     up,
	}, nil
}

// Hit implements the Shape interface
func (d *Disk) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	// Check if ray intersects the plane containing the disk
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return Intersection{}, false // Ray is parallel to disk
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if !inRange(t, tMin, tMax) {
		return Intersection{}, false
	}

	// Check if intersection point is within disk radius
	centerToHit := ray.At(t).Subtract(d.Center)
	if centerToHit.LengthSquared() > d.Radius*d.Radius {
		return Intersection{}, false // Outside disk
	}

	// Planar projection of the disk onto the unit square
	u := 0.5 + centerToHit.Dot(d.Right)/(2*d.Radius)
	v := 0.5 + centerToHit.Dot(d.Up)/(2*d.Radius)

	return newIntersection(ray, t, d.Normal, u, v), true
}
