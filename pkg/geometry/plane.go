package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// DefaultPlaneTextureScale is the world size of one texture tile on a plane
const DefaultPlaneTextureScale = 10.0

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point        core.Vec3 // A point on the plane
	Normal       core.Vec3 // Unit normal
	TextureScale float64   // World units covered by one texture repeat

	right, up core.Vec3 // In-plane basis for texture coordinates
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) (*Plane, error) {
	if normal.IsZero() {
		return nil, fmt.Errorf("plane normal must be non-zero")
	}
	n := normal.Normalize()
	right, up := tangentBasis(n)
	return &Plane{
		Point:        point,
		Normal:       n,
		TextureScale: DefaultPlaneTextureScale,
		right:        right,
		up:           up,
	}, nil
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	// Calculate denominator: dot product of ray direction and plane normal
	denominator := ray.Direction.Dot(p.Normal)

	// If denominator is close to zero, ray is parallel to plane (no intersection)
	if math.Abs(denominator) < 1e-8 {
		return Intersection{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !inRange(t, tMin, tMax) {
		return Intersection{}, false
	}

	local := ray.At(t).Subtract(p.Point)
	scale := p.TextureScale
	if scale <= 0 {
		scale = DefaultPlaneTextureScale
	}
	u := fract(local.Dot(p.right) / scale)
	v := fract(local.Dot(p.up) / scale)

	return newIntersection(ray, t, p.Normal, u, v), true
}

// SetPoint moves the plane so that it passes through point
func (p *Plane) SetPoint(point core.Vec3) {
	p.Point = point
}

// tangentBasis builds two unit vectors perpendicular to n and to each other
func tangentBasis(n core.Vec3) (right, up core.Vec3) {
	if math.Abs(n.X) > 0.1 {
		right = core.AxisY
	} else {
		right = core.AxisX
	}
	right = right.Cross(n).Normalize()
	up = n.Cross(right).Normalize()
	return right, up
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}
