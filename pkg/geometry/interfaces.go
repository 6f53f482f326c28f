package geometry

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Intersection is what a shape reports about a single ray hit
type Intersection struct {
	T      float64   // Parametric distance along the ray
	Point  core.Vec3 // World-space hit point, ray.At(T)
	Normal core.Vec3 // Outward unit normal
	UV     core.Vec2 // Texture coordinates in [0,1]x[0,1]
}

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection with tMin < t < tMax.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool)
}

// newIntersection fills the point for a hit at distance t
func newIntersection(ray core.Ray, t float64, normal core.Vec3, u, v float64) Intersection {
	return Intersection{
		T:      t,
		Point:  ray.At(t),
		Normal: normal,
		UV:     core.NewVec2(clampUnit(u), clampUnit(v)),
	}
}

// inRange reports whether t lies strictly inside (tMin, tMax)
func inRange(t, tMin, tMax float64) bool {
	return t > tMin && t < tMax
}

func clampUnit(x float64) float64 {
	return max(0, min(1, x))
}
