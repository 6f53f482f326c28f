package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %f", radius)
	}
	return &Sphere{
		Center: center,
		Radius: radius,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	t0, t1, n := solveQuadratic(a, b, c)
	t, ok := nearestRoot(t0, t1, n, tMin, tMax)
	if !ok {
		return Intersection{}, false
	}

	point := ray.At(t)
	// Outward normal (from center to hit point)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	// Spherical UV: longitude around Y, latitude from the south pole
	u := angleUV(normal.X, normal.Z)
	v := 0.5 + math.Asin(max(-1, min(1, normal.Y)))/math.Pi

	return newIntersection(ray, t, normal, u, v), true
}
