package geometry

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// The front face is the one seen with A, B, C in counter-clockwise order.
type Triangle struct {
	A, B, C core.Vec3 // The three vertices
	normal  core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c core.Vec3) (*Triangle, error) {
	n := b.Subtract(a).Cross(c.Subtract(a))
	if n.Length() < 1e-12 {
		return nil, fmt.Errorf("degenerate triangle %v %v %v: vertices are collinear", a, b, c)
	}
	return &Triangle{A: a, B: b, C: c, normal: n.Normalize()}, nil
}

// Normal returns the unit face normal
func (tr *Triangle) Normal() core.Vec3 {
	return tr.normal
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// The barycentric weights of B and C become the texture coordinates.
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	const epsilon = 1e-12

	edge1 := tr.B.Subtract(tr.A)
	edge2 := tr.C.Subtract(tr.A)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tr.A)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Intersection{}, false
	}

	t := f * edge2.Dot(q)
	if !inRange(t, tMin, tMax) {
		return Intersection{}, false
	}

	return newIntersection(ray, t, tr.normal, u, v), true
}
