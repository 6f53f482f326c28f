package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// ConeY is an open cone aligned with the Y axis.
// The apex sits at Apex and the cone opens downwards to a base of the given
// radius at Apex.Y - Height.
type ConeY struct {
	Apex   core.Vec3
	Radius float64
	Height float64

	// Cached derived value
	k2 float64 // (Radius/Height)²
}

// NewConeY creates a new cone
func NewConeY(apex core.Vec3, radius, height float64) (*ConeY, error) {
	// Validate parameters
	if radius <= 0 {
		return nil, fmt.Errorf("cone radius must be positive, got %f", radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("cone height must be positive, got %f", height)
	}

	k := radius / height
	return &ConeY{
		Apex:   apex,
		Radius: radius,
		Height: height,
		k2:     k * k,
	}, nil
}

// Hit tests if a ray intersects with the curved surface of the cone
func (c *ConeY) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	// Ray origin relative to the apex
	o := ray.Origin.Subtract(c.Apex)
	d := ray.Direction

	// Infinite double cone: x² + z² = k²y²
	a := d.X*d.X + d.Z*d.Z - c.k2*d.Y*d.Y
	b := 2 * (o.X*d.X + o.Z*d.Z - c.k2*o.Y*d.Y)
	cc := o.X*o.X + o.Z*o.Z - c.k2*o.Y*o.Y

	var t0, t1 float64
	var n int
	if math.Abs(a) < 1e-12 {
		// Ray parallel to the slant: a single crossing
		if b == 0 {
			return Intersection{}, false
		}
		t0, n = -cc/b, 1
	} else {
		t0, t1, n = solveQuadratic(a, b, cc)
	}

	for i, t := range [2]float64{t0, t1} {
		if i >= n || !inRange(t, tMin, tMax) {
			continue
		}
		// Keep only the lower nappe between apex and base
		y := o.Y + t*d.Y
		if y > 0 || y < -c.Height {
			continue
		}

		local := o.Add(d.Multiply(t))
		// Gradient of x² + z² - k²y² points outward and up for the lower nappe
		normal := core.NewVec3(local.X, -c.k2*local.Y, local.Z).Normalize()
		if normal.IsZero() {
			normal = core.AxisY
		}
		u := angleUV(local.X, local.Z)
		v := (y + c.Height) / c.Height
		return newIntersection(ray, t, normal, u, v), true
	}
	return Intersection{}, false
}
