package geometry

import "math"

// solveQuadratic returns the real roots of a*t^2 + b*t + c = 0 in ascending order.
// n is the number of distinct roots (0, 1 or 2). A zero leading coefficient has no roots.
func solveQuadratic(a, b, c float64) (t0, t1 float64, n int) {
	if a == 0 {
		return 0, 0, 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, 0
	}
	if discriminant == 0 {
		t := -b / (2 * a)
		return t, t, 1
	}

	// Numerically stable form avoids cancellation when b is close to sqrt(discriminant)
	sqrtD := math.Sqrt(discriminant)
	var q float64
	if b < 0 {
		q = -0.5 * (b - sqrtD)
	} else {
		q = -0.5 * (b + sqrtD)
	}
	t0 = q / a
	t1 = c / q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, 2
}

// nearestRoot picks the smaller root inside (tMin, tMax), falling back to the larger one
func nearestRoot(t0, t1 float64, n int, tMin, tMax float64) (float64, bool) {
	if n == 0 {
		return 0, false
	}
	if inRange(t0, tMin, tMax) {
		return t0, true
	}
	if n == 2 && inRange(t1, tMin, tMax) {
		return t1, true
	}
	return 0, false
}

// angleUV maps an angle around an axis to u in [0,1]
func angleUV(x, z float64) float64 {
	return 0.5 + math.Atan2(z, x)/(2*math.Pi)
}
