package core

import (
	"math"
	"testing"
)

func TestVec3_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"inside range", NewVec3(0.2, 0.5, 0.9), NewVec3(0.2, 0.5, 0.9)},
		{"above range", NewVec3(1.5, 2, 1), NewVec3(1, 1, 1)},
		{"below range", NewVec3(-0.5, 0, -3), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Clamp(0, 1)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if result := (Vec3{}).Normalize(); !result.IsZero() {
		t.Errorf("Expected zero vector, got %v", result)
	}
}

func TestVec3_CrossIsOrthogonal(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 0.5, 4)
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > 1e-9 || math.Abs(c.Dot(b)) > 1e-9 {
		t.Errorf("Cross product %v is not orthogonal to inputs", c)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	if !a.Lerp(b, 0).Equals(a) {
		t.Errorf("Lerp at 0 should return start")
	}
	if !a.Lerp(b, 1).Equals(b) {
		t.Errorf("Lerp at 1 should return end")
	}
	if !a.Lerp(b, 0.5).Equals(NewVec3(1, 2, 3)) {
		t.Errorf("Lerp at 0.5 should return midpoint, got %v", a.Lerp(b, 0.5))
	}
}

func TestRay_DirectionIsNormalized(t *testing.T) {
	ray := NewRay(NewVec3(6, 6, 6), NewVec3(-6, -6, -6))

	if math.Abs(ray.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}

	point := ray.At(math.Sqrt(3 * 36))
	if !point.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected ray to reach origin, got %v", point)
	}
}
