package geometry

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// VisibleShape is an opaque scene object: a shape with its material and optional texture
type VisibleShape struct {
	Shape    Shape
	Material material.Material
	Texture  material.Texture // nil when the surface is untextured
}

// TransparentShape is a see-through scene object composited over the opaque result
type TransparentShape struct {
	Shape Shape
	Color core.Vec3
	Alpha float64 // Opacity in [0,1]
}

// OpaqueHitRecord is the nearest opaque intersection along a ray.
// T is core.Infinity when nothing was hit.
type OpaqueHitRecord struct {
	T        float64
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Material
	Texture  material.Texture
	UV       core.Vec2
	Shape    Shape // The object that was hit
}

// Found reports whether the record holds a hit
func (h OpaqueHitRecord) Found() bool {
	return h.T < core.Infinity
}

// TransparentHitRecord is the nearest transparent intersection along a ray.
// T is core.Infinity when nothing was hit.
type TransparentHitRecord struct {
	T     float64
	Color core.Vec3
	Alpha float64
}

// Found reports whether the record holds a hit
func (h TransparentHitRecord) Found() bool {
	return h.T < core.Infinity
}

// FindIntersection returns the nearest opaque hit with t in (0, Infinity)
func FindIntersection(objects []VisibleShape, ray core.Ray) OpaqueHitRecord {
	hit := OpaqueHitRecord{T: core.Infinity}
	for _, obj := range objects {
		if isect, ok := obj.Shape.Hit(ray, 0, hit.T); ok {
			hit = OpaqueHitRecord{
				T:        isect.T,
				Point:    isect.Point,
				Normal:   isect.Normal,
				Material: obj.Material,
				Texture:  obj.Texture,
				UV:       isect.UV,
				Shape:    obj.Shape,
			}
		}
	}
	return hit
}

// FindTransparentIntersection returns the nearest transparent hit with t in (0, Infinity)
func FindTransparentIntersection(objects []TransparentShape, ray core.Ray) TransparentHitRecord {
	hit := TransparentHitRecord{T: core.Infinity}
	for _, obj := range objects {
		if isect, ok := obj.Shape.Hit(ray, 0, hit.T); ok {
			hit = TransparentHitRecord{
				T:     isect.T,
				Color: obj.Color,
				Alpha: obj.Alpha,
			}
		}
	}
	return hit
}

// AnyHit reports whether any opaque object is hit with t in (0, Infinity)
func AnyHit(objects []VisibleShape, ray core.Ray) bool {
	for _, obj := range objects {
		if _, ok := obj.Shape.Hit(ray, 0, core.Infinity); ok {
			return true
		}
	}
	return false
}
