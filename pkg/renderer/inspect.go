package renderer

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// LightInspection is one light's part in a inspected pixel
type LightInspection struct {
	Index        int
	On           bool
	Position     core.Vec3
	InShadow     bool
	Contribution core.Vec3
}

// PixelInspection holds everything the pixel-center ray saw
type PixelInspection struct {
	X, Y        int
	Ray         core.Ray
	Opaque      geometry.OpaqueHitRecord
	Transparent geometry.TransparentHitRecord
	Normal      core.Vec3 // Viewer-facing normal used for shading
	Lights      []LightInspection
	Color       core.Vec3
}

// InspectPixel traces the center ray of pixel (x, y) and reports the hit
// records and per-light shading that produced its color
func (rt *RayTracer) InspectPixel(s *scene.Scene, x, y int, background core.Vec3) (PixelInspection, error) {
	if s == nil || s.Camera == nil {
		return PixelInspection{}, ErrNoCamera
	}
	if x < 0 || x >= s.Camera.Width || y < 0 || y >= s.Camera.Height {
		return PixelInspection{}, fmt.Errorf("pixel (%d, %d) outside %dx%d image", x, y, s.Camera.Width, s.Camera.Height)
	}

	inspection := PixelInspection{X: x, Y: y, Ray: s.Camera.GetRay(x, y)}
	inspection.Color = shade(inspection.Ray, s, background, &inspection)
	rt.logger.Printf("Inspect (%d, %d): hit=%v t=%g color=%v\n", x, y, inspection.Opaque.Found(), inspection.Opaque.T, inspection.Color)
	return inspection, nil
}
