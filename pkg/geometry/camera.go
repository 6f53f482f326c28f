package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// PerspectiveCamera generates rays for rendering from a pinhole at the frame origin
type PerspectiveCamera struct {
	Frame  core.Frame
	FovY   float64 // Vertical field of view in radians
	Width  int
	Height int

	halfHeight float64 // tan(FovY/2)
	aspect     float64
}

// NewPerspectiveCamera creates a camera at eye looking at focus.
// fovDegrees is the vertical field of view.
func NewPerspectiveCamera(eye, focus, up core.Vec3, fovDegrees float64, width, height int) (*PerspectiveCamera, error) {
	if fovDegrees <= 0 || fovDegrees >= 180 {
		return nil, fmt.Errorf("field of view must be in (0, 180) degrees, got %f", fovDegrees)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}
	frame, err := core.NewFrame(eye, focus, up)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera frame: %w", err)
	}

	fov := fovDegrees * math.Pi / 180
	return &PerspectiveCamera{
		Frame:      frame,
		FovY:       fov,
		Width:      width,
		Height:     height,
		halfHeight: math.Tan(fov / 2),
		aspect:     float64(width) / float64(height),
	}, nil
}

// Eye returns the camera position
func (c *PerspectiveCamera) Eye() core.Vec3 {
	return c.Frame.Origin
}

// GetRay returns the ray through the center of pixel (x, y). Row 0 is the top of the image.
func (c *PerspectiveCamera) GetRay(x, y int) core.Ray {
	return c.rayThrough(float64(x)+0.5, float64(y)+0.5)
}

// GetMultiRays returns n×n rays through the centers of a regular sub-pixel grid.
// n=1 yields exactly the GetRay result.
func (c *PerspectiveCamera) GetMultiRays(x, y, n int) []core.Ray {
	n = max(1, n)
	rays := make([]core.Ray, 0, n*n)
	step := 1.0 / float64(n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			rays = append(rays, c.rayThrough(
				float64(x)+(float64(i)+0.5)*step,
				float64(y)+(float64(j)+0.5)*step,
			))
		}
	}
	return rays
}

// rayThrough maps continuous image coordinates to a world-space ray
func (c *PerspectiveCamera) rayThrough(px, py float64) core.Ray {
	u := (2*px/float64(c.Width) - 1) * c.halfHeight * c.aspect
	v := (1 - 2*py/float64(c.Height)) * c.halfHeight

	direction := c.Frame.U.Multiply(u).
		Add(c.Frame.V.Multiply(v)).
		Subtract(c.Frame.W)

	return core.NewRay(c.Frame.Origin, direction)
}
