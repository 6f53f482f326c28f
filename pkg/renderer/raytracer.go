package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/framebuffer"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// ErrNoCamera is returned when a scene is rendered without an active camera
var ErrNoCamera = errors.New("scene has no camera")

// ErrNoFrameBuffer is returned when a frame is rendered without a target
var ErrNoFrameBuffer = errors.New("no frame buffer to render into")

// textureWeight is the share of the texel in a textured surface color
const textureWeight = 0.5

// RayTracer renders scenes into frame buffers, one row band per task
type RayTracer struct {
	config   RenderConfig
	executor Executor
	logger   core.Logger

	lastStats RenderStats
}

// NewRayTracer creates a ray tracer that renders bands on an errgroup
func NewRayTracer(config RenderConfig, logger core.Logger) *RayTracer {
	config = config.normalized()
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &RayTracer{
		config:   config,
		executor: NewGroupExecutor(config.Workers),
		logger:   logger,
	}
}

// SetExecutor replaces the band executor, e.g. with a persistent WorkerPool
func (rt *RayTracer) SetExecutor(executor Executor) {
	rt.executor = executor
}

// LastStats returns the statistics of the most recent successful frame
func (rt *RayTracer) LastStats() RenderStats {
	return rt.lastStats
}

// RaytraceScene renders the scene into fb with aa×aa rays per pixel.
// depth is the recursion budget handed to TraceIndividualRay. The frame is
// either fully rendered or the first band error is returned.
func (rt *RayTracer) RaytraceScene(fb *framebuffer.FrameBuffer, depth int, s *scene.Scene, aa int) error {
	if s == nil || s.Camera == nil {
		return ErrNoCamera
	}
	if fb == nil {
		return ErrNoFrameBuffer
	}
	if fb.Width() != s.Camera.Width || fb.Height() != s.Camera.Height {
		return fmt.Errorf("camera is %dx%d but frame buffer is %dx%d",
			s.Camera.Width, s.Camera.Height, fb.Width(), fb.Height())
	}
	aa = max(1, aa)

	start := time.Now()
	batch := rt.executor.NewBatch()
	bands := 0
	for y0 := 0; y0 < fb.Height(); y0 += rt.config.BandHeight {
		y1 := min(y0+rt.config.BandHeight, fb.Height())
		name := fmt.Sprintf("band %d-%d", y0, y1)
		batch.Go(safeTask(name, func() error {
			return rt.renderBand(fb, s, depth, aa, y0, y1)
		}))
		bands++
	}
	if err := batch.Wait(); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	rt.lastStats = newRenderStats(fb.Width(), fb.Height(), bands, aa, time.Since(start))
	rt.logger.Printf("Render time: %.3f sec.\n", rt.lastStats.Elapsed.Seconds())
	return nil
}

// renderBand renders rows [y0, y1). Bands never overlap, so no locking is needed.
func (rt *RayTracer) renderBand(fb *framebuffer.FrameBuffer, s *scene.Scene, depth, aa, y0, y1 int) error {
	background := fb.ClearColor()
	for y := y0; y < y1; y++ {
		for x := 0; x < fb.Width(); x++ {
			if err := fb.SetColor(x, y, rt.TracePixel(s, x, y, depth, aa, background)); err != nil {
				return err
			}
		}
	}
	return nil
}

// TracePixel averages the aa×aa sub-pixel samples of pixel (x, y)
func (rt *RayTracer) TracePixel(s *scene.Scene, x, y, depth, aa int, background core.Vec3) core.Vec3 {
	rays := s.Camera.GetMultiRays(x, y, aa)
	sum := core.Vec3{}
	for _, ray := range rays {
		sum = sum.Add(rt.TraceIndividualRay(ray, s, background, depth))
	}
	return sum.Multiply(1.0 / float64(len(rays)))
}

// TraceIndividualRay returns the color seen along ray with the given recursion
// budget. A negative budget yields black. Materials carry no reflectivity, so
// the result is the direct illumination at the nearest hit.
func (rt *RayTracer) TraceIndividualRay(ray core.Ray, s *scene.Scene, background core.Vec3, level int) core.Vec3 {
	if level < 0 {
		return core.Black
	}
	return shade(ray, s, background, nil)
}

// shade computes the composited color of a single ray. When inspection is not nil
// the intermediate results are recorded into it.
func shade(ray core.Ray, s *scene.Scene, background core.Vec3, inspection *PixelInspection) core.Vec3 {
	eyeFrame := s.EyeFrame()
	hit := geometry.FindIntersection(s.OpaqueObjects, ray)
	trans := geometry.FindTransparentIntersection(s.TransparentObjects, ray)

	color := background
	if hit.Found() {
		// Shade with the side of the surface that faces the viewer
		normal := hit.Normal
		if ray.Direction.Dot(normal) > 0 {
			normal = normal.Negate()
		}

		// Per-light results are clamped by the light; their sum is not
		color = core.Black
		for i, light := range s.Lights {
			inShadow := light.PointIsInAShadow(hit.Point, normal, s.OpaqueObjects, eyeFrame)
			contribution := light.Illuminate(hit.Point, normal, hit.Material, eyeFrame, inShadow)
			color = color.Add(contribution)
			if inspection != nil {
				inspection.Lights = append(inspection.Lights, LightInspection{
					Index:        i,
					On:           light.IsOn(),
					Position:     light.ActualPosition(eyeFrame),
					InShadow:     inShadow,
					Contribution: contribution,
				})
			}
		}

		if hit.Texture != nil {
			texel := hit.Texture.PixelUV(hit.UV.X, hit.UV.Y)
			color = color.Lerp(texel, textureWeight)
		}
		if inspection != nil {
			inspection.Normal = normal
		}
	}

	// The no-hit sentinel compares as the farthest distance
	if trans.T < hit.T {
		color = color.Lerp(trans.Color, trans.Alpha)
	}

	if inspection != nil {
		inspection.Opaque = hit
		inspection.Transparent = trans
	}
	return color
}
