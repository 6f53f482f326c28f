package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/framebuffer"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// constantLight contributes a fixed color wherever it is asked
type constantLight struct {
	color core.Vec3
}

func (l *constantLight) Illuminate(point, normal core.Vec3, mat material.Material, eyeFrame core.Frame, inShadow bool) core.Vec3 {
	return l.color
}
func (l *constantLight) PointIsInAShadow(point, normal core.Vec3, objects []geometry.VisibleShape, eyeFrame core.Frame) bool {
	return false
}
func (l *constantLight) ActualPosition(eyeFrame core.Frame) core.Vec3 { return core.Vec3{} }
func (l *constantLight) IsOn() bool { return true }
func (l *constantLight) SetOn(on bool) {}
func (l *constantLight) Toggle() {}
func (l *constantLight) Translate(delta core.Vec3) {}

var _ lights.Light = (*constantLight)(nil)

// solidTexture returns one color everywhere
type solidTexture struct {
	color core.Vec3
}

func (t solidTexture) PixelUV(u, v float64) core.Vec3 {
	return t.color
}

// panicShape fails every intersection test
type panicShape struct{}

func (panicShape) Hit(ray core.Ray, tMin, tMax float64) (geometry.Intersection, bool) {
	panic("broken shape")
}

// leftHalfShape is hit by every ray heading towards -X and missed by the rest
type leftHalfShape struct{}

func (leftHalfShape) Hit(ray core.Ray, tMin, tMax float64) (geometry.Intersection, bool) {
	const t = 1.0
	if ray.Direction.X >= 0 || t <= tMin || t >= tMax {
		return geometry.Intersection{}, false
	}
	return geometry.Intersection{T: t, Point: ray.At(t), Normal: ray.Direction.Negate()}, true
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// newFacingScene builds a scene whose camera at (0,0,5) looks down -Z
func newFacingScene(t *testing.T, width, height int) *scene.Scene {
	t.Helper()
	camera, err := geometry.NewPerspectiveCamera(core.NewVec3(0, 0, 5), core.Vec3{}, core.AxisY, 60, width, height)
	if err != nil {
		t.Fatalf("Failed to create camera: %v", err)
	}
	s := scene.NewScene()
	s.SetCamera(camera)
	return s
}

func newFrameBuffer(t *testing.T, width, height int) *framebuffer.FrameBuffer {
	t.Helper()
	fb, err := framebuffer.New(width, height, core.PaleGreen)
	if err != nil {
		t.Fatalf("Failed to create frame buffer: %v", err)
	}
	return fb
}

func newTestRayTracer() *RayTracer {
	return NewRayTracer(RenderConfig{Workers: 2, BandHeight: 2}, core.NopLogger{})
}

func TestRaytraceScene_PlaneWithLightsOff(t *testing.T) {
	const width, height = 8, 6
	s, err := scene.NewPlaneScene(width, height)
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	fb := newFrameBuffer(t, width, height)

	if err := newTestRayTracer().RaytraceScene(fb, 0, s, 1); err != nil {
		t.Fatalf("RaytraceScene failed: %v", err)
	}

	// Top row looks above the horizon and misses the plane
	for x := 0; x < width; x++ {
		if c, _ := fb.GetColor(x, 0); c != core.PaleGreen {
			t.Errorf("Pixel (%d,0): expected background, got %v", x, c)
		}
	}

	// The bottom row looks down onto the plane. Every light is off, so
	// nothing illuminates it.
	if c, _ := fb.GetColor(width/2, height-1); c != core.Black {
		t.Errorf("Expected unlit plane to be black, got %v", c)
	}
}

func TestRaytraceScene_NoCamera(t *testing.T) {
	fb := newFrameBuffer(t, 2, 2)
	err := newTestRayTracer().RaytraceScene(fb, 0, scene.NewScene(), 1)
	if !errors.Is(err, ErrNoCamera) {
		t.Errorf("Expected ErrNoCamera, got %v", err)
	}
}

func TestRaytraceScene_NoFrameBuffer(t *testing.T) {
	s := newFacingScene(t, 2, 2)
	err := newTestRayTracer().RaytraceScene(nil, 0, s, 1)
	if !errors.Is(err, ErrNoFrameBuffer) {
		t.Errorf("Expected ErrNoFrameBuffer, got %v", err)
	}
}

func TestRaytraceScene_SizeMismatch(t *testing.T) {
	s := newFacingScene(t, 4, 4)
	fb := newFrameBuffer(t, 5, 4)
	if err := newTestRayTracer().RaytraceScene(fb, 0, s, 1); err == nil {
		t.Error("Expected error when camera and frame buffer sizes differ")
	}
}

func TestRaytraceScene_PropagatesBandFailure(t *testing.T) {
	s := newFacingScene(t, 4, 6)
	s.AddOpaqueObject(panicShape{}, material.Gold, nil)
	fb := newFrameBuffer(t, 4, 6)

	err := newTestRayTracer().RaytraceScene(fb, 0, s, 1)
	if err == nil {
		t.Fatal("Expected an error from the failing band")
	}
	if !strings.Contains(err.Error(), "broken shape") {
		t.Errorf("Expected panic message in error, got %v", err)
	}
}

func TestRaytraceScene_LightSumIsNotClamped(t *testing.T) {
	s := newFacingScene(t, 3, 3)
	s.AddOpaqueObject(must(geometry.NewSphere(core.Vec3{}, 1)), material.Brass, nil)
	s.AddLight(&constantLight{color: core.NewVec3(0.8, 0.8, 0.8)})
	s.AddLight(&constantLight{color: core.NewVec3(0.8, 0.8, 0.8)})
	fb := newFrameBuffer(t, 3, 3)

	if err := newTestRayTracer().RaytraceScene(fb, 0, s, 1); err != nil {
		t.Fatalf("RaytraceScene failed: %v", err)
	}
	c, _ := fb.GetColor(1, 1)
	if !c.Equals(core.NewVec3(1.6, 1.6, 1.6)) {
		t.Errorf("Expected unclamped sum 1.6, got %v", c)
	}
}

func TestRaytraceScene_TextureBlend(t *testing.T) {
	s := newFacingScene(t, 3, 3)
	disk := must(geometry.NewDisk(core.Vec3{}, core.AxisZ, 1))
	s.AddOpaqueObject(disk, material.Chrome, solidTexture{color: core.Red})
	s.AddLight(&constantLight{color: core.NewVec3(0.2, 0.4, 0.6)})
	fb := newFrameBuffer(t, 3, 3)

	if err := newTestRayTracer().RaytraceScene(fb, 0, s, 1); err != nil {
		t.Fatalf("RaytraceScene failed: %v", err)
	}
	c, _ := fb.GetColor(1, 1)
	expected := core.NewVec3(0.6, 0.2, 0.3)
	if !c.Equals(expected) {
		t.Errorf("Expected 50/50 blend %v, got %v", expected, c)
	}
}

func TestShade_TransparencyCompositing(t *testing.T) {
	tests := []struct {
		name      string
		alpha     float64
		withBlock bool
		expected  core.Vec3
	}{
		{"alpha 0 over background", 0, false, core.PaleGreen},
		{"alpha 1 over background", 1, false, core.Blue},
		{"alpha 1 over opaque", 1, true, core.Blue},
		{"half over background", 0.5, false, core.PaleGreen.Multiply(0.5).Add(core.Blue.Multiply(0.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFacingScene(t, 3, 3)
			glass := must(geometry.NewPlane(core.Vec3{}, core.AxisZ))
			if err := s.AddTransparentObject(glass, core.Blue, tt.alpha); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.withBlock {
				s.AddOpaqueObject(must(geometry.NewSphere(core.NewVec3(0, 0, -5), 1)), material.Gold, nil)
				s.AddLight(&constantLight{color: core.NewVec3(0.3, 0.7, 0.1)})
			}

			got := newTestRayTracer().TracePixel(s, 1, 1, 0, 1, core.PaleGreen)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestShade_TransparentBehindOpaqueIsIgnored(t *testing.T) {
	s := newFacingScene(t, 3, 3)
	glass := must(geometry.NewPlane(core.NewVec3(0, 0, -10), core.AxisZ))
	if err := s.AddTransparentObject(glass, core.Blue, 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.AddOpaqueObject(must(geometry.NewSphere(core.Vec3{}, 1)), material.Gold, nil)
	light := core.NewVec3(0.3, 0.7, 0.1)
	s.AddLight(&constantLight{color: light})

	got := newTestRayTracer().TracePixel(s, 1, 1, 0, 1, core.PaleGreen)
	if got != light {
		t.Errorf("Expected opaque color %v, got %v", light, got)
	}
}

func TestTracePixel_SingleSampleMatchesCenterRay(t *testing.T) {
	demo, err := scene.NewDefaultScene(40, 30, nil)
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	rt := newTestRayTracer()

	for _, p := range [][2]int{{0, 0}, {20, 15}, {39, 29}, {7, 22}} {
		ray := demo.Camera.GetRay(p[0], p[1])
		expected := rt.TraceIndividualRay(ray, demo.Scene, core.PaleGreen, 1)
		if got := rt.TracePixel(demo.Scene, p[0], p[1], 1, 1, core.PaleGreen); got != expected {
			t.Errorf("Pixel %v: expected %v, got %v", p, expected, got)
		}
	}
}

func TestTracePixel_AveragesSubSamples(t *testing.T) {
	light := core.NewVec3(0.9, 0.3, 0.6)
	tests := []struct {
		name string
		aa   int
		hits int // sub-samples heading towards -X
	}{
		// 2x2 grid: one column hits, exactly half
		{"aa 2", 2, 2},
		// 3x3 grid: the middle column looks straight down -Z and misses
		{"aa 3", 3, 3},
		{"aa 4", 4, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A single pixel image so the sub-pixel grid straddles the optical axis
			s := newFacingScene(t, 1, 1)
			s.AddOpaqueObject(leftHalfShape{}, material.Gold, nil)
			s.AddLight(&constantLight{color: light})

			samples := float64(tt.aa * tt.aa)
			hit := float64(tt.hits) / samples
			expected := light.Multiply(hit).Add(core.PaleGreen.Multiply(1 - hit))

			got := newTestRayTracer().TracePixel(s, 0, 0, 0, tt.aa, core.PaleGreen)
			if !got.Equals(expected) {
				t.Errorf("Expected mean %v over %d samples, got %v", expected, tt.aa*tt.aa, got)
			}
		})
	}
}

func TestTraceIndividualRay_NegativeBudget(t *testing.T) {
	s := newFacingScene(t, 3, 3)
	ray := s.Camera.GetRay(1, 1)
	if got := newTestRayTracer().TraceIndividualRay(ray, s, core.PaleGreen, -1); got != core.Black {
		t.Errorf("Expected black for an exhausted budget, got %v", got)
	}
}

func TestInspectPixel_BackFaceNormalFacesViewer(t *testing.T) {
	s := newFacingScene(t, 3, 3)
	// Wound clockwise as seen from the camera, so the geometric normal points away
	tri := must(geometry.NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0)))
	s.AddOpaqueObject(tri, material.Pearl, nil)
	s.AddLight(lights.NewPositionalLight(core.NewVec3(0, 0, 10), core.White))

	inspection, err := newTestRayTracer().InspectPixel(s, 1, 1, core.PaleGreen)
	if err != nil {
		t.Fatalf("InspectPixel failed: %v", err)
	}
	if !inspection.Opaque.Found() {
		t.Fatal("Expected the center ray to hit the triangle")
	}
	if inspection.Opaque.Normal.Z >= 0 {
		t.Fatalf("Expected geometric normal facing away, got %v", inspection.Opaque.Normal)
	}
	if inspection.Normal.Dot(inspection.Ray.Direction) >= 0 {
		t.Errorf("Expected shading normal to face the viewer, got %v", inspection.Normal)
	}
	if len(inspection.Lights) != 1 || inspection.Lights[0].InShadow {
		t.Fatalf("Expected one unshadowed light, got %+v", inspection.Lights)
	}
	// Lit from the front, the diffuse term exceeds the ambient-only color
	ambient := lights.AmbientColor(material.Pearl.Ambient, core.White)
	if inspection.Color.X <= ambient.X {
		t.Errorf("Expected diffuse lighting on the back face, got %v", inspection.Color)
	}
}

func TestInspectPixel_Invalid(t *testing.T) {
	rt := newTestRayTracer()
	if _, err := rt.InspectPixel(scene.NewScene(), 0, 0, core.Black); !errors.Is(err, ErrNoCamera) {
		t.Errorf("Expected ErrNoCamera, got %v", err)
	}
	s := newFacingScene(t, 3, 3)
	if _, err := rt.InspectPixel(s, 3, 0, core.Black); err == nil {
		t.Error("Expected error for pixel outside the image")
	}
}

func TestRaytraceScene_WorkerPoolMatchesErrgroup(t *testing.T) {
	const width, height = 24, 18
	demo, err := scene.NewDefaultScene(width, height, nil)
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}

	groupFB := newFrameBuffer(t, width, height)
	if err := newTestRayTracer().RaytraceScene(groupFB, 1, demo.Scene, 2); err != nil {
		t.Fatalf("errgroup render failed: %v", err)
	}

	pooled := newTestRayTracer()
	pool := NewWorkerPool(3)
	defer pool.Close()
	pooled.SetExecutor(pool)
	poolFB := newFrameBuffer(t, width, height)
	// Two frames on the same pool
	for i := 0; i < 2; i++ {
		if err := pooled.RaytraceScene(poolFB, 1, demo.Scene, 2); err != nil {
			t.Fatalf("pool render %d failed: %v", i, err)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a, _ := groupFB.GetColor(x, y)
			b, _ := poolFB.GetColor(x, y)
			if a != b {
				t.Fatalf("Pixel (%d,%d) differs: %v vs %v", x, y, a, b)
			}
		}
	}

	stats := pooled.LastStats()
	if stats.TotalSamples != width*height*4 || stats.Bands != height/2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}
