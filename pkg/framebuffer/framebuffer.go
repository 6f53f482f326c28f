package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/fogleman/gg"
)

// ErrOutOfBounds is returned when a pixel coordinate lies outside the buffer
var ErrOutOfBounds = errors.New("pixel out of bounds")

// FrameBuffer stores one color per pixel. Row 0 is the top of the image.
// Distinct rows may be written concurrently.
type FrameBuffer struct {
	width      int
	height     int
	pixels     []core.Vec3
	clearColor core.Vec3
}

// New creates a frame buffer filled with the clear color
func New(width, height int, clearColor core.Vec3) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame buffer size must be positive, got %dx%d", width, height)
	}
	fb := &FrameBuffer{
		width:      width,
		height:     height,
		pixels:     make([]core.Vec3, width*height),
		clearColor: clearColor,
	}
	fb.Clear()
	return fb, nil
}

// Width returns the width in pixels
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the height in pixels
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// ClearColor is the background for rays that hit nothing
func (fb *FrameBuffer) ClearColor() core.Vec3 {
	return fb.clearColor
}

// SetClearColor changes the background used by the next Clear
func (fb *FrameBuffer) SetClearColor(c core.Vec3) {
	fb.clearColor = c
}

// Clear fills every pixel with the clear color
func (fb *FrameBuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = fb.clearColor
	}
}

// SetColor stores the color of pixel (x, y)
func (fb *FrameBuffer) SetColor(x, y int, c core.Vec3) error {
	if !fb.inBounds(x, y) {
		return fmt.Errorf("set (%d, %d) in %dx%d: %w", x, y, fb.width, fb.height, ErrOutOfBounds)
	}
	fb.pixels[y*fb.width+x] = c
	return nil
}

// GetColor returns the color of pixel (x, y)
func (fb *FrameBuffer) GetColor(x, y int) (core.Vec3, error) {
	if !fb.inBounds(x, y) {
		return core.Vec3{}, fmt.Errorf("get (%d, %d) in %dx%d: %w", x, y, fb.width, fb.height, ErrOutOfBounds)
	}
	return fb.pixels[y*fb.width+x], nil
}

func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// Image converts the buffer to 8-bit RGBA, clamping every channel to [0,1]
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, ToRGBA(fb.pixels[y*fb.width+x]))
		}
	}
	return img
}

// SavePNG writes the buffer to a PNG file
func (fb *FrameBuffer) SavePNG(path string) error {
	if err := gg.SavePNG(path, fb.Image()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// ToRGBA converts a color with channels in [0,1] to 8-bit RGBA
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(c.X*255 + 0.5),
		G: uint8(c.Y*255 + 0.5),
		B: uint8(c.Z*255 + 0.5),
		A: 255,
	}
}

// FromRGBA converts an 8-bit color to channels in [0,1]
func FromRGBA(c color.RGBA) core.Vec3 {
	return core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}
