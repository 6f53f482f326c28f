package framebuffer

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*FrameBuffer)(nil)

// Size implements drivers.Displayer so tinyfont can draw into the buffer.
// Dimensions beyond the int16 range are clamped.
func (fb *FrameBuffer) Size() (x, y int16) {
	return int16(min(fb.width, math.MaxInt16)), int16(min(fb.height, math.MaxInt16))
}

// SetPixel implements drivers.Displayer. Pixels outside the buffer and fully
// transparent colors are ignored.
func (fb *FrameBuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if !fb.inBounds(ix, iy) || c.A == 0 {
		return
	}
	fb.pixels[iy*fb.width+ix] = FromRGBA(c)
}

// Display implements drivers.Displayer. Presentation belongs to the window driver.
func (fb *FrameBuffer) Display() error {
	return nil
}
