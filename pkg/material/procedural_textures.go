package material

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	checkSize = max(1, checkSize)
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Determine which check we're in
			checkX := x / checkSize
			checkY := y / checkSize

			// Alternate colors based on check position
			var color core.Vec3
			if (checkX+checkY)%2 == 0 {
				color = color1
			} else {
				color = color2
			}

			pixels[y*width+x] = color
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// NewFlagTexture creates a striped flag with a blue canton in the upper-left corner.
// It stands in for an image texture when no file is supplied.
func NewFlagTexture(width, height int) *ImageTexture {
	const stripes = 13
	flagRed := core.NewVec3(0.698, 0.132, 0.203)
	flagBlue := core.NewVec3(0.234, 0.233, 0.430)

	pixels := make([]core.Vec3, width*height)
	cantonWidth := width * 2 / 5
	cantonHeight := height * 7 / stripes

	for y := 0; y < height; y++ {
		stripe := y * stripes / height
		for x := 0; x < width; x++ {
			var color core.Vec3
			switch {
			case x < cantonWidth && y < cantonHeight:
				color = flagBlue
				// Sparse white dots for the stars
				if (x/3+y/3)%2 == 0 && x%3 == 1 && y%3 == 1 {
					color = core.White
				}
			case stripe%2 == 0:
				color = flagRed
			default:
				color = core.White
			}
			pixels[y*width+x] = color
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}
