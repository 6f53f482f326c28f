package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	hudMarginLeft int16 = 4
	hudMarginTop  int16 = 10
	hudLineStep   int16 = 10
)

var (
	hudFont   tinyfont.Fonter = &proggy.TinySZ8pt7b
	hudColor                  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudShadow                 = color.RGBA{A: 0xff}
)

// DrawHUD writes status lines in the top-left corner of the display
func DrawHUD(d drivers.Displayer, lines []string) {
	y := hudMarginTop
	for _, line := range lines {
		// Drop shadow first so the text stays readable on light surfaces
		tinyfont.WriteLine(d, hudFont, hudMarginLeft+1, y+1, line, hudShadow)
		tinyfont.WriteLine(d, hudFont, hudMarginLeft, y, line, hudColor)
		y += hudLineStep
	}
}
