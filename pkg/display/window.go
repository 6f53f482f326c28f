// Package display shows the interactive ray tracer in a desktop window.
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-interactive-raytracer/pkg/app"
)

// TicksPerSecond is the rate of the animation timer
const TicksPerSecond = 30

// RunWindow opens a window of the state's size, forwards typed characters
// to the state and re-renders whenever something changed. It blocks until
// the window closes or escape is pressed.
func RunWindow(state *app.State, title string) error {
	g := &game{state: state, dirty: true}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(state.FrameBuffer.Width(), state.FrameBuffer.Height())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TicksPerSecond)
	return ebiten.RunGame(g)
}

type game struct {
	state *app.State
	img   *ebiten.Image
	dirty bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.state.HandleKey(app.KeyEscape)
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.state.HandleKey(r)
		g.dirty = true
	}
	if g.state.Quit {
		return ebiten.Termination
	}

	if g.state.Animated {
		g.state.Tick()
		g.dirty = true
	}
	if !g.dirty {
		return nil
	}
	g.dirty = false
	return g.state.Render()
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.state.FrameBuffer
	if g.img == nil || g.img.Bounds().Dx() != fb.Width() || g.img.Bounds().Dy() != fb.Height() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(fb.Width(), fb.Height())
	}
	g.img.WritePixels(fb.Image().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.state.FrameBuffer
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != fb.Width() || outsideHeight != fb.Height()) {
		if err := g.state.Resize(outsideWidth, outsideHeight); err == nil {
			g.dirty = true
		}
	}
	return g.state.FrameBuffer.Width(), g.state.FrameBuffer.Height()
}
