package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/app"
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/display"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
)

type options struct {
	width       int
	height      int
	aa          int
	reflections int
	workers     int
	texture     string
	out         string
	interactive bool
	hud         bool
	spot        bool
}

func parseOptions(args []string, output io.Writer) (options, error) {
	defaults := app.DefaultConfig()
	var opts options

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&opts.aa, "aa", 1, "Anti-aliasing grid size (N gives NxN samples per pixel)")
	fs.IntVar(&opts.reflections, "reflections", 0, "Reflection recursion budget")
	fs.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = number of CPUs)")
	fs.StringVar(&opts.texture, "texture", "", "Image to map onto the textured cylinder (PNG, JPEG or PPM)")
	fs.StringVar(&opts.out, "out", "", "Output PNG path (default output/render_<timestamp>.png)")
	fs.BoolVar(&opts.interactive, "interactive", false, "Open an interactive window instead of rendering to a file")
	fs.BoolVar(&opts.hud, "hud", false, "Draw the status overlay")
	fs.BoolVar(&opts.spot, "spot", false, "Start with the spot light switched on")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.width <= 0 || opts.height <= 0 {
		return options{}, fmt.Errorf("image size must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.aa < 1 {
		return options{}, fmt.Errorf("anti-aliasing must be at least 1, got %d", opts.aa)
	}
	if opts.reflections < 0 {
		return options{}, fmt.Errorf("reflections must not be negative, got %d", opts.reflections)
	}
	return opts, nil
}

func (o options) config() app.Config {
	render := renderer.DefaultRenderConfig()
	if o.workers > 0 {
		render.Workers = o.workers
	}
	return app.Config{
		Width:        o.width,
		Height:       o.height,
		TexturePath:  o.texture,
		HUD:          o.hud,
		AntiAliasing: o.aa,
		Reflections:  o.reflections,
		Render:       render,
		Persistent:   o.interactive,
	}
}

func newState(opts options, logger core.Logger) (*app.State, error) {
	state, err := app.NewState(opts.config(), logger)
	if err != nil {
		return nil, err
	}
	if opts.spot {
		state.Scene.Spot.SetOn(true)
	}
	return state, nil
}

// renderToFile renders a single frame and returns the path it was written to
func renderToFile(opts options, logger core.Logger) (string, error) {
	state, err := newState(opts, logger)
	if err != nil {
		return "", err
	}
	defer state.Close()
	if err := state.Render(); err != nil {
		return "", err
	}

	filename := opts.out
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	if err := state.SaveSnapshot(filename); err != nil {
		return "", err
	}
	return filename, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	logger := core.NewDefaultLogger()

	if opts.interactive {
		state, err := newState(opts, logger)
		if err != nil {
			fmt.Printf("Error creating scene: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Keys: a/b select light, o toggle, x/y/z move, j/k/l aim spot, p animate, +/- AA, 0-2 reflections, Esc quit")
		err = display.RunWindow(state, "Interactive Raytracer")
		state.Close()
		if err != nil {
			fmt.Printf("Window error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Starting Interactive Raytracer (offline render)...")
	filename, err := renderToFile(opts, logger)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}
