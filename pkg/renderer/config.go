package renderer

import "runtime"

// RenderConfig controls how a frame is split across workers
type RenderConfig struct {
	Workers    int // Number of bands rendered at once (0 = runtime.NumCPU())
	BandHeight int // Rows per band (0 = DefaultBandHeight)
}

// DefaultBandHeight is the number of rows rendered by one task
const DefaultBandHeight = 16

// DefaultRenderConfig uses one worker per CPU
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Workers:    runtime.NumCPU(),
		BandHeight: DefaultBandHeight,
	}
}

// normalized fills zero values with defaults
func (c RenderConfig) normalized() RenderConfig {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.BandHeight <= 0 {
		c.BandHeight = DefaultBandHeight
	}
	return c
}
