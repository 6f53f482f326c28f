package renderer

import "time"

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	Width        int           // Frame width in pixels
	Height       int           // Frame height in pixels
	Bands        int           // Number of band tasks
	SamplesPerPx int           // Rays per pixel (N×N)
	TotalSamples int           // Total primary rays traced
	Elapsed      time.Duration // Wall-clock render time
}

// newRenderStats fills the derived counters for a frame
func newRenderStats(width, height, bands, aa int, elapsed time.Duration) RenderStats {
	return RenderStats{
		Width:        width,
		Height:       height,
		Bands:        bands,
		SamplesPerPx: aa * aa,
		TotalSamples: width * height * aa * aa,
		Elapsed:      elapsed,
	}
}

// RaysPerSecond returns the primary ray throughput of the frame
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
