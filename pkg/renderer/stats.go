package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	NonFiniteSamples int           // Samples discarded because they were NaN or Inf
	Tiles            int           // Tiles completed
	Workers          int           // Workers used
	Elapsed          time.Duration // Wall time of the render
}

// Merge adds the per-tile counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.NonFiniteSamples += other.NonFiniteSamples
	s.Tiles += other.Tiles
}

// AverageSamples returns samples per pixel actually taken
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// SamplesPerSecond returns the sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
