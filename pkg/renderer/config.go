package renderer

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidConfig is returned when a Config fails validation
	ErrInvalidConfig = errors.New("invalid render config")
	// ErrInterrupted is returned when the render context is cancelled
	ErrInterrupted = errors.New("render interrupted")
)

// Config contains the frame and sampling parameters for a render
type Config struct {
	Width           int    // Image width in pixels
	Height          int    // Image height in pixels
	SamplesPerPixel int    // Samples averaged per pixel
	MaxDepth        int    // Maximum path length
	TileSize        int    // Edge length of a square tile
	NumWorkers      int    // Parallel workers (0 = use CPU count)
	Seed            uint64 // Base seed for every tile sampler
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           512,
		Height:          512,
		SamplesPerPixel: 64,
		MaxDepth:        100,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            1,
	}
}

// Validate checks that the config can drive a render
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// Workers returns the effective worker count
func (c Config) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
