package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Renderer drives the per-pixel sampling loop over a tile grid.
// The intersector, sky and materials are shared read-only between workers.
type Renderer struct {
	config      Config
	camera      Camera
	intersector geometry.Intersector
	sky         lights.Sky
	integrator  integrator.Integrator
	logger      log.Logger
}

// NewRenderer validates config and creates a renderer
func NewRenderer(config Config, camera Camera, intersector geometry.Intersector, sky lights.Sky, integ integrator.Integrator) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		config:      config,
		camera:      camera,
		intersector: intersector,
		sky:         sky,
		integrator:  integ,
		logger:      log.New("renderer"),
	}, nil
}

// Config returns the render configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render traces every pixel and returns the averaged linear image.
// Cancellation is checked between tiles; a cancelled render returns
// ErrInterrupted together with the partially filled image.
func (r *Renderer) Render(ctx context.Context) (*Image, RenderStats, error) {
	start := time.Now()
	cfg := r.config
	img := NewImage(cfg.Width, cfg.Height)
	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.TileSize, cfg.Seed)

	stats := RenderStats{Workers: cfg.Workers()}
	r.logger.Infof("rendering %dx%d at %d spp: %d tiles on %d workers",
		cfg.Width, cfg.Height, cfg.SamplesPerPixel, len(tiles), stats.Workers)

	pool := NewWorkerPool(r.renderTile, stats.Workers, len(tiles))
	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Image: img, TaskID: i})
	}

	var renderErr error
	step := max(1, len(tiles)/10)
	for done := 1; done <= len(tiles); done++ {
		result, _ := pool.GetResult()
		if result.Error != nil {
			if renderErr == nil {
				renderErr = fmt.Errorf("%w: %w", ErrInterrupted, result.Error)
			}
			continue
		}
		stats.Merge(result.Stats)
		if done%step == 0 {
			r.logger.Infof("%d/%d tiles done", done, len(tiles))
		}
	}
	pool.Stop()

	img.Divide(float64(cfg.SamplesPerPixel))
	stats.Elapsed = time.Since(start)

	if stats.NonFiniteSamples > 0 {
		r.logger.Warningf("discarded %d non-finite samples", stats.NonFiniteSamples)
	}
	if renderErr != nil {
		r.logger.Warningf("render stopped after %d/%d tiles", stats.Tiles, len(tiles))
		return img, stats, renderErr
	}
	r.logger.Infof("render finished in %v (%.0f samples/s)", stats.Elapsed, stats.SamplesPerSecond())
	return img, stats, nil
}

// renderTile accumulates every sample of the tile into img
func (r *Renderer) renderTile(tile *Tile, img *Image) RenderStats {
	cfg := r.config
	sampler := tile.Sampler
	w, h := float64(cfg.Width), float64(cfg.Height)
	var stats RenderStats

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			for s := 0; s < cfg.SamplesPerPixel; s++ {
				jitter := sampler.Get2D()
				ndc := core.NewVec2(
					(2*(float64(x)+jitter.X)-w)/h,
					-(2*(float64(y)+jitter.Y)-h)/h,
				)
				ray := r.camera.SampleRay(ndc, sampler.Get2D())

				radiance := r.integrator.Integrate(ray, r.intersector, r.sky, sampler)
				if !radiance.IsFinite() {
					stats.NonFiniteSamples++
				} else {
					img.AddPixel(x, y, radiance)
				}
				stats.TotalSamples++
			}
			stats.TotalPixels++
		}
	}
	stats.Tiles = 1
	return stats
}
