package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFlags are the options accepted by the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "cornell",
		Usage: "built-in scene name or ply:<file>",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width (scene default if unset)",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height (scene default if unset)",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (scene default if unset)",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum path depth (scene default if unset)",
	},
	cli.Uint64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "sampler seed",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of render workers, 0 uses every CPU",
	},
	cli.IntFlag{
		Name:  "tile",
		Value: 32,
		Usage: "tile size in pixels",
	},
	cli.StringFlag{
		Name:  "integrator",
		Value: string(integrator.KindPathTracing),
		Usage: "integrator: pt, normal, bvh-depth or ao",
	},
	cli.StringFlag{
		Name:  "accel",
		Value: string(scene.AccelBVH),
		Usage: "intersection accelerator: bvh or linear",
	},
	cli.StringFlag{
		Name:  "env",
		Usage: "PNG or JPEG environment map replacing the scene sky",
	},
	cli.Float64Flag{
		Name:  "env-scale",
		Value: 1,
		Usage: "radiance multiplier for the environment map",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "render.png",
		Usage: "image filename for the rendered frame",
	},
}

// Render a still frame.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Load(ctx.String("scene"))
	if err != nil {
		return err
	}

	if envFile := ctx.String("env"); envFile != "" {
		texture, err := loaders.LoadTexture(envFile)
		if err != nil {
			return err
		}
		sky := lights.NewIBLSky(texture)
		sky.Scale = ctx.Float64("env-scale")
		sc.Sky = sky
	}

	config := renderConfig(ctx, sc)
	integ, err := integrator.New(integrator.Kind(ctx.String("integrator")), config.MaxDepth)
	if err != nil {
		return err
	}

	summary := sc.Summarize()
	logger.Noticef("scene %q: %d spheres, %d triangles, %d emissive primitives",
		sc.Name, summary.Spheres, summary.Triangles, summary.Emissive)

	intersector, err := sc.NewIntersector(scene.Accelerator(ctx.String("accel")))
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(config, sc.Camera, intersector, sc.Sky, integ)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	img, stats, renderErr := r.Render(renderCtx)
	if renderErr != nil && !errors.Is(renderErr, renderer.ErrInterrupted) {
		return renderErr
	}

	if err := writePNG(ctx.String("out"), img); err != nil {
		return err
	}
	displayRenderStats(config, stats)

	if renderErr != nil {
		logger.Warningf("saved partial frame to %s", ctx.String("out"))
		return renderErr
	}
	logger.Noticef("saved frame to %s", ctx.String("out"))
	return nil
}

// renderConfig starts from the scene's preferred settings and applies any
// flags given on the command line
func renderConfig(ctx *cli.Context, sc *scene.Scene) renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = sc.Width
	config.Height = sc.Height
	config.SamplesPerPixel = sc.SamplesPerPixel
	config.MaxDepth = sc.MaxDepth

	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		config.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}
	config.Seed = ctx.Uint64("seed")
	config.NumWorkers = ctx.Int("workers")
	config.TileSize = ctx.Int("tile")
	return config
}

func writePNG(filename string, img *renderer.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	img.PostProcess()
	if err := png.Encode(file, img.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func displayRenderStats(config renderer.Config, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "SPP", "Tiles", "Workers", "Samples", "Non-finite", "Samples/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", config.Width, config.Height),
		fmt.Sprintf("%d", config.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.NonFiniteSamples),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Elapsed.String(),
	})
	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())

	if info, err := hostInfo(); err == nil {
		logger.Noticef("host\n%s", info)
	} else {
		logger.Debugf("host information unavailable: %v", err)
	}
}
