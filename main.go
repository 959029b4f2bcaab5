package main

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG file",
			Description: `
Render a built-in scene, or a PLY mesh with --scene ply:<file>, on the CPU.
Frame size, samples per pixel and path depth default to the scene's own
settings. Interrupting the render saves the tiles finished so far.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.Render,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "info",
			Usage:     "show scene contents and BVH statistics",
			ArgsUsage: "scene",
			Action:    cmd.ShowSceneInfo,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
