package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.Description})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	fmt.Fprintln(ctx.App.Writer, "Meshes load with ply:<file>.")
	return nil
}

// Build the BVH for a scene and display its statistics.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument")
	}

	sc, err := scene.Load(ctx.Args().First())
	if err != nil {
		return err
	}

	summary := sc.Summarize()
	bvh := geometry.NewBVH(sc.Primitives)
	stats := bvh.Stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"Spheres", fmt.Sprintf("%d", summary.Spheres)},
		{"Triangles", fmt.Sprintf("%d", summary.Triangles)},
		{"Materials", fmt.Sprintf("%d", summary.Materials)},
		{"Textures", fmt.Sprintf("%d", summary.Textures)},
		{"Emissive primitives", fmt.Sprintf("%d", summary.Emissive)},
		{"BVH nodes", fmt.Sprintf("%d", stats.Nodes)},
		{"BVH leaves", fmt.Sprintf("%d", stats.Leaves)},
		{"BVH max depth", fmt.Sprintf("%d", stats.MaxDepth)},
		{"Max leaf size", fmt.Sprintf("%d", stats.MaxLeafSize)},
		{"Avg leaf size", fmt.Sprintf("%.2f", stats.AvgLeafSize())},
		{"Degenerate leaves", fmt.Sprintf("%d", stats.DegenerateLeaves)},
		{"Build time", stats.BuildTime.String()},
	})
	table.Render()

	fmt.Fprintf(ctx.App.Writer, "scene %q\n%s", sc.Name, buf.String())
	return nil
}
