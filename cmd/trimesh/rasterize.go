package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/rasterize"
	"github.com/trimesh2d/cdt/triangulate"
)

var rasterizeCommand = &cli.Command{
	Name:      "rasterize",
	Usage:     "triangulate a point-set JSON file and render it to a PNG",
	ArgsUsage: "<input.json> <output.png>",
	Flags: append(append([]cli.Flag{}, settingsFlags...),
		&cli.IntFlag{Name: "width", Value: 800},
		&cli.IntFlag{Name: "height", Value: 600},
	),
	Action: rasterizeAction,
}

func rasterizeAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("rasterize requires <input.json> <output.png>", 1)
	}
	inputPath, outputPath := c.Args().Get(0), c.Args().Get(1)

	in, err := loadPointSet(inputPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}

	opts, err := settingsFromContext(c)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	r := triangulate.Triangulate(arith.NewFloat64Kind(), in, opts...)
	if r.Status.IsError() {
		return cli.Exit(fmt.Sprintf("triangulation failed: %s", r.Status.Error()), 1)
	}

	img, err := rasterize.PNG(r, rasterize.WithDimensions(c.Int("width"), c.Int("height")))
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", outputPath, err)
	}
	fmt.Printf("wrote %dx%d image to %s\n", img.Bounds().Dx(), img.Bounds().Dy(), outputPath)
	return nil
}
