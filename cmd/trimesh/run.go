package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/triangulate"
)

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "triangulate a point-set JSON file and write the result",
	ArgsUsage: "<input.json> <output.json>",
	Flags:     settingsFlags,
	Action:    runAction,
}

func runAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("run requires <input.json> <output.json>", 1)
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

	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	opts = append(opts, triangulate.WithLogger(log))

	r := triangulate.Triangulate(arith.NewFloat64Kind(), in, opts...)
	if r.Status.IsError() {
		return cli.Exit(fmt.Sprintf("triangulation failed: %s", r.Status.Error()), 1)
	}

	if err := saveResult(outputPath, r); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("wrote %d triangles to %s\n", r.NumTriangles(), outputPath)
	return nil
}
