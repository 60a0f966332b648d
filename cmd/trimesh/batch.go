package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/triangulate"
)

// batchCommand triangulates many point-set files concurrently, one Instance
// per file so no two goroutines ever touch the same scratch mesh.
var batchCommand = &cli.Command{
	Name:      "batch",
	Usage:     "triangulate many point-set JSON files concurrently",
	ArgsUsage: "<input1.json> [input2.json ...]",
	Flags: append(append([]cli.Flag{}, settingsFlags...),
		&cli.IntFlag{Name: "concurrency", Usage: "maximum simultaneous triangulations (0 = unlimited)", Value: 0},
	),
	Action: batchAction,
}

func batchAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("batch requires at least one input file", 1)
	}

	opts, err := settingsFromContext(c)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	inputs := c.Args().Slice()
	group := new(errgroup.Group)
	if n := c.Int("concurrency"); n > 0 {
		group.SetLimit(n)
	}

	for _, inputPath := range inputs {
		inputPath := inputPath
		group.Go(func() error {
			in, err := loadPointSet(inputPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", inputPath, err)
			}

			inst := triangulate.NewInstance(arith.NewFloat64Kind())
			r := inst.Run(in, opts...)
			if r.Status.IsError() {
				return fmt.Errorf("%s: %s", inputPath, r.Status.Error())
			}

			outputPath := strings.TrimSuffix(inputPath, ".json") + ".out.json"
			if err := saveResult(outputPath, r); err != nil {
				return fmt.Errorf("writing %s: %w", outputPath, err)
			}
			fmt.Printf("%s: wrote %d triangles to %s\n", inputPath, r.NumTriangles(), outputPath)
			return nil
		})
	}

	return group.Wait()
}
