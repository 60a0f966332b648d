// Command trimesh is a CLI front end over the triangulate package: it reads
// a point-set JSON file, runs the pipeline, and writes the result as JSON or
// a debug PNG, exposing run/rasterize/batch subcommands through
// urfave/cli/v2.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "trimesh",
		Usage: "constrained Delaunay triangulation and Ruppert refinement",
		Commands: []*cli.Command{
			runCommand,
			rasterizeCommand,
			batchCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "trimesh:", err)
		os.Exit(1)
	}
}
