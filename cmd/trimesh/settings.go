package main

import (
	"math"

	"github.com/urfave/cli/v2"

	"github.com/trimesh2d/cdt/configfile"
	"github.com/trimesh2d/cdt/triangulate"
)

// settingsFlags are shared between the run, rasterize, and batch
// subcommands: a --config file supplies defaults, and individual flags
// override specific fields on top of it.
var settingsFlags = []cli.Flag{
	&cli.StringFlag{Name: "config", Usage: "optional YAML settings file (see configfile.File)"},
	&cli.BoolFlag{Name: "refine", Usage: "enable Ruppert refinement"},
	&cli.Float64Flag{Name: "refine-area", Usage: "maximum triangle area when refining", Value: 1},
	&cli.Float64Flag{Name: "refine-angle-degrees", Usage: "minimum triangle angle in degrees when refining", Value: 20},
	&cli.BoolFlag{Name: "auto-holes", Usage: "remove holes and the exterior automatically by even-odd parity across hole-boundary constraints"},
	&cli.BoolFlag{Name: "validate", Usage: "validate input content before triangulating", Value: true},
}

// settingsFromContext loads --config (if given) as a base and layers the
// individual flags on top, mirroring the precedence a CLI user expects:
// explicit flags win over the config file's values. Without --config every
// flag applies, including the defaults shown in its help text.
func settingsFromContext(c *cli.Context) ([]triangulate.Option, error) {
	var opts []triangulate.Option
	noConfig := true
	if path := c.String("config"); path != "" {
		noConfig = false
		f, err := configfile.Load(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, f.ToOptions()...)
	}
	use := func(name string) bool { return noConfig || c.IsSet(name) }

	if use("refine") {
		opts = append(opts, triangulate.WithRefineMesh(c.Bool("refine")))
	}
	if use("refine-area") {
		opts = append(opts, triangulate.WithRefinementArea(c.Float64("refine-area")))
	}
	if use("refine-angle-degrees") {
		opts = append(opts, triangulate.WithRefinementAngle(c.Float64("refine-angle-degrees")*math.Pi/180))
	}
	if use("auto-holes") {
		opts = append(opts, triangulate.WithAutoHolesAndBoundary(c.Bool("auto-holes")))
	}
	if use("validate") {
		opts = append(opts, triangulate.WithValidateInput(c.Bool("validate")))
	}
	return opts, nil
}
