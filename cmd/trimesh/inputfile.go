package main

import (
	"encoding/json"
	"os"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/triangulate"
)

// pointSetFile is the serializable form of a triangulate.Input: a dedicated
// data struct with one encoder/decoder call, for raw triangulation input
// rather than already-built mesh state.
type pointSetFile struct {
	Positions            [][2]float64 `json:"positions"`
	ConstraintEdges      [][2]int     `json:"constraint_edges,omitempty"`
	ConstraintEdgeTypes  []string     `json:"constraint_edge_types,omitempty"`
	HoleSeeds            [][2]float64 `json:"hole_seeds,omitempty"`
}

func loadPointSet(filename string) (triangulate.Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return triangulate.Input{}, err
	}
	var f pointSetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return triangulate.Input{}, err
	}

	in := triangulate.Input{
		Positions: make([]arith.Vec, len(f.Positions)),
		HoleSeeds: make([]arith.Vec, len(f.HoleSeeds)),
	}
	for i, p := range f.Positions {
		in.Positions[i] = arith.Vec{X: p[0], Y: p[1]}
	}
	for i, p := range f.HoleSeeds {
		in.HoleSeeds[i] = arith.Vec{X: p[0], Y: p[1]}
	}
	for _, e := range f.ConstraintEdges {
		in.ConstraintEdges = append(in.ConstraintEdges, e[0], e[1])
	}
	if len(f.ConstraintEdgeTypes) > 0 {
		in.ConstraintEdgeTypes = make([]halfedge.ConstraintState, len(f.ConstraintEdgeTypes))
		for i, name := range f.ConstraintEdgeTypes {
			if name == "hole_boundary" {
				in.ConstraintEdgeTypes[i] = halfedge.ConstrainedAndHoleBoundary
			} else {
				in.ConstraintEdgeTypes[i] = halfedge.Constrained
			}
		}
	}
	return in, nil
}

// resultFile is the serializable form of a triangulate.Result, written by
// the run subcommand.
type resultFile struct {
	Positions [][2]float64 `json:"positions"`
	Triangles []int        `json:"triangles"`
	Status    string       `json:"status"`
}

func saveResult(filename string, r triangulate.Result) error {
	f := resultFile{
		Positions: make([][2]float64, len(r.Positions)),
		Triangles: r.Triangles,
		Status:    r.Status.Error(),
	}
	for i, p := range r.Positions {
		f.Positions[i] = [2]float64{p.X, p.Y}
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
