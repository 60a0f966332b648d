package triangulate

import (
	"math"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/status"
)

// Result is the triangulation output, plus the additive fields (Bounds,
// VertexOrigin) the original reusable triangulator exposed that a distilled
// spec would otherwise discard.
type Result struct {
	// Positions is every output vertex, in the caller's original coordinate
	// frame (the Preprocess transform has already been inverted).
	Positions []arith.Vec
	// Triangles is the flat clockwise triangle array (3 per triangle).
	Triangles []int
	// Halfedges is the twin array, NilHalfedge on the boundary.
	Halfedges []int
	// Constrained is the per-halfedge constraint marking.
	Constrained []halfedge.ConstraintState
	// VertexOrigin records, per output vertex, whether it came from the input
	// or was introduced by refinement.
	VertexOrigin []halfedge.VertexOrigin
	// Bounds is the input's axis-aligned bounding box: [min, max].
	Bounds [2]arith.Vec
	// Status is the single accumulated pipeline outcome.
	Status status.Status
	// Diagnostics holds every validation problem found, when
	// Settings.CollectDiagnostics was set; nil otherwise.
	Diagnostics *status.Diagnostics
}

// NumTriangles returns the number of triangles in the result.
func (r Result) NumTriangles() int { return len(r.Triangles) / 3 }

func boundsOf(positions []arith.Vec) [2]arith.Vec {
	if len(positions) == 0 {
		return [2]arith.Vec{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range positions {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	return [2]arith.Vec{{X: minX, Y: minY}, {X: maxX, Y: maxY}}
}
