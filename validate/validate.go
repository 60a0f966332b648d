// Package validate implements the Validate stage: a pure predicate over a
// raw triangulation input that never mutates it and only ever produces a
// status code (plus, optionally, every problem it found).
package validate

import (
	"math"

	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/spatial"
	"github.com/trimesh2d/cdt/status"
)

// Input is the raw, pre-mesh triangulation input.
type Input struct {
	Positions []arith.Vec
	// ConstraintEdges is a flat array of index pairs into Positions.
	ConstraintEdges []int
	// ConstraintEdgeTypes is one entry per constraint edge; nil means every
	// edge is ConstrainedAndHoleBoundary.
	ConstraintEdgeTypes []halfedge.ConstraintState
	// HoleSeeds is ignored unless ConstraintEdges is present.
	HoleSeeds []arith.Vec
}

type edge struct{ a, b int }

// Run checks in for every condition validation taxonomy and returns the
// first one found. When diag is non-nil, every problem found is also
// appended there so a caller can report them all instead of only the first.
// Run never mutates in.
func Run(k arith.Kind, in Input, diag *status.Diagnostics, log *zap.Logger) status.Status {
	if log == nil {
		log = zap.NewNop()
	}
	first := status.OK()
	report := func(s status.Status) {
		if diag != nil {
			diag.Add(s)
		}
		if first.IsOK() {
			first = s
		}
	}

	if len(in.Positions) < 3 {
		report(status.Status{Kind: status.PositionsLengthLessThan3, Count: len(in.Positions)})
		return first
	}

	for i, p := range in.Positions {
		if !k.IsFinite(p) {
			report(status.Status{Kind: status.PositionsMustBeFinite, Index: i})
		}
	}

	checkDuplicatePositions(in.Positions, report)

	if len(in.ConstraintEdges)%2 != 0 {
		report(status.Status{Kind: status.ConstraintsLengthNotDivisibleBy2, Count: len(in.ConstraintEdges)})
		return first
	}
	numEdges := len(in.ConstraintEdges) / 2

	if len(in.ConstraintEdgeTypes) > 0 && len(in.ConstraintEdgeTypes) != numEdges {
		report(status.Status{Kind: status.ConstraintArrayLengthMismatch})
	}

	if numEdges == 0 {
		if len(in.HoleSeeds) > 0 {
			report(status.Status{Kind: status.RedundantHolesArray})
		}
		log.Debug("validate stage complete", zap.Int("positions", len(in.Positions)), zap.Int("constraintEdges", 0))
		return first
	}

	n := len(in.Positions)
	edges := make([]edge, numEdges)
	valid := make([]bool, numEdges)
	for i := 0; i < numEdges; i++ {
		a, b := in.ConstraintEdges[2*i], in.ConstraintEdges[2*i+1]
		if a < 0 || a >= n || b < 0 || b >= n {
			report(status.Status{Kind: status.ConstraintOutOfBounds, Index: i, Pair: [2]int{a, b}, Count: n})
			continue
		}
		if a == b {
			report(status.Status{Kind: status.ConstraintSelfLoop, Index: i, Pair: [2]int{a, b}})
			continue
		}
		// Backward-compat ordering: store the smaller endpoint first. This only
		// affects symmetric lookups below.
		if a > b {
			a, b = b, a
		}
		edges[i] = edge{a, b}
		valid[i] = true
	}

	checkDuplicateConstraints(edges, valid, report)
	checkConstraintIntersections(k, in.Positions, edges, valid, report)

	for i, p := range in.HoleSeeds {
		if !k.IsFinite(p) {
			report(status.Status{Kind: status.HoleMustBeFinite, Index: i})
		}
	}

	log.Debug("validate stage complete",
		zap.Int("positions", len(in.Positions)),
		zap.Int("constraintEdges", numEdges),
		zap.Bool("ok", first.IsOK()),
	)
	return first
}

// checkDuplicatePositions flags any position that exactly repeats an
// earlier one. A spatial.Grid turns this from an O(n²) all-pairs scan into
// an O(n) bucketed one: two positions can only be equal if they fall in the
// same cell.
func checkDuplicatePositions(positions []arith.Vec, report func(status.Status)) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range positions {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	grid := spatial.NewGrid(len(positions), minX, minY, maxX, maxY)
	for i, p := range positions {
		for _, j := range grid.Near(p, 0) {
			if positions[j] == p {
				report(status.Status{Kind: status.DuplicatePosition, Index: i})
				break
			}
		}
		grid.Insert(i, p)
	}
}

// checkDuplicateConstraints flags any constraint edge whose (ordered)
// endpoint pair was already seen, via a map keyed on the endpoint pair
// itself — already O(n), so it needs no spatial acceleration.
func checkDuplicateConstraints(edges []edge, valid []bool, report func(status.Status)) {
	seen := make(map[edge]int, len(edges))
	for i, e := range edges {
		if !valid[i] {
			continue
		}
		if j, ok := seen[e]; ok {
			report(status.Status{Kind: status.DuplicateConstraint, Index: i, Index2: j})
			continue
		}
		seen[e] = i
	}
}

// checkConstraintIntersections flags any two distinct constraints that
// properly cross (share no endpoint and straddle each other),
// ConstraintIntersection. Sharing an endpoint is legitimate (chained
// constraint polylines) and is not an intersection.
func checkConstraintIntersections(k arith.Kind, positions []arith.Vec, edges []edge, valid []bool, report func(status.Status)) {
	for i := 0; i < len(edges); i++ {
		if !valid[i] {
			continue
		}
		for j := i + 1; j < len(edges); j++ {
			if !valid[j] {
				continue
			}
			ei, ej := edges[i], edges[j]
			if ei.a == ej.a || ei.a == ej.b || ei.b == ej.a || ei.b == ej.b {
				continue
			}
			if properlyIntersects(k, positions[ei.a], positions[ei.b], positions[ej.a], positions[ej.b]) {
				report(status.Status{Kind: status.ConstraintIntersection, Index: i, Index2: j})
			}
		}
	}
}

// properlyIntersects reports whether segments (a1,a2) and (b1,b2) straddle
// each other: each segment's endpoints lie on strictly opposite sides of the
// other's line.
func properlyIntersects(k arith.Kind, a1, a2, b1, b2 arith.Vec) bool {
	o1 := k.Orient2D(a1, a2, b1)
	o2 := k.Orient2D(a1, a2, b2)
	o3 := k.Orient2D(b1, b2, a1)
	o4 := k.Orient2D(b1, b2, a2)
	return o1*o2 < 0 && o3*o4 < 0
}
