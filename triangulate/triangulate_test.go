package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/status"
)

func TestTriangulateSingleTriangle(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}

	r := Triangulate(k, in)

	require.True(t, r.Status.IsOK())
	assert.Equal(t, 1, r.NumTriangles())
	for _, h := range r.Halfedges {
		assert.Equal(t, halfedge.NilHalfedge, h)
	}
}

func TestTriangulateUnitSquareTwoTriangles(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}

	r := Triangulate(k, in)

	require.True(t, r.Status.IsOK())
	assert.Equal(t, 2, r.NumTriangles())
	twins := 0
	for _, h := range r.Halfedges {
		if h != halfedge.NilHalfedge {
			twins++
		}
	}
	assert.Equal(t, 2, twins, "exactly one twinned pair between the two triangles")
}

func TestTriangulateHoleExtractionRemovesInnerRegion(t *testing.T) {
	k := arith.NewFloat64Kind()
	// Outer square [0,10]^2 with an inner square [4,6]^2 hole.
	in := Input{
		Positions: []arith.Vec{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, // outer 0-3
			{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}, // inner 4-7
		},
		ConstraintEdges: []int{
			0, 1, 1, 2, 2, 3, 3, 0,
			4, 5, 5, 6, 6, 7, 7, 4,
		},
		HoleSeeds: []arith.Vec{{X: 5, Y: 5}},
	}

	r := Triangulate(k, in)

	require.True(t, r.Status.IsOK())
	for i := 0; i < r.NumTriangles(); i++ {
		a := r.Positions[r.Triangles[3*i]]
		b := r.Positions[r.Triangles[3*i+1]]
		c := r.Positions[r.Triangles[3*i+2]]
		cx, cy := (a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3
		inHole := cx > 4 && cx < 6 && cy > 4 && cy < 6
		assert.False(t, inHole, "no triangle centroid should fall inside the hole")
	}
}

func TestTriangulateRejectsNonPositiveSloanMaxIters(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}

	r := Triangulate(k, in, WithSloanMaxIters(0))

	assert.Equal(t, status.SloanMaxItersMustBePositive, r.Status.Kind)
}

func TestTriangulateRejectsRefinementOnIntegerCoordinates(t *testing.T) {
	k := arith.NewInt32Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}}

	r := Triangulate(k, in, WithRefineMesh(true))

	assert.Equal(t, status.RefinementNotSupportedForCoordinateType, r.Status.Kind)
}

func TestTriangulateRejectsAutoHolesWithoutConstraints(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}

	r := Triangulate(k, in, WithAutoHolesAndBoundary(true))

	assert.Equal(t, status.ConstraintEdgesMissingForAutoHolesAndBoundary, r.Status.Kind)
}

func TestTriangulateRefinesUnitSquare(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}

	r := Triangulate(k, in, WithRefineMesh(true), WithRefinementArea(5), WithRefinementAngle(0))

	require.True(t, r.Status.IsOK())
	assert.Greater(t, r.NumTriangles(), 2)
}

func TestInstanceRunsRepeatedCallsIndependently(t *testing.T) {
	k := arith.NewFloat64Kind()
	inst := NewInstance(k)
	in1 := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}
	in2 := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}}

	r1 := inst.Run(in1)
	r2 := inst.Run(in2)

	require.True(t, r1.Status.IsOK())
	require.True(t, r2.Status.IsOK())
	assert.Equal(t, 1, r1.NumTriangles())
	assert.Equal(t, 2, r2.NumTriangles())
}

func TestBoundsReflectsOriginalInput(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: -3, Y: 2}, {X: 5, Y: -1}, {X: 1, Y: 7}}}

	r := Triangulate(k, in, WithPreprocessor(0))

	assert.Equal(t, arith.Vec{X: -3, Y: -1}, r.Bounds[0])
	assert.Equal(t, arith.Vec{X: 5, Y: 7}, r.Bounds[1])
}
