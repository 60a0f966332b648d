package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/status"
)

func TestSingleTriangleScenario(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := halfedge.New(k, []arith.Vec{{0, 0}, {1, 0}, {0, 1}})

	st := Build(m, zap.NewNop())
	require.True(t, st.IsOK())

	assert.Equal(t, []int{0, 2, 1}, m.Triangles)
	assert.Equal(t, []int{-1, -1, -1}, m.Halfedges)
	require.NoError(t, m.CheckInvariants())
}

func TestUnitSquareTwoTriangles(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := halfedge.New(k, []arith.Vec{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	st := Build(m, zap.NewNop())
	require.True(t, st.IsOK())
	require.NoError(t, m.CheckInvariants())

	assert.Equal(t, 2, m.NumTriangles())

	twinCount := 0
	for _, he := range m.Halfedges {
		if he != -1 {
			twinCount++
		}
	}
	assert.Equal(t, 2, twinCount, "exactly one shared interior edge (two halfedges)")
}

func TestDegenerateInputTooFewPoints(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := halfedge.New(k, []arith.Vec{{0, 0}, {1, 0}})
	st := Build(m, zap.NewNop())
	assert.Equal(t, status.DegenerateInput, st.Kind)
}

func TestDegenerateInputCollinear(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := halfedge.New(k, []arith.Vec{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	st := Build(m, zap.NewNop())
	assert.Equal(t, status.DegenerateInput, st.Kind)
}

func TestLargerRandomGridIsDelaunayAndClockwise(t *testing.T) {
	k := arith.NewFloat64Kind()
	var pts []arith.Vec
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			pts = append(pts, arith.Vec{X: float64(x), Y: float64(y)})
		}
	}
	m := halfedge.New(k, pts)
	st := Build(m, zap.NewNop())
	require.True(t, st.IsOK())
	require.NoError(t, m.CheckInvariants())

	for h := range m.Halfedges {
		twin := m.Halfedges[h]
		if twin == -1 {
			continue
		}
		apex := m.ApexVertex(h)
		a, b := m.OriginVertex(h), m.DestVertex(h)
		opp := m.Triangles[halfedge.Prev(twin)]
		// Delaunay: opposite vertex must not be strictly inside the
		// circumcircle of (apex, a, b) oriented however InCircle expects.
		orient := k.Orient2D(m.Positions[apex], m.Positions[a], m.Positions[b])
		var inCircle int
		if orient > 0 {
			inCircle = k.InCircle(m.Positions[apex], m.Positions[a], m.Positions[b], m.Positions[opp])
		} else if orient < 0 {
			inCircle = k.InCircle(m.Positions[apex], m.Positions[b], m.Positions[a], m.Positions[opp])
		}
		assert.LessOrEqual(t, inCircle, 0)
	}
}
