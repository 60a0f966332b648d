package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
)

// annulus builds a ten-triangle mesh: an outer square (A,B,C,D)
// and an inner square (a,b,c,d), connected by four "kite" quads each split
// on the diagonal toward the inner corner, with the inner square itself
// triangulated on diagonal a-c. The outer square's four sides are the mesh's
// true (unmarked) boundary; the inner square's four sides are marked
// ConstrainedAndHoleBoundary, separating the annulus (triangles 0-7) from
// the hole interior (triangles 8-9).
func annulus(k arith.Kind) *halfedge.Mesh {
	m := halfedge.New(k, []arith.Vec{
		{0, 0}, {0, 4}, {4, 4}, {4, 0}, // A, B, C, D
		{1, 1}, {1, 3}, {3, 3}, {3, 1}, // a, b, c, d
	})
	const A, B, C, D = 0, 1, 2, 3
	const a, b, c, d = 4, 5, 6, 7

	m.AddTriangle(A, B, b) // tri0: h0 A->B(outer) h1 B->b h2 b->A
	m.AddTriangle(A, b, a) // tri1: h3 A->b h4 b->a(hole) h5 a->A
	m.AddTriangle(B, C, c) // tri2: h6 B->C(outer) h7 C->c h8 c->B
	m.AddTriangle(B, c, b) // tri3: h9 B->c h10 c->b(hole) h11 b->B
	m.AddTriangle(C, D, d) // tri4: h12 C->D(outer) h13 D->d h14 d->C
	m.AddTriangle(C, d, c) // tri5: h15 C->d h16 d->c(hole) h17 c->C
	m.AddTriangle(D, A, a) // tri6: h18 D->A(outer) h19 A->a h20 a->D
	m.AddTriangle(D, a, d) // tri7: h21 D->a h22 a->d(hole) h23 d->D
	m.AddTriangle(a, b, c) // tri8: h24 a->b(hole) h25 b->c(hole) h26 c->a
	m.AddTriangle(a, c, d) // tri9: h27 a->c h28 c->d(hole) h29 d->a(hole)

	m.SetTwins(1, 11)
	m.SetTwins(2, 3)
	m.SetTwins(5, 19)
	m.SetTwins(7, 17)
	m.SetTwins(8, 9)
	m.SetTwins(13, 23)
	m.SetTwins(14, 15)
	m.SetTwins(20, 21)
	m.SetTwins(26, 27)
	m.SetTwins(4, 24)
	m.SetTwins(10, 25)
	m.SetTwins(16, 28)
	m.SetTwins(22, 29)

	for _, h := range []int{4, 24, 10, 25, 16, 28, 22, 29} {
		m.Constrained[h] = halfedge.ConstrainedAndHoleBoundary
	}
	return m
}

func TestPlantHoleSeedsRemovesOnlyFloodReachableRegion(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := annulus(k)
	require.NoError(t, m.CheckInvariants())

	// Centroid of inner triangle (a,b,c) = ((1,1)+(1,3)+(3,3))/3.
	seed := arith.Vec{X: 5.0 / 3, Y: 7.0 / 3}
	n := Plant(m, Options{HoleSeeds: []arith.Vec{seed}}, zap.NewNop())

	assert.Equal(t, 2, n)
	assert.Equal(t, 8, m.NumTriangles())
	require.NoError(t, m.CheckInvariants())
}

func TestPlantAutoHolesAndBoundaryAlternatesRemoveKeep(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := annulus(k)

	n := Plant(m, Options{AutoHolesAndBoundary: true}, zap.NewNop())

	assert.Equal(t, 2, n, "only the hole interior should flip to removed")
	assert.Equal(t, 8, m.NumTriangles())
	require.NoError(t, m.CheckInvariants())
}

// boundaryJunk builds a two-triangle mesh: tri1 is hull-filling junk touching
// an unmarked outer edge, tri0 is the real region whose own three sides are
// either shared with tri1 (marked ConstrainedAndHoleBoundary) or terminate
// the mesh as marked boundary. RestoreBoundary should strip tri1 and keep
// tri0.
func boundaryJunk(k arith.Kind) *halfedge.Mesh {
	m := halfedge.New(k, []arith.Vec{
		{0, 0}, {2, 0}, {1, 2}, {-1, 1}, // a, b, c, d
	})
	const a, b, c, d = 0, 1, 2, 3

	m.AddTriangle(a, c, b) // tri0 (real region): h0 a->c h1 c->b h2 b->a
	m.AddTriangle(c, a, d) // tri1 (junk): h3 c->a h4 a->d h5 d->c

	m.SetTwins(0, 3)
	m.Constrained[0] = halfedge.ConstrainedAndHoleBoundary
	m.Constrained[3] = halfedge.ConstrainedAndHoleBoundary
	m.Constrained[1] = halfedge.ConstrainedAndHoleBoundary
	m.Constrained[2] = halfedge.ConstrainedAndHoleBoundary
	return m
}

func TestPlantRestoreBoundaryStripsJunkOutsideMarkedBoundary(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := boundaryJunk(k)
	require.NoError(t, m.CheckInvariants())

	n := Plant(m, Options{RestoreBoundary: true}, zap.NewNop())

	require.Equal(t, 1, n)
	require.Equal(t, 1, m.NumTriangles())
	require.NoError(t, m.CheckInvariants())

	a, b, c := m.TriangleVertices(0)
	assert.ElementsMatch(t, []int{0, 1, 2}, []int{a, b, c})
}

func TestPlantNoOptionsRemovesNothing(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := annulus(k)

	n := Plant(m, Options{}, zap.NewNop())

	assert.Equal(t, 0, n)
	assert.Equal(t, 10, m.NumTriangles())
}
