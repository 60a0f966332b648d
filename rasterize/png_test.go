package rasterize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/triangulate"
)

func singleTriangleResult(t *testing.T) triangulate.Result {
	t.Helper()
	k := arith.NewFloat64Kind()
	in := triangulate.Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}}
	r := triangulate.Triangulate(k, in)
	require.True(t, r.Status.IsOK())
	return r
}

func TestPNGProducesRequestedDimensions(t *testing.T) {
	r := singleTriangleResult(t)

	img, err := PNG(r, WithDimensions(200, 100))

	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestPNGBackgroundFillsWhenLayersDisabled(t *testing.T) {
	r := singleTriangleResult(t)

	img, err := PNG(r, WithDimensions(50, 50), WithFillTriangles(false), WithDrawEdges(false), WithDrawVertices(false))

	require.NoError(t, err)
	bg := DefaultConfig().Background
	br, bgg, bb, ba := bg.RGBA()
	cr, cg, cb, ca := img.At(0, 0).RGBA()
	assert.Equal(t, br, cr)
	assert.Equal(t, bgg, cg)
	assert.Equal(t, bb, cb)
	assert.Equal(t, ba, ca)
}

func TestPNGZeroDimensionsFallBackToOnePixel(t *testing.T) {
	r := singleTriangleResult(t)

	img, err := PNG(r, func(c *Config) { c.Width, c.Height = 0, 0 })

	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}

func TestPNGDrawsConstrainedEdgesDistinctlyFromFills(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := triangulate.Input{
		Positions: []arith.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		ConstraintEdges: []int{0, 1, 1, 2, 2, 3, 3, 0},
	}
	r := triangulate.Triangulate(k, in)
	require.True(t, r.Status.IsOK())

	img, err := PNG(r, WithDimensions(100, 100))

	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
}

func TestPNGCyclesTrianglePaletteAcrossFills(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := triangulate.Input{
		Positions: []arith.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
	}
	r := triangulate.Triangulate(k, in)
	require.True(t, r.Status.IsOK())
	require.Equal(t, 2, r.NumTriangles())

	palette := NewPalette()
	img, err := PNG(r, WithDimensions(100, 100), WithTrianglePalette(palette),
		WithDrawEdges(false), WithDrawConstrained(false), WithDrawVertices(false))
	require.NoError(t, err)

	want1R, want1G, want1B, _ := palette.Get(0).RGBA()
	want2R, want2G, want2B, _ := palette.Get(1).RGBA()

	found1, found2 := false, false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			if pr == want1R && pg == want1G && pb == want1B {
				found1 = true
			}
			if pr == want2R && pg == want2G && pb == want2B {
				found2 = true
			}
		}
	}
	assert.True(t, found1, "expected the first triangle's fill in the palette's first color")
	assert.True(t, found2, "expected the second triangle's fill in the palette's second color")
}

func TestPNGColorsHoleBoundaryDistinctlyFromConstrained(t *testing.T) {
	cfg := DefaultConfig()
	require.NotEqual(t, cfg.ConstrainedColor, cfg.HoleBoundaryColor)

	k := arith.NewFloat64Kind()
	m := halfedge.New(k, []arith.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	m.AddTriangle(0, 1, 2)
	m.Constrained[0] = halfedge.ConstrainedAndHoleBoundary
	m.Constrained[1] = halfedge.Constrained
	m.Constrained[2] = halfedge.Constrained

	r := triangulate.Result{
		Positions:    m.Positions,
		Triangles:    m.Triangles,
		Halfedges:    m.Halfedges,
		Constrained:  m.Constrained,
		VertexOrigin: []halfedge.VertexOrigin{halfedge.Input, halfedge.Input, halfedge.Input},
		Bounds:       [2]arith.Vec{{X: 0, Y: 0}, {X: 10, Y: 10}},
	}

	img, err := PNG(r, WithDimensions(100, 100), WithFillTriangles(false), WithDrawVertices(false))
	require.NoError(t, err)

	holeR, holeG, holeB, _ := cfg.HoleBoundaryColor.RGBA()
	constrainedR, constrainedG, constrainedB, _ := cfg.ConstrainedColor.RGBA()

	foundHole, foundConstrained := false, false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !(foundHole && foundConstrained); y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			if pr == holeR && pg == holeG && pb == holeB {
				foundHole = true
			}
			if pr == constrainedR && pg == constrainedG && pb == constrainedB {
				foundConstrained = true
			}
		}
	}
	assert.True(t, foundHole, "expected the hole-boundary edge to be drawn in HoleBoundaryColor")
	assert.True(t, foundConstrained, "expected the plain constrained edges to be drawn in ConstrainedColor")
}

func TestNextWalksTriangleCorners(t *testing.T) {
	assert.Equal(t, 1, next(0))
	assert.Equal(t, 2, next(1))
	assert.Equal(t, 0, next(2))
	assert.Equal(t, 4, next(3))
	assert.Equal(t, 5, next(4))
	assert.Equal(t, 3, next(5))
}
