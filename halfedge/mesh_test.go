package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimesh2d/cdt/arith"
)

func TestNextPrevCycle(t *testing.T) {
	for base := 0; base < 9; base += 3 {
		h := base
		assert.Equal(t, base+1, Next(h))
		assert.Equal(t, base+2, Next(Next(h)))
		assert.Equal(t, h, Next(Next(Next(h))))
		assert.Equal(t, base+2, Prev(h))
	}
}

func TestSingleTriangleInvariants(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := New(k, []arith.Vec{{0, 0}, {1, 0}, {0, 1}})
	// Clockwise: (0,0) -> (0,1) -> (1,0)
	m.AddTriangle(0, 2, 1)

	require.NoError(t, m.CheckInvariants())
	assert.Equal(t, 1, m.NumTriangles())
	v0, v1, v2 := m.TriangleVertices(0)
	assert.Equal(t, [3]int{0, 2, 1}, [3]int{v0, v1, v2})
}

func TestSetTwinsSymmetric(t *testing.T) {
	k := arith.NewFloat64Kind()
	m := New(k, []arith.Vec{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	m.AddTriangle(0, 2, 1)
	m.AddTriangle(1, 2, 3)
	m.SetTwins(1, 3)
	assert.Equal(t, 3, m.Twin(1))
	assert.Equal(t, 1, m.Twin(3))
}
