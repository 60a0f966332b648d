package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Orient2D(t *testing.T) {
	k := NewFloat64Kind()
	ccw := k.Orient2D(Vec{0, 0}, Vec{1, 0}, Vec{0, 1})
	cw := k.Orient2D(Vec{0, 0}, Vec{0, 1}, Vec{1, 0})
	collinear := k.Orient2D(Vec{0, 0}, Vec{1, 1}, Vec{2, 2})

	assert.Equal(t, 1, ccw)
	assert.Equal(t, -1, cw)
	assert.Equal(t, 0, collinear)
}

func TestFloat64InCircle(t *testing.T) {
	k := NewFloat64Kind()
	a, b, c := Vec{0, 0}, Vec{1, 0}, Vec{0, 1}
	inside := k.InCircle(a, b, c, Vec{0.1, 0.1})
	outside := k.InCircle(a, b, c, Vec{10, 10})

	assert.Equal(t, 1, inside)
	assert.Equal(t, -1, outside)
}

func TestFloat64CircumCenter(t *testing.T) {
	k := NewFloat64Kind()
	center, ok := k.CircumCenter(Vec{0, 0}, Vec{2, 0}, Vec{0, 2})
	require.True(t, ok)
	assert.InDelta(t, 1.0, center.X, 1e-9)
	assert.InDelta(t, 1.0, center.Y, 1e-9)

	_, ok = k.CircumCenter(Vec{0, 0}, Vec{1, 1}, Vec{2, 2})
	assert.False(t, ok)
}

func TestFloat64PseudoAngleInUnitRange(t *testing.T) {
	k := NewFloat64Kind()
	prev := -1.0
	for deg := 0; deg < 360; deg += 15 {
		rad := float64(deg) * math.Pi / 180
		a := k.PseudoAngle(math.Cos(rad), math.Sin(rad))
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 1.0)
		_ = prev
	}
}

func TestFloat64Alpha(t *testing.T) {
	k := NewFloat64Kind()
	assert.True(t, k.SupportsRefinement())
	alpha, ok := k.Alpha(0.001, 0.002)
	require.True(t, ok)
	assert.Greater(t, alpha, 0.0)
}

func TestInt32OrientAndInCircleWidened(t *testing.T) {
	k := NewInt32Kind()
	assert.Equal(t, 1, k.Orient2D(Vec{0, 0}, Vec{100000, 0}, Vec{0, 100000}))

	a, b, c := Vec{0, 0}, Vec{100000, 0}, Vec{0, 100000}
	assert.Equal(t, 1, k.InCircle(a, b, c, Vec{10000, 10000}))
	assert.Equal(t, -1, k.InCircle(a, b, c, Vec{1000000, 1000000}))
}

func TestInt32DoesNotSupportRefinement(t *testing.T) {
	k := NewInt32Kind()
	assert.False(t, k.SupportsRefinement())
	_, ok := k.Alpha(0.001, 1)
	assert.False(t, ok)
}
