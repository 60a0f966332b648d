package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/status"
)

func TestRunAcceptsWellFormedInput(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{
		Positions:       []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		ConstraintEdges: []int{0, 1, 1, 2, 2, 3, 3, 0},
	}
	st := Run(k, in, nil, zap.NewNop())
	require.True(t, st.IsOK())
}

func TestRunRejectsTooFewPositions(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.PositionsLengthLessThan3, st.Kind)
	assert.Equal(t, 2, st.Count)
}

func TestRunRejectsNonFinitePosition(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: math.NaN(), Y: 0}}}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.PositionsMustBeFinite, st.Kind)
	assert.Equal(t, 2, st.Index)
}

func TestRunRejectsDuplicatePosition(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.DuplicatePosition, st.Kind)
	assert.Equal(t, 3, st.Index)
}

func TestRunRejectsOddConstraintLength(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{
		Positions:       []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		ConstraintEdges: []int{0, 1, 2},
	}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.ConstraintsLengthNotDivisibleBy2, st.Kind)
}

func TestRunRejectsOutOfBoundsConstraint(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{
		Positions:       []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		ConstraintEdges: []int{0, 5},
	}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.ConstraintOutOfBounds, st.Kind)
	assert.Equal(t, [2]int{0, 5}, st.Pair)
}

func TestRunRejectsSelfLoopConstraint(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{
		Positions:       []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		ConstraintEdges: []int{1, 1},
	}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.ConstraintSelfLoop, st.Kind)
}

func TestRunRejectsDuplicateConstraintRegardlessOfOrder(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{
		Positions:       []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		ConstraintEdges: []int{0, 1, 1, 0},
	}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.DuplicateConstraint, st.Kind)
	assert.Equal(t, 0, st.Index2)
	assert.Equal(t, 1, st.Index)
}

func TestRunRejectsCrossingConstraints(t *testing.T) {
	k := arith.NewFloat64Kind()
	// Bowtie: (0,2) and (1,3) cross in the middle of the unit square.
	in := Input{
		Positions:       []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		ConstraintEdges: []int{0, 2, 1, 3},
	}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.ConstraintIntersection, st.Kind)
}

func TestRunAllowsConstraintsSharingAnEndpoint(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{
		Positions:       []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		ConstraintEdges: []int{0, 1, 1, 2},
	}
	st := Run(k, in, nil, zap.NewNop())
	require.True(t, st.IsOK())
}

func TestRunRejectsRedundantHoleSeeds(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{
		Positions: []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		HoleSeeds: []arith.Vec{{X: 0.1, Y: 0.1}},
	}
	st := Run(k, in, nil, zap.NewNop())
	assert.Equal(t, status.RedundantHolesArray, st.Kind)
}

func TestRunDiagnosticsCollectsEveryProblem(t *testing.T) {
	k := arith.NewFloat64Kind()
	in := Input{
		Positions:       []arith.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}},
		ConstraintEdges: []int{1, 1, 0, 2},
	}
	var diag status.Diagnostics
	st := Run(k, in, &diag, zap.NewNop())
	// First error wins for st (the duplicate position, found before the
	// constraint checks run), but diag must still carry both problems.
	assert.Equal(t, status.DuplicatePosition, st.Kind)
	assert.GreaterOrEqual(t, diag.Len(), 2)
	kinds := make(map[status.Kind]bool)
	for _, p := range diag.Problems() {
		kinds[p.Kind] = true
	}
	assert.True(t, kinds[status.DuplicatePosition])
	assert.True(t, kinds[status.ConstraintSelfLoop])
}
