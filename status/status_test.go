package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusZeroValueIsOK(t *testing.T) {
	var s Status
	assert.True(t, s.IsOK())
	assert.False(t, s.IsError())
	assert.Equal(t, "ok", s.Error())
}

func TestStatusErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		s    Status
		want string
	}{
		{"degenerate", Status{Kind: DegenerateInput}, "degenerate input: seed triangle collinear or n < 3"},
		{"positions-len", Status{Kind: PositionsLengthLessThan3, Count: 2}, "positions length 2 is less than 3"},
		{"self-loop", Status{Kind: ConstraintSelfLoop, Index: 3, Pair: [2]int{4, 4}}, "constraint 3 is a self loop [4 4]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Error())
		})
	}
}

func TestDiagnosticsAggregatesAllProblems(t *testing.T) {
	var d Diagnostics
	d.Add(OK())
	d.Add(Status{Kind: DuplicatePosition, Index: 1})
	d.Add(Status{Kind: ConstraintSelfLoop, Index: 2, Pair: [2]int{5, 5}})

	require.Equal(t, 2, d.Len())
	problems := d.Problems()
	require.Len(t, problems, 2)
	assert.Equal(t, DuplicatePosition, problems[0].Kind)
	assert.Equal(t, ConstraintSelfLoop, problems[1].Kind)
	assert.Error(t, d.Err())
}
