// Package status defines the single accumulated outcome of a triangulation
// run plus an optional multi-error diagnostics report used by callers that
// want every validation problem instead of only the first.
package status

import "fmt"

// Kind enumerates every distinct outcome a Status can carry.
type Kind int

const (
	// Ok means the pipeline completed every requested stage successfully.
	Ok Kind = iota
	DegenerateInput
	PositionsLengthLessThan3
	PositionsMustBeFinite
	DuplicatePosition
	ConstraintsLengthNotDivisibleBy2
	ConstraintArrayLengthMismatch
	ConstraintOutOfBounds
	ConstraintSelfLoop
	DuplicateConstraint
	ConstraintIntersection
	RedundantHolesArray
	HoleMustBeFinite
	ConstraintEdgesMissingForAutoHolesAndBoundary
	ConstraintEdgesMissingForRestoreBoundary
	RefinementNotSupportedForCoordinateType
	SloanMaxItersMustBePositive
	RefinementThresholdAreaMustBePositive
	RefinementThresholdAngleOutOfRange
	SloanMaxItersExceeded
	IntegersDoNotSupportMeshRefinement
)

var kindNames = map[Kind]string{
	Ok:                              "Ok",
	DegenerateInput:                 "DegenerateInput",
	PositionsLengthLessThan3:        "PositionsLengthLessThan3",
	PositionsMustBeFinite:           "PositionsMustBeFinite",
	DuplicatePosition:               "DuplicatePosition",
	ConstraintsLengthNotDivisibleBy2: "ConstraintsLengthNotDivisibleBy2",
	ConstraintArrayLengthMismatch:    "ConstraintArrayLengthMismatch",
	ConstraintOutOfBounds:            "ConstraintOutOfBounds",
	ConstraintSelfLoop:               "ConstraintSelfLoop",
	DuplicateConstraint:              "DuplicateConstraint",
	ConstraintIntersection:           "ConstraintIntersection",
	RedundantHolesArray:              "RedundantHolesArray",
	HoleMustBeFinite:                 "HoleMustBeFinite",
	ConstraintEdgesMissingForAutoHolesAndBoundary: "ConstraintEdgesMissingForAutoHolesAndBoundary",
	ConstraintEdgesMissingForRestoreBoundary:      "ConstraintEdgesMissingForRestoreBoundary",
	RefinementNotSupportedForCoordinateType:       "RefinementNotSupportedForCoordinateType",
	SloanMaxItersMustBePositive:                   "SloanMaxItersMustBePositive",
	RefinementThresholdAreaMustBePositive:         "RefinementThresholdAreaMustBePositive",
	RefinementThresholdAngleOutOfRange:            "RefinementThresholdAngleOutOfRange",
	SloanMaxItersExceeded:                         "SloanMaxItersExceeded",
	IntegersDoNotSupportMeshRefinement:            "IntegersDoNotSupportMeshRefinement",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Status is the single sum-typed outcome value threaded through the
// pipeline. The zero value is Ok. Index/Index2/Count/Pair are populated
// according to Kind; unused fields are left zero.
type Status struct {
	Kind   Kind
	Index  int
	Index2 int
	Count  int
	Pair   [2]int
}

// OK constructs a successful Status.
func OK() Status { return Status{Kind: Ok} }

// IsOK reports whether the status represents success.
func (s Status) IsOK() bool { return s.Kind == Ok }

// IsError reports whether the status represents any non-success outcome.
func (s Status) IsError() bool { return s.Kind != Ok }

// Error implements the error interface so a Status can be returned/wrapped
// through ordinary Go error-handling paths at API boundaries.
func (s Status) Error() string {
	switch s.Kind {
	case Ok:
		return "ok"
	case DegenerateInput:
		return "degenerate input: seed triangle collinear or n < 3"
	case PositionsLengthLessThan3:
		return fmt.Sprintf("positions length %d is less than 3", s.Count)
	case PositionsMustBeFinite:
		return fmt.Sprintf("position %d is not finite", s.Index)
	case DuplicatePosition:
		return fmt.Sprintf("position %d duplicates an earlier position", s.Index)
	case ConstraintsLengthNotDivisibleBy2:
		return fmt.Sprintf("constraint edge array length %d is not divisible by 2", s.Count)
	case ConstraintArrayLengthMismatch:
		return "constraint edge types array length does not match edge count"
	case ConstraintOutOfBounds:
		return fmt.Sprintf("constraint %d endpoint %v out of bounds (have %d positions)", s.Index, s.Pair, s.Count)
	case ConstraintSelfLoop:
		return fmt.Sprintf("constraint %d is a self loop %v", s.Index, s.Pair)
	case DuplicateConstraint:
		return fmt.Sprintf("constraint %d duplicates constraint %d", s.Index, s.Index2)
	case ConstraintIntersection:
		return fmt.Sprintf("constraint %d properly intersects constraint %d", s.Index, s.Index2)
	case RedundantHolesArray:
		return "hole seeds supplied without constraint edges"
	case HoleMustBeFinite:
		return fmt.Sprintf("hole seed %d is not finite", s.Index)
	case ConstraintEdgesMissingForAutoHolesAndBoundary:
		return "autoHolesAndBoundary requested without constraint edges"
	case ConstraintEdgesMissingForRestoreBoundary:
		return "restoreBoundary requested without constraint edges"
	case RefinementNotSupportedForCoordinateType:
		return "refinement requested but arithmetic capability does not support it"
	case SloanMaxItersMustBePositive:
		return fmt.Sprintf("sloanMaxIters must be positive, got %d", s.Count)
	case RefinementThresholdAreaMustBePositive:
		return "refinement.area must be > 0"
	case RefinementThresholdAngleOutOfRange:
		return "refinement.angle must be within [0, pi/4]"
	case SloanMaxItersExceeded:
		return fmt.Sprintf("sloan flip loop exceeded %d iterations on constraint %d", s.Count, s.Index)
	case IntegersDoNotSupportMeshRefinement:
		return "integer coordinates do not support mesh refinement"
	default:
		return s.Kind.String()
	}
}
