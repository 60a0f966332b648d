package triangulate

import (
	"math"

	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/delaunay"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/plant"
	"github.com/trimesh2d/cdt/preprocess"
	"github.com/trimesh2d/cdt/refine"
	"github.com/trimesh2d/cdt/sloan"
	"github.com/trimesh2d/cdt/status"
	"github.com/trimesh2d/cdt/validate"
)

// Input is the raw triangulation input; an alias of validate.Input so both
// packages describe exactly one shape.
type Input = validate.Input

// Instance is a reusable triangulator handle. It keeps the mesh of its most
// recent Run; each Run builds a fresh mesh, so no allocation is shared
// between calls. An Instance is not safe for concurrent use; run
// independent triangulations on independent Instances.
type Instance struct {
	k arith.Kind
	m *halfedge.Mesh
}

// NewInstance creates a reusable Instance for the given arithmetic
// capability.
func NewInstance(k arith.Kind) *Instance {
	return &Instance{k: k}
}

// Triangulate is the one-shot convenience function: it allocates a throwaway
// Instance for a single call.
func Triangulate(k arith.Kind, in Input, opts ...Option) Result {
	return NewInstance(k).Run(in, opts...)
}

// Run executes the full pipeline on in: Preprocess, Validate, Delaunay,
// Constrain, Plant, Refine, Postprocess.
func (inst *Instance) Run(in Input, opts ...Option) Result {
	settings := defaultSettings()
	for _, o := range opts {
		o(&settings)
	}
	log := settings.Logger

	hasConstraints := len(in.ConstraintEdges) > 0
	if st := checkSettings(settings, hasConstraints, inst.k); st.IsError() {
		return Result{Status: st}
	}

	var diag *status.Diagnostics
	if settings.CollectDiagnostics {
		diag = &status.Diagnostics{}
	}

	if settings.ValidateInput {
		if st := validate.Run(inst.k, in, diag, log); st.IsError() {
			return Result{Status: st, Diagnostics: diag}
		}
	}

	bounds := boundsOf(in.Positions)

	tr := preprocess.Compute(settings.Preprocessor, in.Positions)
	localPositions := tr.ForwardAll(in.Positions)
	var localHoleSeeds []arith.Vec
	if hasConstraints {
		localHoleSeeds = tr.ForwardAll(in.HoleSeeds)
	}

	inst.m = halfedge.New(inst.k, localPositions)

	if st := delaunay.Build(inst.m, log); st.IsError() {
		return inst.result(st, diag, tr, bounds)
	}

	if hasConstraints {
		types := in.ConstraintEdgeTypes
		if len(types) == 0 {
			types = make([]halfedge.ConstraintState, len(in.ConstraintEdges)/2)
			for i := range types {
				types[i] = halfedge.ConstrainedAndHoleBoundary
			}
		}
		if st := sloan.Constrain(inst.m, in.ConstraintEdges, types, settings.SloanMaxIters, log); st.IsError() {
			return inst.result(st, diag, tr, bounds)
		}
	}

	plant.Plant(inst.m, plant.Options{
		HoleSeeds:            localHoleSeeds,
		RestoreBoundary:      settings.RestoreBoundary,
		AutoHolesAndBoundary: settings.AutoHolesAndBoundary,
	}, log)

	if settings.RefineMesh {
		st := refine.Refine(inst.m, refine.Options{
			AreaMax:           settings.RefinementArea,
			AngleMin:          settings.RefinementAngle,
			ConstrainBoundary: settings.ConstrainBoundary,
		}, log)
		if st.IsError() {
			return inst.result(st, diag, tr, bounds)
		}
	}

	return inst.result(status.OK(), diag, tr, bounds)
}

// result snapshots the instance's scratch mesh (inverting the Preprocess
// transform on its positions) into an independent Result the caller owns.
func (inst *Instance) result(st status.Status, diag *status.Diagnostics, tr preprocess.Transform, bounds [2]arith.Vec) Result {
	positions := append([]arith.Vec(nil), inst.m.Positions...)
	tr.InverseAll(positions)
	return Result{
		Positions:    positions,
		Triangles:    append([]int(nil), inst.m.Triangles...),
		Halfedges:    append([]int(nil), inst.m.Halfedges...),
		Constrained:  append([]halfedge.ConstraintState(nil), inst.m.Constrained...),
		VertexOrigin: append([]halfedge.VertexOrigin(nil), inst.m.VertexOrigin...),
		Bounds:       bounds,
		Status:       st,
		Diagnostics:  diag,
	}
}

// checkSettings validates Settings itself, independent of ValidateInput:
// these describe caller error, not input content, so they are always
// checked.
func checkSettings(s Settings, hasConstraints bool, k arith.Kind) status.Status {
	if s.SloanMaxIters <= 0 {
		return status.Status{Kind: status.SloanMaxItersMustBePositive, Count: s.SloanMaxIters}
	}
	if s.RefineMesh && s.RefinementArea <= 0 {
		return status.Status{Kind: status.RefinementThresholdAreaMustBePositive}
	}
	if s.RefineMesh && (s.RefinementAngle < 0 || s.RefinementAngle > math.Pi/4) {
		return status.Status{Kind: status.RefinementThresholdAngleOutOfRange}
	}
	if s.RefineMesh && !k.SupportsRefinement() {
		return status.Status{Kind: status.RefinementNotSupportedForCoordinateType}
	}
	if s.AutoHolesAndBoundary && !hasConstraints {
		return status.Status{Kind: status.ConstraintEdgesMissingForAutoHolesAndBoundary}
	}
	if s.RestoreBoundary && !hasConstraints {
		return status.Status{Kind: status.ConstraintEdgesMissingForRestoreBoundary}
	}
	return status.OK()
}
