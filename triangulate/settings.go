// Package triangulate is the top-level entry point: it wires Preprocess,
// Validate, Delaunay, Constrain, Plant, Refine, and Postprocess into a
// single synchronous pipeline, exposing the reusable
// Instance/Settings/Result shape.
package triangulate

import (
	"math"

	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/preprocess"
)

// Settings configures a Triangulate/Instance.Run call.
type Settings struct {
	// Preprocessor selects the optional coordinate-frame transform.
	Preprocessor preprocess.Kind
	// AutoHolesAndBoundary applies plant's even-odd rule.
	AutoHolesAndBoundary bool
	// RestoreBoundary seeds removal from every unconstrained outer triangle.
	RestoreBoundary bool
	// ConstrainBoundary marks every outer halfedge ConstrainedAndHoleBoundary
	// before refining, for callers who want the hull itself protected from
	// encroachment splitting.
	ConstrainBoundary bool
	// RefineMesh enables the Ruppert refinement stage.
	RefineMesh bool
	// ValidateInput enables the Validate stage.
	ValidateInput bool
	// CollectDiagnostics, combined with ValidateInput, reports every validation
	// problem found instead of only the first.
	CollectDiagnostics bool
	// SloanMaxIters bounds the per-constraint flip-resolution loop.
	SloanMaxIters int
	// RefinementArea is Amax, the maximum triangle area under refinement.
	RefinementArea float64
	// RefinementAngle is alphaMin in radians, the minimum interior angle under
	// refinement.
	RefinementAngle float64
	// Logger receives structured per-stage progress. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// defaultSettings mirrors stated defaults.
func defaultSettings() Settings {
	return Settings{
		SloanMaxIters:   1_000_000,
		RefinementArea:  1,
		RefinementAngle: 5 * math.Pi / 180,
		Logger:          zap.NewNop(),
	}
}

// Option configures Settings via the standard functional-option pattern.
type Option func(*Settings)

// WithPreprocessor selects the coordinate-frame transform.
func WithPreprocessor(k preprocess.Kind) Option {
	return func(s *Settings) { s.Preprocessor = k }
}

// WithAutoHolesAndBoundary toggles plant's even-odd removal mode.
func WithAutoHolesAndBoundary(enable bool) Option {
	return func(s *Settings) { s.AutoHolesAndBoundary = enable }
}

// WithRestoreBoundary toggles plant's unconstrained-boundary removal seed.
func WithRestoreBoundary(enable bool) Option {
	return func(s *Settings) { s.RestoreBoundary = enable }
}

// WithConstrainBoundary toggles marking the hull ConstrainedAndHoleBoundary
// before refining.
func WithConstrainBoundary(enable bool) Option {
	return func(s *Settings) { s.ConstrainBoundary = enable }
}

// WithRefineMesh toggles the Ruppert refinement stage.
func WithRefineMesh(enable bool) Option {
	return func(s *Settings) { s.RefineMesh = enable }
}

// WithValidateInput toggles the Validate stage.
func WithValidateInput(enable bool) Option {
	return func(s *Settings) { s.ValidateInput = enable }
}

// WithCollectDiagnostics toggles report-every-problem validation mode.
func WithCollectDiagnostics(enable bool) Option {
	return func(s *Settings) { s.CollectDiagnostics = enable }
}

// WithSloanMaxIters overrides the constraint flip-resolution iteration cap.
// A non-positive value is not clamped here; Run reports it as
// SloanMaxItersMustBePositive instead.
func WithSloanMaxIters(n int) Option {
	return func(s *Settings) { s.SloanMaxIters = n }
}

// WithRefinementArea overrides Amax.
func WithRefinementArea(area float64) Option {
	return func(s *Settings) { s.RefinementArea = area }
}

// WithRefinementAngle overrides alphaMin, in radians.
func WithRefinementAngle(angle float64) Option {
	return func(s *Settings) { s.RefinementAngle = angle }
}

// WithLogger installs a structured logger; nil is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(s *Settings) {
		if log != nil {
			s.Logger = log
		}
	}
}
