// Package arith is the arithmetic capability interface. It exists so the
// Delaunay/Sloan/Plant/Refine algorithms are written once against Kind and
// run unmodified over float64 or integer coordinates.
// Vec always stores its two coordinates as float64; what varies between Kind
// implementations is how predicates interpret and widen those values
// (adaptive float arithmetic for floating coordinate kinds, widened integer
// arithmetic for Int32Kind), with robust-predicate style generalized into a
// capability value instead of a single hard-coded package.
package arith

// Vec is a 2D coordinate. Every Kind implementation agrees on this shape;
// they differ only in how they interpret and round it.
type Vec struct {
	X, Y float64
}

// Sub returns a-b.
func (a Vec) Sub(b Vec) Vec { return Vec{a.X - b.X, a.Y - b.Y} }

// Add returns a+b.
func (a Vec) Add(b Vec) Vec { return Vec{a.X + b.X, a.Y + b.Y} }

// Scale returns a*s.
func (a Vec) Scale(s float64) Vec { return Vec{a.X * s, a.Y * s} }

// Kind is the arithmetic capability a coordinate representation must supply.
// All methods are pure and free of hidden state so a single Kind value can
// be shared across concurrent, disjoint triangulations.
type Kind interface {
	// Name identifies the coordinate representation, e.g. "float64" or
	// "int32".
	Name() string

	// Dot is the dot product a·b.
	Dot(a, b Vec) float64

	// Dist2 is the squared Euclidean distance between a and b.
	Dist2(a, b Vec) float64

	// Len2 is the squared length of v.
	Len2(v Vec) float64

	// Orient2D returns the sign of the signed area of triangle (a,b,c):
	// positive for counter-clockwise, negative for clockwise, zero for
	// collinear. Must use widened arithmetic for integer coordinate kinds.
	Orient2D(a, b, c Vec) int

	// InCircle returns the sign of the InCircle determinant of (a,b,c,d):
	// positive when d lies strictly inside the circumcircle of (a,b,c)
	// assuming (a,b,c) are given counter-clockwise, negative when outside,
	// zero when cocircular. Must use widened arithmetic for integer
	// coordinate kinds (partial sums a·(b·cp − bp·c) can require 128-bit
	// intermediates).
	InCircle(a, b, c, d Vec) int

	// CircumCenter returns the circumcenter of (a,b,c). ok is false when the
	// three points are collinear (the determinant is zero), in which case the
	// returned Vec is meaningless ("infinity" sentinel ).
	CircumCenter(a, b, c Vec) (center Vec, ok bool)

	// IsFinite reports whether v's coordinates are representable and
	// finite in this Kind.
	IsFinite(v Vec) bool

	// PseudoAngle is the monotone atan2 proxy, used only for hull-hash bucket
	// selection. Returns a value in [0, 1).
	PseudoAngle(dx, dy float64) float64

	// PointInTriangle reports whether p lies within (or on the boundary
	// of) triangle (a,b,c), using orientation consistent with Orient2D.
	PointInTriangle(p, a, b, c Vec) bool

	// Lerp linearly interpolates between a and b by t in [0,1].
	Lerp(a, b Vec, t float64) Vec

	// Cos is math.Cos, exposed through the capability so fixed-point
	// kinds could in principle special-case it; float kinds just forward
	// to math.Cos.
	Cos(radians float64) float64

	// Alpha computes the concentric-shell split parameter: α = R/d · 2^k where
	// k = round(log2(d/(2R))). ok is false when this Kind cannot support
	// refinement (integer coordinates); refinement is then rejected with
	// IntegersDoNotSupportMeshRefinement.
	Alpha(R, d float64) (alpha float64, ok bool)

	// SupportsRefinement reports whether Alpha is meaningful for this
	// Kind. Checked once up front so Triangulate can fail fast with a
	// Status instead of deep inside the refine loop.
	SupportsRefinement() bool
}
