// Package preprocess implements the optional coordinate-frame transform:
// centering (and, optionally, principal-axis rotation) of the input into a
// local frame before triangulation, inverted on the output positions
// afterward. No dependency in the module's stack carries a linear-algebra
// library, so a 2x2 analytic eigen-decomposition is written directly using
// plain vector math.
package preprocess

import (
	"math"

	"github.com/trimesh2d/cdt/arith"
)

// Kind selects which preprocessing transform to apply.
type Kind int

const (
	// None applies no transform; Forward/Inverse are the identity.
	None Kind = iota
	// COM centers the input on its center of mass.
	COM
	// PCA centers on the center of mass and rotates so the input's
	// principal axis of variance aligns with X.
	PCA
)

// Transform holds the parameters of a computed preprocessing transform: a
// translation to the center of mass and, for PCA, a rotation. Zero value is
// the identity transform.
type Transform struct {
	center   arith.Vec
	cos, sin float64
}

// Compute derives a Transform for positions under the requested Kind.
// Positions with fewer than 2 points, or a degenerate (zero-variance)
// cloud under PCA, fall back to the identity rotation.
func Compute(kind Kind, positions []arith.Vec) Transform {
	switch kind {
	case COM:
		return Transform{center: centroid(positions), cos: 1}
	case PCA:
		c := centroid(positions)
		cosT, sinT := principalAxis(positions, c)
		return Transform{center: c, cos: cosT, sin: sinT}
	default:
		return Transform{cos: 1}
	}
}

// Forward maps p from the original coordinate space into the local
// preprocessing frame.
func (t Transform) Forward(p arith.Vec) arith.Vec {
	d := p.Sub(t.center)
	return arith.Vec{X: d.X*t.cos + d.Y*t.sin, Y: -d.X*t.sin + d.Y*t.cos}
}

// Inverse maps p from the local preprocessing frame back into the original
// coordinate space. Inverse(Forward(p)) == p up to floating-point rounding.
func (t Transform) Inverse(p arith.Vec) arith.Vec {
	return arith.Vec{
		X: p.X*t.cos - p.Y*t.sin + t.center.X,
		Y: p.X*t.sin + p.Y*t.cos + t.center.Y,
	}
}

// ForwardAll applies Forward to every point in a freshly allocated slice,
// leaving pts untouched.
func (t Transform) ForwardAll(pts []arith.Vec) []arith.Vec {
	out := make([]arith.Vec, len(pts))
	for i, p := range pts {
		out[i] = t.Forward(p)
	}
	return out
}

// InverseAll applies Inverse to every point in place, for use on a
// pipeline's final output positions.
func (t Transform) InverseAll(pts []arith.Vec) {
	for i, p := range pts {
		pts[i] = t.Inverse(p)
	}
}

func centroid(positions []arith.Vec) arith.Vec {
	if len(positions) == 0 {
		return arith.Vec{}
	}
	var sum arith.Vec
	for _, p := range positions {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(positions))
	return arith.Vec{X: sum.X / n, Y: sum.Y / n}
}

// principalAxis returns (cos, sin) of the rotation that aligns positions'
// dominant axis of variance (about center) with X, via the closed-form
// eigenvector angle of the 2x2 covariance matrix:
// angle = 0.5*atan2(2*sxy, sxx-syy).
func principalAxis(positions []arith.Vec, center arith.Vec) (cos, sin float64) {
	var sxx, syy, sxy float64
	for _, p := range positions {
		dx, dy := p.X-center.X, p.Y-center.Y
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 && syy == 0 && sxy == 0 {
		return 1, 0
	}
	angle := 0.5 * math.Atan2(2*sxy, sxx-syy)
	return math.Cos(angle), math.Sin(angle)
}
