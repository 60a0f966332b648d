// Package sloan implements the Constrain stage: forcing each requested
// constraint edge into the mesh by tunnelling through the triangles it
// crosses and flipping the shared diagonal of every convex quadrilateral the
// tunnel exposes, using halfedge.Mesh.FlipEdge for the flip primitive
// itself.
package sloan

import (
	"math"

	"github.com/trimesh2d/cdt/arith"
)

// epsilon is the magnitude threshold requires for the convexity and
// collinearity checks ("four signed-area checks with magnitude > EPS"); the
// spec does not pin a value, so this is a design choice recorded in
// DESIGN.md.
const epsilon = 1e-9

func sign(x int) int {
	switch {
	case float64(x) > epsilon:
		return 1
	case float64(x) < -epsilon:
		return -1
	default:
		return 0
	}
}

// segmentsProperlyIntersect reports whether open segment p1p2 strictly
// crosses open segment p3p4: each pair of endpoints lies on strictly
// opposite sides of the other segment's line.
func segmentsProperlyIntersect(k arith.Kind, p1, p2, p3, p4 arith.Vec) bool {
	d1 := sign(k.Orient2D(p3, p4, p1))
	d2 := sign(k.Orient2D(p3, p4, p2))
	d3 := sign(k.Orient2D(p1, p2, p3))
	d4 := sign(k.Orient2D(p1, p2, p4))
	return d1 != 0 && d2 != 0 && d1 != d2 && d3 != 0 && d4 != 0 && d3 != d4
}

// pointOnSegment reports whether p is collinear with and falls within the
// bounding box of segment ab, i.e. lies exactly on it.
func pointOnSegment(k arith.Kind, a, b, p arith.Vec) bool {
	if sign(k.Orient2D(a, b, p)) != 0 {
		return false
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-epsilon && p.X <= maxX+epsilon && p.Y >= minY-epsilon && p.Y <= maxY+epsilon
}

// convexQuad reports whether the quadrilateral q0,q1,q2,q3, given in cyclic
// boundary order, is strictly convex: all four signed areas of consecutive
// vertex triples share the same sign and exceed epsilon in magnitude.
func convexQuad(k arith.Kind, q0, q1, q2, q3 arith.Vec) bool {
	s1 := sign(k.Orient2D(q0, q1, q2))
	s2 := sign(k.Orient2D(q1, q2, q3))
	s3 := sign(k.Orient2D(q2, q3, q0))
	s4 := sign(k.Orient2D(q3, q0, q1))
	if s1 == 0 || s2 == 0 || s3 == 0 || s4 == 0 {
		return false
	}
	return s1 == s2 && s2 == s3 && s3 == s4
}
