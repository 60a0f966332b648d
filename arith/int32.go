package arith

import "math/big"

// Int32Kind is the integer-coordinate arithmetic capability. Coordinates are
// stored in Vec as float64 but are assumed to hold exact int32 values;
// Orient2D/InCircle widen to int64/big.Int intermediates ("for integer
// coordinates this must be evaluated with widened arithmetic... partial sums
// a·(b·cp − bp·c) can require 128-bit intermediates"). Int32Kind does not
// support refinement: Alpha has no well-defined meaning on a coordinate
// lattice with finite resolution, so SupportsRefinement reports false.
// Triangulate rejects refinement requests with
// RefinementNotSupportedForCoordinateType; refine.Refine called directly
// returns IntegersDoNotSupportMeshRefinement.
type Int32Kind struct{}

// NewInt32Kind constructs the integer-coordinate capability.
func NewInt32Kind() Int32Kind { return Int32Kind{} }

func (Int32Kind) Name() string { return "int32" }

func i64(v float64) int64 { return int64(v) }

func (Int32Kind) Dot(a, b Vec) float64 {
	return float64(i64(a.X)*i64(b.X) + i64(a.Y)*i64(b.Y))
}

func (Int32Kind) Dist2(a, b Vec) float64 {
	dx := i64(a.X) - i64(b.X)
	dy := i64(a.Y) - i64(b.Y)
	return float64(dx*dx + dy*dy)
}

func (Int32Kind) Len2(v Vec) float64 {
	x, y := i64(v.X), i64(v.Y)
	return float64(x*x + y*y)
}

// Orient2D widens the shoelace determinant to int64: inputs are int32
// magnitude, so the subtraction and one multiplication each fit safely in
// int64 without overflow.
func (Int32Kind) Orient2D(a, b, c Vec) int {
	ax, ay := i64(b.X)-i64(a.X), i64(b.Y)-i64(a.Y)
	bx, by := i64(c.X)-i64(a.X), i64(c.Y)-i64(a.Y)
	det := ax*by - ay*bx
	switch {
	case det > 0:
		return 1
	case det < 0:
		return -1
	default:
		return 0
	}
}

// InCircle widens every partial sum through math/big.Int, since the
// determinant involves products of squared-distance terms (up to magnitude
// ~2^64 for int32 inputs) times a 2x2 minor — comfortably exceeding int64
// and requiring the 128-bit-class widening calls for.
func (Int32Kind) InCircle(a, b, c, d Vec) int {
	bi := func(v float64) *big.Int { return big.NewInt(i64(v)) }

	adx := new(big.Int).Sub(bi(a.X), bi(d.X))
	ady := new(big.Int).Sub(bi(a.Y), bi(d.Y))
	bdx := new(big.Int).Sub(bi(b.X), bi(d.X))
	bdy := new(big.Int).Sub(bi(b.Y), bi(d.Y))
	cdx := new(big.Int).Sub(bi(c.X), bi(d.X))
	cdy := new(big.Int).Sub(bi(c.Y), bi(d.Y))

	sq := func(v *big.Int) *big.Int { return new(big.Int).Mul(v, v) }
	ad2 := new(big.Int).Add(sq(adx), sq(ady))
	bd2 := new(big.Int).Add(sq(bdx), sq(bdy))
	cd2 := new(big.Int).Add(sq(cdx), sq(cdy))

	minor := func(x1, y1, x2, y2 *big.Int) *big.Int {
		return new(big.Int).Sub(new(big.Int).Mul(x1, y2), new(big.Int).Mul(y1, x2))
	}

	t1 := new(big.Int).Mul(ad2, minor(bdx, bdy, cdx, cdy))
	t2 := new(big.Int).Mul(bd2, minor(adx, ady, cdx, cdy))
	t3 := new(big.Int).Mul(cd2, minor(adx, ady, bdx, bdy))

	det := new(big.Int).Sub(new(big.Int).Add(t1, t3), t2)
	return det.Sign()
}

func (Int32Kind) CircumCenter(a, b, c Vec) (Vec, bool) {
	dx1, dy1 := i64(b.X)-i64(a.X), i64(b.Y)-i64(a.Y)
	dx2, dy2 := i64(c.X)-i64(a.X), i64(c.Y)-i64(a.Y)

	d := 2 * (dx1*dy2 - dy1*dx2)
	if d == 0 {
		return Vec{}, false
	}

	len1 := float64(dx1*dx1 + dy1*dy1)
	len2 := float64(dx2*dx2 + dy2*dy2)
	df := float64(d)

	ux := (float64(dy2)*len1 - float64(dy1)*len2) / df
	uy := (float64(dx1)*len2 - float64(dx2)*len1) / df

	return Vec{X: a.X + ux, Y: a.Y + uy}, true
}

func (Int32Kind) IsFinite(v Vec) bool {
	const limit = 1 << 30
	return v.X == float64(int32(v.X)) && v.Y == float64(int32(v.Y)) &&
		v.X > -limit && v.X < limit && v.Y > -limit && v.Y < limit
}

func (Int32Kind) PseudoAngle(dx, dy float64) float64 {
	p := dx / (abs(dx) + abs(dy))
	if dy > 0 {
		p = 3 - p
	} else {
		p = 1 + p
	}
	if p >= 4 {
		return 0 // rounding wrap, as in Float64Kind.PseudoAngle
	}
	return p / 4
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (k Int32Kind) PointInTriangle(p, a, b, c Vec) bool {
	d1 := k.Orient2D(p, a, b)
	d2 := k.Orient2D(p, b, c)
	d3 := k.Orient2D(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func (Int32Kind) Lerp(a, b Vec, t float64) Vec {
	return Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func (Int32Kind) Cos(radians float64) float64 { return Float64Kind{}.Cos(radians) }

// Alpha is unsupported: Int32Kind cannot back concentric-shell refinement.
func (Int32Kind) Alpha(R, d float64) (float64, bool) { return 0, false }

func (Int32Kind) SupportsRefinement() bool { return false }
