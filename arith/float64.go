package arith

import (
	"math"
	"math/big"
)

// adaptiveFilter bounds the float64 fast-path error before falling back to
// exact big.Float arithmetic, the same two-tier strategy used by
// Orient2D/InCircle below.
const adaptiveFilter = 1e-15

// Float64Kind is the default, general-purpose double-precision arithmetic
// capability. It supports refinement (Alpha is meaningful).
type Float64Kind struct{}

// NewFloat64Kind constructs the double-precision capability. It carries no
// state, so a single value may be shared freely.
func NewFloat64Kind() Float64Kind { return Float64Kind{} }

func (Float64Kind) Name() string { return "float64" }

func (Float64Kind) Dot(a, b Vec) float64 { return a.X*b.X + a.Y*b.Y }

func (Float64Kind) Dist2(a, b Vec) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func (Float64Kind) Len2(v Vec) float64 { return v.X*v.X + v.Y*v.Y }

func maxAbs(vs ...float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

func (k Float64Kind) Orient2D(a, b, c Vec) int {
	ax, ay := b.X-a.X, b.Y-a.Y
	bx, by := c.X-a.X, c.Y-a.Y
	det := ax*by - ay*bx

	mag := maxAbs(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	eps := mag * mag * adaptiveFilter
	if eps < adaptiveFilter {
		eps = adaptiveFilter
	}
	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func bigF(v float64) *big.Float { return big.NewFloat(v) }

func orient2DExact(a, b, c Vec) int {
	ax := new(big.Float).Sub(bigF(b.X), bigF(a.X))
	ay := new(big.Float).Sub(bigF(b.Y), bigF(a.Y))
	bx := new(big.Float).Sub(bigF(c.X), bigF(a.X))
	by := new(big.Float).Sub(bigF(c.Y), bigF(a.Y))

	term1 := new(big.Float).Mul(ax, by)
	term2 := new(big.Float).Mul(ay, bx)
	det := new(big.Float).Sub(term1, term2)
	return det.Sign()
}

func (k Float64Kind) InCircle(a, b, c, d Vec) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy

	det := ad2*(bdx*cdy-bdy*cdx) -
		bd2*(adx*cdy-ady*cdx) +
		cd2*(adx*bdy-ady*bdx)

	mag := maxAbs(adx, ady, bdx, bdy, cdx, cdy)
	eps := math.Pow(mag, 3) * adaptiveFilter
	if eps < adaptiveFilter {
		eps = adaptiveFilter
	}
	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return inCircleExact(a, b, c, d)
	}
}

func inCircleExact(a, b, c, d Vec) int {
	adx := new(big.Float).Sub(bigF(a.X), bigF(d.X))
	ady := new(big.Float).Sub(bigF(a.Y), bigF(d.Y))
	bdx := new(big.Float).Sub(bigF(b.X), bigF(d.X))
	bdy := new(big.Float).Sub(bigF(b.Y), bigF(d.Y))
	cdx := new(big.Float).Sub(bigF(c.X), bigF(d.X))
	cdy := new(big.Float).Sub(bigF(c.Y), bigF(d.Y))

	sq := func(v *big.Float) *big.Float { return new(big.Float).Mul(v, v) }
	ad2 := new(big.Float).Add(sq(adx), sq(ady))
	bd2 := new(big.Float).Add(sq(bdx), sq(bdy))
	cd2 := new(big.Float).Add(sq(cdx), sq(cdy))

	t1 := new(big.Float).Mul(ad2, new(big.Float).Sub(new(big.Float).Mul(bdx, cdy), new(big.Float).Mul(bdy, cdx)))
	t2 := new(big.Float).Mul(bd2, new(big.Float).Sub(new(big.Float).Mul(adx, cdy), new(big.Float).Mul(ady, cdx)))
	t3 := new(big.Float).Mul(cd2, new(big.Float).Sub(new(big.Float).Mul(adx, bdy), new(big.Float).Mul(ady, bdx)))

	det := new(big.Float).Sub(new(big.Float).Add(t1, t3), t2)
	return det.Sign()
}

func (k Float64Kind) CircumCenter(a, b, c Vec) (Vec, bool) {
	dx1, dy1 := b.X-a.X, b.Y-a.Y
	dx2, dy2 := c.X-a.X, c.Y-a.Y

	d := 2 * (dx1*dy2 - dy1*dx2)
	if d == 0 {
		return Vec{}, false
	}

	len1 := dx1*dx1 + dy1*dy1
	len2 := dx2*dx2 + dy2*dy2

	ux := (dy2*len1 - dy1*len2) / d
	uy := (dx1*len2 - dx2*len1) / d

	return Vec{X: a.X + ux, Y: a.Y + uy}, true
}

func (Float64Kind) IsFinite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// PseudoAngle implements the exact formula. For dx < 0 and a tiny positive
// dy, 3 - p rounds up to 4; that result wraps to 0, the value the formula
// gives at dy == 0, so the range stays [0, 1).
func (Float64Kind) PseudoAngle(dx, dy float64) float64 {
	p := dx / (math.Abs(dx) + math.Abs(dy))
	if dy > 0 {
		p = 3 - p
	} else {
		p = 1 + p
	}
	if p >= 4 {
		return 0
	}
	return p / 4
}

func (k Float64Kind) PointInTriangle(p, a, b, c Vec) bool {
	d1 := k.Orient2D(p, a, b)
	d2 := k.Orient2D(p, b, c)
	d3 := k.Orient2D(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func (Float64Kind) Lerp(a, b Vec, t float64) Vec {
	return Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func (Float64Kind) Cos(radians float64) float64 { return math.Cos(radians) }

// Alpha implements the concentric-shell split parameter: α = R/d · 2^k where
// k = round(log2(d/(2R))).
func (Float64Kind) Alpha(R, d float64) (float64, bool) {
	if d <= 0 {
		return 0, false
	}
	k := math.Round(math.Log2(d / (2 * R)))
	return (R / d) * math.Pow(2, k), true
}

func (Float64Kind) SupportsRefinement() bool { return true }
