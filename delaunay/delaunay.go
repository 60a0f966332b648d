// Package delaunay implements the Delaunay stage: an incremental
// Bowyer-Watson/legalization construction after Mapbox's delaunator, using
// the halfedge mesh of package halfedge and the convex hull hash. The
// construction is built internally with counter-clockwise triangle winding
// (the orientation the incremental hull-walk algorithm is easiest to reason
// about in, and the orientation the wider Delaunator family uses) and
// flipped to the clockwise winding requires in one bulk pass at the end
// (reverseOrientation). The flip is a pure relabeling — it does not change
// which points are connected to which, only how each triangle's three
// halfedges are indexed — so the output is identical to building clockwise
// throughout, just simpler to get right.
package delaunay

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/status"
)

// edgeStackCap is the bounded legalize recursion depth step 3: "depth cap
// min(3·maxTriangles, 512)".
const edgeStackCap = 512

// Build constructs the initial Delaunay triangulation of every vertex
// already present in m.Positions. It populates m.Triangles/Halfedges/
// Constrained (all Constrained entries start Unconstrained) and trims them
// to the exact filled size.
func Build(m *halfedge.Mesh, log *zap.Logger) status.Status {
	if log == nil {
		log = zap.NewNop()
	}
	n := len(m.Positions)
	if n < 3 {
		return status.Status{Kind: status.DegenerateInput}
	}

	k := m.Kind

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range m.Positions {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	bboxCenter := arith.Vec{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}

	i0 := nearestTo(k, m.Positions, bboxCenter, -1, -1)
	i1 := nearestTo(k, m.Positions, m.Positions[i0], i0, -1)

	minRadius := math.Inf(1)
	i2 := -1
	p0, p1 := m.Positions[i0], m.Positions[i1]
	for i, p := range m.Positions {
		if i == i0 || i == i1 {
			continue
		}
		r := circumradius(p0, p1, p)
		if r < minRadius {
			minRadius = r
			i2 = i
		}
	}
	if i2 == -1 || math.IsInf(minRadius, 1) {
		return status.Status{Kind: status.DegenerateInput}
	}
	p2 := m.Positions[i2]

	// Build the seed triangle counter-clockwise internally; flipped to
	// clockwise at the very end.
	if k.Orient2D(p0, p1, p2) < 0 {
		i1, i2 = i2, i1
		p1, p2 = p2, p1
	}
	if k.Orient2D(p0, p1, p2) == 0 {
		return status.Status{Kind: status.DegenerateInput}
	}

	center, ok := k.CircumCenter(p0, p1, p2)
	if !ok {
		return status.Status{Kind: status.DegenerateInput}
	}

	ids := make([]int, 0, n-3)
	for i := 0; i < n; i++ {
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		ids = append(ids, i)
	}
	sort.Slice(ids, func(a, b int) bool {
		return k.Dist2(m.Positions[ids[a]], center) < k.Dist2(m.Positions[ids[b]], center)
	})

	h := newHull(k, n, center)
	h.start = i0
	h.next[i0], h.prev[i1] = i1, i0
	h.next[i1], h.prev[i2] = i2, i1
	h.next[i2], h.prev[i0] = i0, i2

	_, base0 := m.AddTriangle(i0, i1, i2)
	h.tri[i0], h.tri[i1], h.tri[i2] = base0, base0+1, base0+2
	h.rehash(i0, p0)
	h.rehash(i1, p1)
	h.rehash(i2, p2)

	maxTriangles := 2*n + 1
	stackCap := 3 * maxTriangles
	if stackCap > edgeStackCap {
		stackCap = edgeStackCap
	}
	b := &builder{m: m, h: h, k: k, stack: make([]int, 0, stackCap), stackCap: stackCap}

	for _, pointIdx := range ids {
		b.addPoint(pointIdx)
	}

	reverseOrientation(m)

	log.Debug("delaunay stage complete",
		zap.Int("vertices", n),
		zap.Int("triangles", m.NumTriangles()),
	)
	return status.OK()
}

func nearestTo(k arith.Kind, pts []arith.Vec, target arith.Vec, exclude1, exclude2 int) int {
	best := -1
	bestD := math.Inf(1)
	for i, p := range pts {
		if i == exclude1 || i == exclude2 {
			continue
		}
		d := k.Dist2(p, target)
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

func circumradius(a, b, c arith.Vec) float64 {
	dx1, dy1 := b.X-a.X, b.Y-a.Y
	dx2, dy2 := c.X-a.X, c.Y-a.Y
	d := 2 * (dx1*dy2 - dy1*dx2)
	if d == 0 {
		return math.Inf(1)
	}
	len1 := dx1*dx1 + dy1*dy1
	len2 := dx2*dx2 + dy2*dy2
	ux := (dy2*len1 - dy1*len2) / d
	uy := (dx1*len2 - dx2*len1) / d
	return ux*ux + uy*uy
}
