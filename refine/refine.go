// Package refine implements Ruppert refinement: inserting Steiner points
// until every constrained segment is unencroached and every triangle meets
// the requested area and minimum-angle bounds.
package refine

import (
	"math"

	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/status"
)

// Options configures the refinement loop.
type Options struct {
	// AreaMax bounds every output triangle's area.
	AreaMax float64
	// AngleMin bounds every output triangle's minimum interior angle, in
	// radians.
	AngleMin float64
	// ConstrainBoundary sets every outer (-1) halfedge to
	// ConstrainedAndHoleBoundary and every other halfedge to Unconstrained
	// before refining, for callers that skip Constrain/Plant and refine a
	// raw Delaunay hull directly.
	ConstrainBoundary bool
}

// shellR is the reference concentric-shell radius.
const shellR = 0.001

// state carries the mutable refinement bookkeeping threaded through the
// cavity-insertion helpers in cavity.go and split.go. Triangles are never
// physically removed mid-loop.
type state struct {
	m    *halfedge.Mesh
	k    arith.Kind
	dead []bool
	opts Options
	log  *zap.Logger
}

// Refine mutates m in place and returns the resulting status:
// IntegersDoNotSupportMeshRefinement if m.Kind cannot support it, otherwise
// status.OK once every constrained segment is unencroached and every live
// triangle satisfies the area/angle bounds.
func Refine(m *halfedge.Mesh, opts Options, log *zap.Logger) status.Status {
	if log == nil {
		log = zap.NewNop()
	}
	if !m.Kind.SupportsRefinement() {
		return status.Status{Kind: status.IntegersDoNotSupportMeshRefinement}
	}

	if opts.ConstrainBoundary {
		for h := range m.Halfedges {
			if m.Halfedges[h] == halfedge.NilHalfedge {
				m.Constrained[h] = halfedge.ConstrainedAndHoleBoundary
			} else {
				m.Constrained[h] = halfedge.Unconstrained
			}
		}
	}

	s := &state{
		m:    m,
		k:    m.Kind,
		dead: make([]bool, m.NumTriangles()),
		opts: opts,
		log:  log,
	}

	s.drainEncroached(s.collectEncroached())

	splits, circs := 0, 0
	for {
		bad := s.collectBad()
		if len(bad) == 0 {
			break
		}
		progressed := false
		for _, tri := range bad {
			if s.dead[tri] {
				continue
			}
			if !s.badTriangle(tri) {
				continue
			}
			n, c := s.tryInsertCircumcenter(tri)
			splits += n
			if c {
				circs++
			}
			progressed = true
		}
		if !progressed {
			break
		}
	}

	n := s.compact()
	log.Debug("refine stage complete",
		zap.Int("segmentSplits", splits),
		zap.Int("circumcenterInsertions", circs),
		zap.Int("trianglesRemoved", n),
		zap.Int("trianglesRemaining", m.NumTriangles()),
	)
	return status.OK()
}

// collectEncroached returns every constrained halfedge (one per edge, the
// lower-indexed of a twinned pair) that is currently encroached.
func (s *state) collectEncroached() []int {
	var out []int
	for h, c := range s.m.Constrained {
		if c == halfedge.Unconstrained {
			continue
		}
		twin := s.m.Halfedges[h]
		if twin != halfedge.NilHalfedge && twin < h {
			continue
		}
		if s.dead[halfedge.TriangleID(h)] {
			continue
		}
		if s.encroached(h) {
			out = append(out, h)
		}
	}
	return out
}

// drainEncroached splits every encroached segment in queue, requeuing any
// newly-encroached segments the split exposes, until none remain.
func (s *state) drainEncroached(queue []int) {
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if s.dead[halfedge.TriangleID(h)] || s.m.Constrained[h] == halfedge.Unconstrained {
			continue
		}
		if !s.encroached(h) {
			continue
		}
		fresh := s.splitSegment(h)
		queue = append(queue, fresh...)
	}
}

// encroached implements: a constrained halfedge with endpoints a, b is
// encroached iff the apex of either adjacent (live) triangle lies in its
// diametral circle: (a-c)·(b-c) ≤ 0.
func (s *state) encroached(h int) bool {
	a := s.m.Positions[s.m.OriginVertex(h)]
	b := s.m.Positions[s.m.DestVertex(h)]
	if s.encroachedBy(a, b, s.m.Positions[s.m.ApexVertex(h)]) {
		return true
	}
	if twin := s.m.Halfedges[h]; twin != halfedge.NilHalfedge && !s.dead[halfedge.TriangleID(twin)] {
		if s.encroachedBy(a, b, s.m.Positions[s.m.ApexVertex(twin)]) {
			return true
		}
	}
	return false
}

func (s *state) encroachedBy(a, b, c arith.Vec) bool {
	return s.k.Dot(a.Sub(c), b.Sub(c)) <= 0
}

// collectBad returns every live triangle currently failing the area or
// minimum-angle bound.
func (s *state) collectBad() []int {
	var out []int
	for tri := 0; tri < s.m.NumTriangles(); tri++ {
		if s.dead[tri] {
			continue
		}
		if s.badTriangle(tri) {
			out = append(out, tri)
		}
	}
	return out
}

// badTriangle implements: 2·area > 2·Amax, or the minimum interior angle is
// below AngleMin (tested via the maximum of the three per-vertex cosines
// against cos(AngleMin), since cosine is decreasing on [0, π]).
func (s *state) badTriangle(tri int) bool {
	a, b, c := s.m.TrianglePoints(tri)
	if doubleArea(a, b, c) > 2*s.opts.AreaMax {
		return true
	}
	return s.maxCos(a, b, c) > s.k.Cos(s.opts.AngleMin)
}

func doubleArea(a, b, c arith.Vec) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return math.Abs(ab.X*ac.Y - ab.Y*ac.X)
}

func (s *state) maxCos(a, b, c arith.Vec) float64 {
	cosAt := func(v, p, q arith.Vec) float64 {
		vp, vq := p.Sub(v), q.Sub(v)
		denom := math.Sqrt(s.k.Len2(vp) * s.k.Len2(vq))
		if denom == 0 {
			return 1 // degenerate triangle: treat as the sharpest possible angle
		}
		return s.k.Dot(vp, vq) / denom
	}
	return math.Max(cosAt(a, b, c), math.Max(cosAt(b, a, c), cosAt(c, a, b)))
}
