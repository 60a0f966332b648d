package refine

import (
	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
)

// rimEdge is one edge of a cavity's boundary loop: the existing edge (u, v)
// that will become one side of a new fan triangle (u, v, p). innerH is the
// halfedge of the (about-to-be-removed) cavity triangle that carried it,
// kept around so an aborted insertion can still report which live mesh edge
// to split.
type rimEdge struct {
	u, v      int
	outerTwin int
	state     halfedge.ConstraintState
	innerH    int
}

// collectRim gathers, for the triangle set cavity, every one of its
// halfedges whose twin lies outside the set (or does not exist), i.e. the
// boundary loop retriangulates from. Edges whose twin is also in cavity are
// purely internal and are dropped entirely.
func collectRim(m *halfedge.Mesh, cavity map[int]bool) []rimEdge {
	var out []rimEdge
	for tri := range cavity {
		base := 3 * tri
		for i := 0; i < 3; i++ {
			h := base + i
			twin := m.Halfedges[h]
			if twin != halfedge.NilHalfedge && cavity[halfedge.TriangleID(twin)] {
				continue
			}
			out = append(out, rimEdge{
				u:         m.OriginVertex(h),
				v:         m.DestVertex(h),
				outerTwin: twin,
				state:     m.Constrained[h],
				innerH:    h,
			})
		}
	}
	return out
}

// collectRimExcluding is collectRim with the single halfedge being split (in
// either direction) dropped from the result. Without this, a cavity that is
// a single triangle whose own split edge has no twin (a boundary constraint,
// not an internal one) would have collectRim keep that edge as an ordinary
// rim edge - indistinguishable from its other two sides - and the fan would
// wrongly recreate the very edge the split is meant to replace.
func collectRimExcluding(m *halfedge.Mesh, cavity map[int]bool, a, b int) []rimEdge {
	all := collectRim(m, cavity)
	out := all[:0]
	for _, e := range all {
		if (e.u == a && e.v == b) || (e.u == b && e.v == a) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// orderRim chains unordered rim edges into a single walk by origin vertex,
// returning closed=true if it forms a cycle (interior "star polygon" cavity,
// ) or closed=false if it is a single open path (an "amphitheater" cavity
// touching the true mesh boundary or a constrained edge being split).
// Assumes a simple, non-self-intersecting cavity boundary: each vertex has
// at most one outgoing rim edge.
func orderRim(edges []rimEdge) (chain []rimEdge, closed bool) {
	byOrigin := make(map[int]rimEdge, len(edges))
	hasIncoming := make(map[int]bool, len(edges))
	for _, e := range edges {
		byOrigin[e.u] = e
	}
	for _, e := range edges {
		hasIncoming[e.v] = true
	}
	start := -1
	for _, e := range edges {
		if !hasIncoming[e.u] {
			start = e.u
			break
		}
	}
	closed = start == -1
	if closed {
		start = edges[0].u
	}
	cur := start
	for i := 0; i < len(edges); i++ {
		e, ok := byOrigin[cur]
		if !ok {
			break
		}
		chain = append(chain, e)
		cur = e.v
	}
	return chain, closed
}

// fanCavity kills every triangle in cavity and replaces its boundary loop
// with new triangles fanned from the freshly inserted vertex pNew,
// "retriangulate by fanning from the new point to the ordered boundary
// loop". Used for plain circumcenter insertion, where the rim is whatever
// collectRim finds with no exclusions.
func (s *state) fanCavity(cavity map[int]bool, pNew int) []int {
	chain, closed := orderRim(collectRim(s.m, cavity))
	return s.buildFanFromChain(cavity, chain, closed, pNew, nil, halfedge.Unconstrained)
}

// buildFanFromChain is fanCavity's core: given an already-ordered rim chain,
// create one new triangle (u, v, pNew) per rim edge, twin the spokes between
// consecutive triangles, and tombstone every triangle in cavity. If
// collinearWith is non-nil, it names the two endpoints of a constrained
// segment being split at pNew; whichever new spokes are collinear with it
// (its "toward a" and "toward b" spokes in the closed case, or the chain's
// two open ends in the open case) are marked collinearState instead of
// Unconstrained,: "mark the two new halfedges collinear with the split
// segment as Constrained".
func (s *state) buildFanFromChain(cavity map[int]bool, chain []rimEdge, closed bool, pNew int, collinearWith *[2]int, collinearState halfedge.ConstraintState) []int {
	n := len(chain)
	if n == 0 {
		return nil
	}

	newBase := make([]int, n)
	for i, e := range chain {
		_, base := s.m.AddTriangle(e.u, e.v, pNew)
		newBase[i] = base
		s.dead = append(s.dead, false)

		s.m.Constrained[base+0] = e.state
		if e.outerTwin != halfedge.NilHalfedge {
			s.m.Halfedges[base+0] = e.outerTwin
			s.m.Halfedges[e.outerTwin] = base + 0
		}
	}

	for i := 0; i < n; i++ {
		j := i + 1
		if j == n {
			if !closed {
				break
			}
			j = 0
		}
		spokeOut := newBase[i] + 1 // v_i -> p
		spokeIn := newBase[j] + 2  // p -> u_j (u_j == v_i)
		s.m.Halfedges[spokeOut] = spokeIn
		s.m.Halfedges[spokeIn] = spokeOut
	}

	if collinearWith != nil {
		a, b := collinearWith[0], collinearWith[1]
		if closed {
			for i, e := range chain {
				if e.v == a || e.v == b {
					spoke := newBase[i] + 1
					twin := s.m.Halfedges[spoke]
					s.m.Constrained[spoke] = collinearState
					s.m.Constrained[twin] = collinearState
				}
			}
		} else {
			first, last := newBase[0]+2, newBase[n-1]+1
			s.m.Constrained[first] = collinearState
			s.m.Constrained[last] = collinearState
		}
	}

	for tri := range cavity {
		s.dead[tri] = true
	}
	return newBase
}

// ccwInCircle reports whether p lies strictly inside the circumcircle of the
// clockwise triangle (a,b,c), swapping to (a,c,b) so arith.Kind.InCircle's
// counter-clockwise assumption holds.
func (s *state) ccwInCircle(a, b, c, p arith.Vec) bool {
	return s.k.InCircle(a, c, b, p) > 0
}

// growCavity floods from seed triangles, collecting every live triangle
// reachable without crossing a constrained halfedge whose circumcircle
// contains p, Bowyer-Watson cavity. Seeds are always included without the
// in-circle test (the caller passes the seed's own circumcenter as p).
func (s *state) growCavity(seeds []int, p arith.Vec) map[int]bool {
	cavity := make(map[int]bool, len(seeds))
	queue := append([]int(nil), seeds...)
	for _, t := range seeds {
		cavity[t] = true
	}
	for len(queue) > 0 {
		tri := queue[0]
		queue = queue[1:]
		base := 3 * tri
		for i := 0; i < 3; i++ {
			h := base + i
			if s.m.Constrained[h] != halfedge.Unconstrained {
				continue
			}
			twin := s.m.Halfedges[h]
			if twin == halfedge.NilHalfedge {
				continue
			}
			nt := halfedge.TriangleID(twin)
			if cavity[nt] || s.dead[nt] {
				continue
			}
			a, b, c := s.m.TrianglePoints(nt)
			if s.ccwInCircle(a, b, c, p) {
				cavity[nt] = true
				queue = append(queue, nt)
			}
		}
	}
	return cavity
}
