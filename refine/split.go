package refine

import (
	"math"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
)

// splitSegment implements concentric-shell segment splitting. h names a
// constrained halfedge; splitSegment inserts one Steiner point on it,
// retriangulates the 1-2 triangles it borders, and returns the constrained
// halfedges of the newly created triangles so the caller can recheck them
// for encroachment.
func (s *state) splitSegment(h int) []int {
	m := s.m
	a, b := m.OriginVertex(h), m.DestVertex(h)
	state := m.Constrained[h]
	originA, originB := m.VertexOrigin[a], m.VertexOrigin[b]
	posA, posB := m.Positions[a], m.Positions[b]

	var p arith.Vec
	if originA == originB {
		p = s.k.Lerp(posA, posB, 0.5)
	} else {
		inputEnd, steinerEnd := posA, posB
		if originA != halfedge.Input {
			inputEnd, steinerEnd = posB, posA
		}
		d := math.Sqrt(s.k.Dist2(inputEnd, steinerEnd))
		alpha, ok := s.k.Alpha(shellR, d)
		if !ok {
			alpha = 0.5
		}
		p = s.k.Lerp(inputEnd, steinerEnd, alpha)
	}

	seeds := []int{halfedge.TriangleID(h)}
	if twin := m.Halfedges[h]; twin != halfedge.NilHalfedge {
		seeds = append(seeds, halfedge.TriangleID(twin))
	}
	cavity := make(map[int]bool, len(seeds))
	for _, t := range seeds {
		cavity[t] = true
	}

	pNew := m.AddVertex(p, halfedge.Steiner)
	chain, closed := orderRim(collectRimExcluding(m, cavity, a, b))
	newBases := s.buildFanFromChain(cavity, chain, closed, pNew, &[2]int{a, b}, state)

	var fresh []int
	for _, base := range newBases {
		for i := 0; i < 3; i++ {
			he := base + i
			if m.Constrained[he] != halfedge.Unconstrained {
				fresh = append(fresh, he)
			}
		}
	}
	return fresh
}

// tryInsertCircumcenter implements bad-triangle phase: grow a Bowyer-Watson
// cavity around tri's circumcenter and insert it, unless doing so would
// encroach a constrained edge on the cavity's rim, in which case those edges
// are queued for splitting instead and tri is left for the next pass of the
// outer loop.
func (s *state) tryInsertCircumcenter(tri int) (splits int, inserted bool) {
	a, b, c := s.m.TrianglePoints(tri)
	p, ok := s.k.CircumCenter(a, b, c)
	if !ok || !s.k.IsFinite(p) {
		return 0, false
	}

	cavity := s.growCavity([]int{tri}, p)
	rim := collectRim(s.m, cavity)
	var encroachedEdges []int
	for _, e := range rim {
		if e.state == halfedge.Unconstrained {
			continue
		}
		if s.encroachedBy(s.m.Positions[e.u], s.m.Positions[e.v], p) {
			encroachedEdges = append(encroachedEdges, e.innerH)
		}
	}
	if len(encroachedEdges) > 0 {
		// Split these directly: drainEncroached would re-test them against
		// their apexes only and skip edges that only p encroaches.
		for _, h := range encroachedEdges {
			if s.dead[halfedge.TriangleID(h)] {
				continue // already replaced by an earlier split in this loop
			}
			s.drainEncroached(s.splitSegment(h))
			splits++
		}
		return splits, false
	}

	pNew := s.m.AddVertex(p, halfedge.Steiner)
	s.fanCavity(cavity, pNew)
	return 0, true
}

// compact rewrites m's three parallel arrays to drop every tombstoned
// triangle, remapping surviving halfedges' twins through the new triangle
// numbering. Mirrors plant.compact's index-remap rule; refine cannot import
// plant's unexported helper directly, and the array shapes it walks (dead
// instead of removed) differ enough that sharing code isn't worth an
// exported seam for a handful of lines.
func (s *state) compact() int {
	m := s.m
	oldT := m.NumTriangles()
	indexRemap := make([]int, oldT)
	kept := 0
	for tri := 0; tri < oldT; tri++ {
		if s.dead[tri] {
			indexRemap[tri] = -1
			continue
		}
		indexRemap[tri] = kept
		kept++
	}

	newTriangles := make([]int, 0, kept*3)
	newHalfedges := make([]int, 0, kept*3)
	newConstrained := make([]halfedge.ConstraintState, 0, kept*3)

	removed := 0
	for tri := 0; tri < oldT; tri++ {
		if s.dead[tri] {
			removed++
			continue
		}
		base := 3 * tri
		for i := 0; i < 3; i++ {
			h := base + i
			newTriangles = append(newTriangles, m.Triangles[h])
			newConstrained = append(newConstrained, m.Constrained[h])

			twin := m.Halfedges[h]
			if twin == halfedge.NilHalfedge || s.dead[halfedge.TriangleID(twin)] {
				newHalfedges = append(newHalfedges, halfedge.NilHalfedge)
				continue
			}
			newHalfedges = append(newHalfedges, 3*indexRemap[halfedge.TriangleID(twin)]+twin%3)
		}
	}

	m.Triangles = newTriangles
	m.Halfedges = newHalfedges
	m.Constrained = newConstrained
	return removed
}
