package sloan

import (
	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/status"
)

// Constrain forces every requested constraint edge into m. pairs is a flat
// array of vertex index pairs; kinds holds one requested ConstraintState per
// pair. maxIters bounds the per-constraint flip- resolution loop (one unit
// per full resolved/unresolved pass); exceeding it yields
// status.SloanMaxItersExceeded and aborts with whatever was already built in
// place, testable property 5.
func Constrain(m *halfedge.Mesh, pairs []int, kinds []halfedge.ConstraintState, maxIters int, log *zap.Logger) status.Status {
	if log == nil {
		log = zap.NewNop()
	}
	hints := make([]int, len(m.Positions))
	for h, v := range m.Triangles {
		hints[v] = h
	}

	n := len(pairs) / 2
	for i := 0; i < n; i++ {
		u, v := pairs[2*i], pairs[2*i+1]
		if u > v {
			u, v = v, u // canonical ordering: smaller endpoint first
		}
		if st := insertOne(m, hints, u, v, kinds[i], maxIters, i); st.IsError() {
			return st
		}
	}

	log.Debug("constrain stage complete", zap.Int("constraints", n))
	return status.OK()
}

// insertOne makes the mesh contain edge (u, v) marked at least want, per the
// per-constraint state machine: Walking (one-ring scan for the first crossed
// triangle) -> Tunneled (tunnel collected) -> Resolving (flip loop) -> Done,
// or Split (a vertex sits exactly on uv; recurse on the two subconstraints),
// or Error. The states are expressed through this call structure rather than
// an explicit state value.
func insertOne(m *halfedge.Mesh, hints []int, u, v int, want halfedge.ConstraintState, maxIters, constraintIdx int) status.Status {
	if h, ok := findDirectEdge(m, hints, u, v); ok {
		upgrade(m, h, want)
		return status.OK()
	}

	tunnel, splitVertex, st := walkTunnel(m, hints, u, v)
	if st.IsError() {
		return st
	}
	if splitVertex != -1 {
		if st := insertOne(m, hints, u, splitVertex, want, maxIters, constraintIdx); st.IsError() {
			return st
		}
		return insertOne(m, hints, splitVertex, v, want, maxIters, constraintIdx)
	}

	if st := resolveTunnel(m, u, v, tunnel, maxIters, constraintIdx); st.IsError() {
		return st
	}

	h, ok := findDirectEdge(m, hints, u, v)
	if !ok {
		// The flip loop is supposed to leave a direct edge between the two
		// endpoints once every intersecting halfedge is resolved; reaching
		// here means the input geometry defeated that guarantee.
		return status.Status{Kind: status.DegenerateInput}
	}
	upgrade(m, h, want)
	return status.OK()
}

// walkTunnel finds the ordered list of halfedges the open segment (u, v)
// crosses, starting from u's one-ring. If a live vertex lies exactly on uv
// before v is reached, it returns that vertex as splitVertex instead.
func walkTunnel(m *halfedge.Mesh, hints []int, u, v int) (tunnel []int, splitVertex int, st status.Status) {
	k := m.Kind
	pu, pv := m.Positions[u], m.Positions[v]

	start := halfedge.NilHalfedge
	for _, h := range outgoingFrom(m, hints, u) {
		w := m.DestVertex(h)
		pw := m.Positions[w]
		if w != v && pointOnSegment(k, pu, pv, pw) {
			return nil, w, status.OK()
		}
		far := halfedge.Next(h)
		apex := m.Triangles[halfedge.Next(far)]
		pApex := m.Positions[apex]
		if apex != v && pointOnSegment(k, pu, pv, pApex) {
			return nil, apex, status.OK()
		}
		if segmentsProperlyIntersect(k, pu, pv, pw, pApex) {
			start = far
			break
		}
	}
	if start == halfedge.NilHalfedge {
		return nil, -1, status.Status{Kind: status.DegenerateInput}
	}

	tunnel = append(tunnel, start)
	entry := m.Halfedges[start]
	walkCap := 3*m.NumTriangles() + 8
	for i := 0; i < walkCap; i++ {
		if entry == halfedge.NilHalfedge {
			return nil, -1, status.Status{Kind: status.DegenerateInput}
		}
		apex2 := m.Triangles[halfedge.Prev(entry)]
		if apex2 == v {
			return tunnel, -1, status.OK()
		}
		pApex2 := m.Positions[apex2]
		if pointOnSegment(k, pu, pv, pApex2) {
			return nil, apex2, status.OK()
		}

		nextH := halfedge.Next(entry)
		pw := m.Positions[m.Triangles[nextH]]
		if segmentsProperlyIntersect(k, pu, pv, pw, pApex2) {
			tunnel = append(tunnel, nextH)
			entry = m.Halfedges[nextH]
			continue
		}
		prevH := halfedge.Prev(entry)
		po := m.Positions[m.Triangles[prevH]]
		if segmentsProperlyIntersect(k, pu, pv, po, pApex2) {
			tunnel = append(tunnel, prevH)
			entry = m.Halfedges[prevH]
			continue
		}
		return nil, -1, status.Status{Kind: status.DegenerateInput}
	}
	return nil, -1, status.Status{Kind: status.DegenerateInput}
}

// resolveTunnel repeatedly flips every tunnel halfedge whose adjacent
// quadrilateral is strictly convex, requeuing the freshly exposed diagonal
// whenever it still crosses (u, v), until the unresolved list is empty.
func resolveTunnel(m *halfedge.Mesh, u, v int, tunnel []int, maxIters, constraintIdx int) status.Status {
	k := m.Kind
	pu, pv := m.Positions[u], m.Positions[v]
	unresolved := tunnel
	iters := 0

	for len(unresolved) > 0 {
		iters++
		if iters > maxIters {
			return status.Status{Kind: status.SloanMaxItersExceeded, Index: constraintIdx, Count: maxIters}
		}

		var next []int
		for _, ch := range unresolved {
			twin := m.Halfedges[ch]
			if twin == halfedge.NilHalfedge {
				continue
			}

			o := m.Triangles[ch]
			d := m.Triangles[halfedge.Next(ch)]
			apexA := m.Triangles[halfedge.Prev(ch)]
			apexB := m.Triangles[halfedge.Prev(twin)]

			// Quad boundary order matches halfedge.Mesh.FlipEdge's doc: d,
			// apexA, o, apexB.
			if !convexQuad(k, m.Positions[d], m.Positions[apexA], m.Positions[o], m.Positions[apexB]) {
				next = append(next, ch)
				continue
			}

			newDiag := m.FlipEdge(ch)
			na, nb := m.Triangles[newDiag], m.Triangles[halfedge.Next(newDiag)]
			if segmentsProperlyIntersect(k, pu, pv, m.Positions[na], m.Positions[nb]) {
				next = append(next, newDiag)
			}
		}
		unresolved = next
	}
	return status.OK()
}

// outgoingFrom returns every outgoing halfedge of v, refreshing the point-
// to-halfedge map when its cached entry has gone stale across a flip.
func outgoingFrom(m *halfedge.Mesh, hints []int, v int) []int {
	h := hints[v]
	if h < 0 || h >= len(m.Triangles) || m.Triangles[h] != v {
		h = scanForOrigin(m, v)
		hints[v] = h
	}
	out := m.OutgoingHalfedges(h)
	if len(out) > 0 {
		hints[v] = out[0]
	}
	return out
}

func scanForOrigin(m *halfedge.Mesh, v int) int {
	for h, o := range m.Triangles {
		if o == v {
			return h
		}
	}
	return halfedge.NilHalfedge
}

// findDirectEdge reports whether some halfedge already connects u and v,
// checking both directions: an unshared (boundary) edge is only recorded
// as a halfedge in whichever direction its owning triangle happens to
// traverse it, so the edge between u and v may only appear as v's outgoing
// halfedge to u rather than u's to v.
func findDirectEdge(m *halfedge.Mesh, hints []int, u, v int) (int, bool) {
	for _, h := range outgoingFrom(m, hints, u) {
		if m.DestVertex(h) == v {
			return h, true
		}
	}
	for _, h := range outgoingFrom(m, hints, v) {
		if m.DestVertex(h) == u {
			return h, true
		}
	}
	return -1, false
}

func upgrade(m *halfedge.Mesh, h int, want halfedge.ConstraintState) {
	merged := halfedge.Max(m.Constrained[h], want)
	m.Constrained[h] = merged
	if t := m.Halfedges[h]; t != halfedge.NilHalfedge {
		m.Constrained[t] = merged
	}
}
