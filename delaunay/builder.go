package delaunay

import (
	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
)

// builder holds the mutable state of one incremental construction: the mesh
// being grown, the hull, and the bounded legalize stack.
type builder struct {
	m        *halfedge.Mesh
	h        *hull
	k        arith.Kind
	stack    []int
	stackCap int
}

func (b *builder) link(a, twin int) {
	b.m.Halfedges[a] = twin
	if twin != -1 {
		b.m.Halfedges[twin] = a
	}
}

// addTriangle creates one new CCW-wound triangle (i0,i1,i2) whose three
// edges are linked to the given (possibly -1) twin halfedges.
func (b *builder) addTriangle(i0, i1, i2, twinA, twinB, twinC int) int {
	_, base := b.m.AddTriangle(i0, i1, i2)
	b.link(base, twinA)
	b.link(base+1, twinB)
	b.link(base+2, twinC)
	return base
}

// visible reports whether the directed hull edge (u -> v) is visible from
// external point p: p lies on or to the clockwise side of the edge (p is
// not strictly to the CCW-interior side).
func (b *builder) visible(u, v, p arith.Vec) bool {
	return b.k.Orient2D(u, v, p) <= 0
}

// addPoint inserts vertex pointIdx via the hull-walk + fan + legalize
// procedure.
func (b *builder) addPoint(pointIdx int) {
	p := b.m.Positions[pointIdx]
	h := b.h

	seed := h.findSeedVertex(p)
	start := h.prev[seed]

	e := start
	for {
		q := h.next[e]
		if b.visible(b.m.Positions[e], b.m.Positions[q], p) {
			break
		}
		e = q
		if e == start {
			// The point is not outside the current hull; this should not happen for
			// valid, non-duplicate input processed in the sorted order step; skip
			// defensively.
			return
		}
	}
	q := h.next[e]

	t := b.addTriangle(e, pointIdx, q, -1, -1, h.tri[e])
	h.tri[pointIdx] = b.legalize(t + 2)
	h.tri[e] = t

	// Walk forward, fanning while the next hull edge is still visible.
	n := h.next[e]
	for {
		q2 := h.next[n]
		if !b.visible(b.m.Positions[n], b.m.Positions[q2], p) {
			break
		}
		t = b.addTriangle(n, pointIdx, q2, h.tri[pointIdx], -1, h.tri[n])
		h.tri[pointIdx] = b.legalize(t + 2)
		h.next[n] = n // soft delete
		n = q2
	}

	// Walk backward from the start edge if the first visible edge found was
	// the start edge itself, so visible edges may also lie behind it.
	if e == start {
		for {
			q2 := h.prev[e]
			if !b.visible(b.m.Positions[q2], b.m.Positions[e], p) {
				break
			}
			t = b.addTriangle(q2, pointIdx, e, -1, h.tri[e], h.tri[q2])
			b.legalize(t + 2)
			h.tri[q2] = t
			h.next[e] = e // soft delete
			e = q2
		}
	}

	h.start = e
	h.prev[pointIdx] = e
	h.next[e] = pointIdx
	h.prev[n] = pointIdx
	h.next[pointIdx] = n

	h.rehash(pointIdx, p)
	h.rehash(e, b.m.Positions[e])
}

// legalize flips edge a (and recursively the edges it exposes) while the
// opposite triangle's apex lies inside the circumcircle, using an explicit
// bounded stack instead of recursion.
func (b *builder) legalize(a int) int {
	m := b.m
	b.stack = b.stack[:0]
	ar := a

	for {
		twin := m.Halfedges[a]
		a0 := a - a%3
		ar = a0 + (a+2)%3

		if twin == -1 {
			if len(b.stack) == 0 {
				break
			}
			a = b.stack[len(b.stack)-1]
			b.stack = b.stack[:len(b.stack)-1]
			continue
		}

		b0 := twin - twin%3
		al := a0 + (a+1)%3
		bl := b0 + (twin+2)%3

		p0 := m.Triangles[ar]
		pr := m.Triangles[a]
		pl := m.Triangles[al]
		p1 := m.Triangles[bl]

		illegal := b.k.InCircle(m.Positions[p0], m.Positions[pr], m.Positions[pl], m.Positions[p1]) > 0

		if illegal {
			m.Triangles[a] = p1
			m.Triangles[twin] = p0

			hbl := m.Halfedges[bl]
			if hbl == -1 {
				e := b.h.start
				for {
					if b.h.tri[e] == bl {
						b.h.tri[e] = a
						break
					}
					e = b.h.prev[e]
					if e == b.h.start {
						break
					}
				}
			}
			b.link(a, hbl)
			b.link(twin, m.Halfedges[ar])
			b.link(ar, bl)

			br := b0 + (twin+1)%3
			if len(b.stack) < b.stackCap {
				b.stack = append(b.stack, br)
			}
		} else {
			if len(b.stack) == 0 {
				break
			}
			a = b.stack[len(b.stack)-1]
			b.stack = b.stack[:len(b.stack)-1]
		}
	}

	return ar
}

// reverseOrientation flips every triangle's winding from the internal
// counter-clockwise construction to the clockwise convention requires.
// Reversing a triangle's 3-slot array is equivalent to a rotation (same
// cyclic order starting from a different vertex) composed with one mirror,
// so it is enough to reverse slot order and remap twin references through
// the same global permutation π(h) = 3*(h/3) + (2 - h%3); see DESIGN.md for
// the derivation.
func reverseOrientation(m *halfedge.Mesh) {
	pi := func(h int) int {
		if h == -1 {
			return -1
		}
		return 3*(h/3) + (2 - h%3)
	}

	oldTriangles := append([]int(nil), m.Triangles...)
	oldHalfedges := append([]int(nil), m.Halfedges...)
	oldConstrained := append([]halfedge.ConstraintState(nil), m.Constrained...)

	for h := 0; h < len(oldTriangles); h++ {
		nh := pi(h)
		m.Triangles[nh] = oldTriangles[halfedge.Next(h)]
		m.Halfedges[nh] = pi(oldHalfedges[h])
		m.Constrained[nh] = oldConstrained[h]
	}
}
