// Package halfedge implements the mesh data model: a Delaunay/constrained
// triangulation represented as three parallel, halfedge-indexed arrays plus
// a position array. All "neighbor" operations become integer arithmetic
// (Next/Prev) plus one slice indirection.
package halfedge

import "github.com/trimesh2d/cdt/arith"

// NilHalfedge marks a halfedge with no twin (the outer boundary).
const NilHalfedge = -1

// ConstraintState is the per-halfedge constraint marking. Twins always
// agree.
type ConstraintState uint8

const (
	// Unconstrained is an ordinary Delaunay edge, free to flip.
	Unconstrained ConstraintState = iota
	// Constrained must remain in the mesh; it may still separate two
	// triangles that are both kept in the output.
	Constrained
	// ConstrainedAndHoleBoundary additionally acts as a flood-fill stopper
	// for the Plant stage and, when requested, for boundary constraining
	// during Refine.
	ConstrainedAndHoleBoundary
)

// Max returns the dominant of two constraint states.
func Max(a, b ConstraintState) ConstraintState {
	if a > b {
		return a
	}
	return b
}

// Mesh is the shared, mutable halfedge triangulation. Triangle t owns
// halfedges 3t, 3t+1, 3t+2, walked clockwise.
type Mesh struct {
	Kind arith.Kind

	// Triangles[h] is the origin vertex of halfedge h.
	Triangles []int
	// Halfedges[h] is the twin of h, or NilHalfedge on the outer boundary.
	Halfedges []int
	// Constrained[h] is the constraint marking of h; Constrained[h] ==
	// Constrained[Halfedges[h]] whenever Halfedges[h] != NilHalfedge.
	Constrained []ConstraintState
	// Positions[v] is the coordinate of vertex v. Grows during Refine.
	Positions []arith.Vec

	// VertexOrigin[v] records whether v came from the input or was introduced
	// by Ruppert refinement.
	VertexOrigin []VertexOrigin
}

// VertexOrigin distinguishes input vertices from Steiner points.
type VertexOrigin uint8

const (
	// Input marks a vertex present in the original point set.
	Input VertexOrigin = iota
	// Steiner marks a vertex introduced by Ruppert refinement.
	Steiner
)

// New creates an empty mesh over the given arithmetic capability and
// initial positions. Halfedge arrays are empty until Delaunay construction
// populates them.
func New(kind arith.Kind, positions []arith.Vec) *Mesh {
	origin := make([]VertexOrigin, len(positions))
	return &Mesh{
		Kind:         kind,
		Positions:    append([]arith.Vec(nil), positions...),
		VertexOrigin: origin,
	}
}

// NumTriangles returns the current triangle count T = len(Triangles)/3.
func (m *Mesh) NumTriangles() int { return len(m.Triangles) / 3 }

// Next returns the next halfedge around triangle t((h)/3) in clockwise
// order: h -> next(h) -> next(next(h)) -> h.
func Next(h int) int {
	if h%3 == 2 {
		return h - 2
	}
	return h + 1
}

// Prev returns the previous halfedge around the same triangle.
func Prev(h int) int {
	if h%3 == 0 {
		return h + 2
	}
	return h - 1
}

// TriangleID returns the triangle index that owns halfedge h.
func TriangleID(h int) int { return h / 3 }

// OriginVertex returns the origin vertex of halfedge h.
func (m *Mesh) OriginVertex(h int) int { return m.Triangles[h] }

// DestVertex returns the destination vertex of halfedge h (the origin of
// Next(h)).
func (m *Mesh) DestVertex(h int) int { return m.Triangles[Next(h)] }

// ApexVertex returns the vertex opposite halfedge h within its triangle.
func (m *Mesh) ApexVertex(h int) int { return m.Triangles[Prev(h)] }

// TriangleVertices returns the three vertex indices of triangle t in
// clockwise order.
func (m *Mesh) TriangleVertices(t int) (int, int, int) {
	h := 3 * t
	return m.Triangles[h], m.Triangles[h+1], m.Triangles[h+2]
}

// TrianglePoints returns the three coordinates of triangle t.
func (m *Mesh) TrianglePoints(t int) (arith.Vec, arith.Vec, arith.Vec) {
	v0, v1, v2 := m.TriangleVertices(t)
	return m.Positions[v0], m.Positions[v1], m.Positions[v2]
}

// Twin is a convenience accessor for Halfedges[h].
func (m *Mesh) Twin(h int) int { return m.Halfedges[h] }

// SetTwins links h and h2 as mutual twins. Pass NilHalfedge for h2 to mark
// h as a boundary halfedge.
func (m *Mesh) SetTwins(h, h2 int) {
	m.Halfedges[h] = h2
	if h2 != NilHalfedge {
		m.Halfedges[h2] = h
	}
}

// AddVertex appends a new vertex (used by Refine to insert Steiner
// points) and returns its index.
func (m *Mesh) AddVertex(p arith.Vec, origin VertexOrigin) int {
	m.Positions = append(m.Positions, p)
	m.VertexOrigin = append(m.VertexOrigin, origin)
	return len(m.Positions) - 1
}

// AddTriangle appends one new triangle (three new halfedges) with the
// given vertex indices, in the order given (caller is responsible for
// clockwise orientation), and returns the new triangle's id and its base
// halfedge index (3*t).
func (m *Mesh) AddTriangle(v0, v1, v2 int) (tri int, base int) {
	base = len(m.Triangles)
	m.Triangles = append(m.Triangles, v0, v1, v2)
	m.Halfedges = append(m.Halfedges, NilHalfedge, NilHalfedge, NilHalfedge)
	m.Constrained = append(m.Constrained, Unconstrained, Unconstrained, Unconstrained)
	return base / 3, base
}

// OutgoingHalfedges returns every halfedge whose origin is v, walking the
// one-ring around v starting from startHint (any halfedge already known to
// have origin v; the caller usually has one on hand from whatever found v).
// The walk rotates by twin(prev(h)) to reach the next outgoing halfedge in
// clockwise order; it stops when it returns to startHint (v is an interior
// vertex, full ring) or when it falls off the mesh boundary (v is a hull
// vertex, partial fan) and then finishes the fan by rotating the other way
// from startHint with next(twin(h)).
func (m *Mesh) OutgoingHalfedges(startHint int) []int {
	var out []int

	h := startHint
	for {
		out = append(out, h)
		twin := m.Halfedges[Prev(h)]
		if twin == NilHalfedge {
			break
		}
		h = twin
		if h == startHint {
			return out
		}
	}

	h = m.Halfedges[startHint]
	for h != NilHalfedge {
		h = Next(h)
		out = append(out, h)
		h = m.Halfedges[h]
	}

	return out
}

// FlipEdge replaces the shared diagonal of the two triangles adjacent to
// halfedge h with the other diagonal of the quadrilateral they form. The
// two triangles are rewritten in place rather than deleted and re-added, and
// every outer edge's far twin pointer is repointed at its edge's new local
// halfedge index since that index changes even though the edge itself does
// not move. h must not be a boundary halfedge (Halfedges[h] != NilHalfedge).
// Returns the halfedge of the new diagonal, directed apex(h) -> apex(twin).
func (m *Mesh) FlipEdge(h int) int {
	t := m.Halfedges[h]
	hA := h - h%3
	hB := t - t%3
	nh, ph := Next(h), Prev(h)
	nt, pt := Next(t), Prev(t)

	o := m.Triangles[h]
	d := m.Triangles[nh]
	apexA := m.Triangles[ph]
	apexB := m.Triangles[pt]

	twinNH, twinPH := m.Halfedges[nh], m.Halfedges[ph]
	twinNT, twinPT := m.Halfedges[nt], m.Halfedges[pt]
	cNH, cPH := m.Constrained[nh], m.Constrained[ph]
	cNT, cPT := m.Constrained[nt], m.Constrained[pt]

	// new triangle A = (apexA, apexB, d)
	m.Triangles[hA+0] = apexA
	m.Triangles[hA+1] = apexB
	m.Triangles[hA+2] = d
	// new triangle B = (apexB, apexA, o)
	m.Triangles[hB+0] = apexB
	m.Triangles[hB+1] = apexA
	m.Triangles[hB+2] = o

	m.Halfedges[hA+0] = hB + 0
	m.Halfedges[hB+0] = hA + 0
	m.Constrained[hA+0] = Unconstrained
	m.Constrained[hB+0] = Unconstrained

	m.Halfedges[hA+1] = twinPT
	m.Constrained[hA+1] = cPT
	if twinPT != NilHalfedge {
		m.Halfedges[twinPT] = hA + 1
	}

	m.Halfedges[hA+2] = twinNH
	m.Constrained[hA+2] = cNH
	if twinNH != NilHalfedge {
		m.Halfedges[twinNH] = hA + 2
	}

	m.Halfedges[hB+1] = twinPH
	m.Constrained[hB+1] = cPH
	if twinPH != NilHalfedge {
		m.Halfedges[twinPH] = hB + 1
	}

	m.Halfedges[hB+2] = twinNT
	m.Constrained[hB+2] = cNT
	if twinNT != NilHalfedge {
		m.Halfedges[twinNT] = hB + 2
	}

	return hA
}

// CheckInvariants validates the universal mesh invariants: twin pointers in
// range and symmetric, each twin starting at the vertex where its halfedge
// ends and carrying the same constraint state, and clockwise (or degenerate) winding of every
// triangle. It does not check that every vertex is used by a triangle. It is
// intended for tests and debug assertions, not the hot path.
func (m *Mesh) CheckInvariants() error {
	for h, twin := range m.Halfedges {
		if twin == NilHalfedge {
			continue
		}
		if twin < 0 || twin >= len(m.Halfedges) {
			return errInvariant("halfedge twin out of range", h)
		}
		if m.Halfedges[twin] != h {
			return errInvariant("twin relation not symmetric", h)
		}
		if m.Triangles[Next(h)] != m.Triangles[twin] {
			return errInvariant("twin origin mismatch", h)
		}
		if m.Constrained[h] != m.Constrained[twin] {
			return errInvariant("twin constraint mismatch", h)
		}
	}
	for t := 0; t < m.NumTriangles(); t++ {
		a, b, c := m.TrianglePoints(t)
		if m.Kind.Orient2D(a, b, c) > 0 {
			return errInvariant("triangle not clockwise", 3*t)
		}
	}
	return nil
}

type invariantError struct {
	msg string
	h   int
}

func (e *invariantError) Error() string { return e.msg }

func errInvariant(msg string, h int) error { return &invariantError{msg: msg, h: h} }
