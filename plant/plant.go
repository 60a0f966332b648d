// Package plant implements the region-removal (seed planting) stage:
// deleting triangles that should not appear in the output, by breadth-first
// flood from seed triangles that stops at ConstrainedAndHoleBoundary
// halfedges and at the mesh's outer boundary.
package plant

import (
	"go.uber.org/zap"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
)

// Options selects the combinable removal modes.
type Options struct {
	// HoleSeeds are points; the triangle containing each (if any) seeds an
	// outward flood of removed triangles.
	HoleSeeds []arith.Vec
	// RestoreBoundary seeds every triangle touching an outer (-1) halfedge
	// not marked ConstrainedAndHoleBoundary.
	RestoreBoundary bool
	// AutoHolesAndBoundary applies the even-odd rule from the outside in,
	// alternating removed/kept bands across ConstrainedAndHoleBoundary
	// crossings.
	AutoHolesAndBoundary bool
}

// Plant deletes triangles per opts and compacts the mesh's three parallel
// arrays in place, index-remap rule. It returns the number of triangles
// removed.
func Plant(m *halfedge.Mesh, opts Options, log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}
	t := m.NumTriangles()
	removed := make([]bool, t)

	if len(opts.HoleSeeds) > 0 {
		var seeds []int
		for _, p := range opts.HoleSeeds {
			if tri, ok := locate(m, p); ok {
				seeds = append(seeds, tri)
			}
		}
		floodRemove(m, seeds, removed)
	}

	if opts.RestoreBoundary {
		var seeds []int
		for tri := 0; tri < t; tri++ {
			if removed[tri] {
				continue
			}
			if isBoundarySeed(m, tri) {
				seeds = append(seeds, tri)
			}
		}
		floodRemove(m, seeds, removed)
	}

	if opts.AutoHolesAndBoundary {
		floodEvenOdd(m, removed)
	}

	n := compact(m, removed)
	log.Debug("plant stage complete",
		zap.Int("removed", n),
		zap.Int("remaining", m.NumTriangles()),
	)
	return n
}

// locate finds the triangle containing p by linear scan.
func locate(m *halfedge.Mesh, p arith.Vec) (int, bool) {
	for tri := 0; tri < m.NumTriangles(); tri++ {
		a, b, c := m.TrianglePoints(tri)
		if m.Kind.PointInTriangle(p, a, b, c) {
			return tri, true
		}
	}
	return -1, false
}

// isBoundarySeed reports whether tri has an outer (-1) halfedge not marked
// ConstrainedAndHoleBoundary.
func isBoundarySeed(m *halfedge.Mesh, tri int) bool {
	base := 3 * tri
	for i := 0; i < 3; i++ {
		h := base + i
		if m.Halfedges[h] == halfedge.NilHalfedge && m.Constrained[h] != halfedge.ConstrainedAndHoleBoundary {
			return true
		}
	}
	return false
}

// floodRemove marks every triangle reachable from seeds as removed,
// stopping at ConstrainedAndHoleBoundary halfedges and the outer boundary.
func floodRemove(m *halfedge.Mesh, seeds []int, removed []bool) {
	visited := make([]bool, m.NumTriangles())
	queue := append([]int(nil), seeds...)
	for _, s := range seeds {
		visited[s] = true
	}
	for len(queue) > 0 {
		tri := queue[0]
		queue = queue[1:]
		removed[tri] = true

		base := 3 * tri
		for i := 0; i < 3; i++ {
			h := base + i
			if m.Constrained[h] == halfedge.ConstrainedAndHoleBoundary {
				continue
			}
			twin := m.Halfedges[h]
			if twin == halfedge.NilHalfedge {
				continue
			}
			nt := halfedge.TriangleID(twin)
			if visited[nt] {
				continue
			}
			visited[nt] = true
			queue = append(queue, nt)
		}
	}
}

// bandEntry is one pending triangle in the even-odd flood of
// floodEvenOdd: a triangle together with whether its band is to be
// removed or kept.
type bandEntry struct {
	tri    int
	remove bool
}

// floodEvenOdd implements "auto holes and boundary" mode: a single
// visited-flagged breadth-first flood starting from every true hull-boundary
// triangle as a "keep" seed, flipping the remove/keep flag each time the
// flood crosses a ConstrainedAndHoleBoundary halfedge. This produces the
// same outside-in even-odd bands as the two-FIFO-queue description (seed
// queue vs. alternate queue, swapped on every alternation) using one queue
// and a per-entry flag instead, which is the standard way to implement
// parity flood fill and avoids needing to reconstruct the exact queue-swap
// schedule by hand. The outermost band starts as "keep" rather than
// "remove": the true outer hull is, by construction, exactly the requested
// outer boundary (nothing is ever triangulated beyond it), so the band
// touching it is the part of the input polygon closest to its edge, and the
// first interior crossing of a ConstrainedAndHoleBoundary edge is what
// enters a hole.
func floodEvenOdd(m *halfedge.Mesh, removed []bool) {
	t := m.NumTriangles()
	visited := make([]bool, t)
	var queue []bandEntry
	for tri := 0; tri < t; tri++ {
		if isBoundarySeed(m, tri) {
			queue = append(queue, bandEntry{tri: tri, remove: false})
			visited[tri] = true
		}
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e.remove {
			removed[e.tri] = true
		}

		base := 3 * e.tri
		for i := 0; i < 3; i++ {
			h := base + i
			twin := m.Halfedges[h]
			if twin == halfedge.NilHalfedge {
				continue
			}
			nt := halfedge.TriangleID(twin)
			if visited[nt] {
				continue
			}
			visited[nt] = true
			nextRemove := e.remove
			if m.Constrained[h] == halfedge.ConstrainedAndHoleBoundary {
				nextRemove = !nextRemove
			}
			queue = append(queue, bandEntry{tri: nt, remove: nextRemove})
		}
	}
}

// compact rewrites m's three parallel arrays to drop every removed triangle,
// remapping surviving halfedges' twins through the new triangle numbering (:
// "remap(h) = 3*indexRemap[h/3] + h%3").
func compact(m *halfedge.Mesh, removed []bool) int {
	oldT := m.NumTriangles()
	indexRemap := make([]int, oldT)
	kept := 0
	for tri := 0; tri < oldT; tri++ {
		if removed[tri] {
			indexRemap[tri] = -1
			continue
		}
		indexRemap[tri] = kept
		kept++
	}

	newTriangles := make([]int, 0, kept*3)
	newHalfedges := make([]int, 0, kept*3)
	newConstrained := make([]halfedge.ConstraintState, 0, kept*3)

	removedCount := 0
	for tri := 0; tri < oldT; tri++ {
		if removed[tri] {
			removedCount++
			continue
		}
		base := 3 * tri
		for i := 0; i < 3; i++ {
			h := base + i
			newTriangles = append(newTriangles, m.Triangles[h])
			newConstrained = append(newConstrained, m.Constrained[h])

			twin := m.Halfedges[h]
			if twin == halfedge.NilHalfedge || removed[halfedge.TriangleID(twin)] {
				newHalfedges = append(newHalfedges, halfedge.NilHalfedge)
				continue
			}
			remapped := 3*indexRemap[halfedge.TriangleID(twin)] + twin%3
			newHalfedges = append(newHalfedges, remapped)
		}
	}

	m.Triangles = newTriangles
	m.Halfedges = newHalfedges
	m.Constrained = newConstrained
	return removedCount
}
