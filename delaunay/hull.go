package delaunay

import "github.com/trimesh2d/cdt/arith"

// hull is the transient convex-hull state: a circular doubly-linked list
// over hull vertices plus a pseudoangle-bucket hash for expected O(1)
// visible-edge lookup. It exists only for the lifetime of one Delaunay
// construction and is discarded afterward.
type hull struct {
	next, prev []int // indexed by vertex id; soft-deleted when next[v]==v
	tri        []int // vertex -> incident halfedge on the live hull boundary
	hash       []int // pseudoangle bucket -> vertex id, or -1
	hashSize   int
	start      int
	center     arith.Vec
	kind       arith.Kind
}

func newHull(kind arith.Kind, n int, center arith.Vec) *hull {
	hashSize := hashTableSize(n)
	h := &hull{
		next:     make([]int, n),
		prev:     make([]int, n),
		tri:      make([]int, n),
		hash:     make([]int, hashSize),
		hashSize: hashSize,
		center:   center,
		kind:     kind,
	}
	for i := range h.hash {
		h.hash[i] = -1
	}
	return h
}

func hashTableSize(n int) int {
	size := 1
	for size*size < n {
		size++
	}
	if size < 1 {
		size = 1
	}
	return size
}

func (h *hull) hashKey(p arith.Vec) int {
	a := h.kind.PseudoAngle(p.X-h.center.X, p.Y-h.center.Y)
	key := int(a * float64(h.hashSize))
	key %= h.hashSize
	if key < 0 {
		key += h.hashSize
	}
	return key
}

// rehash rewrites the bucket for vertex v. Only the two endpoints of each
// newly added hull edge need to be rehashed after insertion.
func (h *hull) rehash(v int, p arith.Vec) {
	h.hash[h.hashKey(p)] = v
}

// isLive reports whether vertex v is still on the hull (soft-delete marks
// next[v] == v).
func (h *hull) isLive(v int) bool {
	return h.next[v] != v
}

// findSeedVertex probes forward from hashKey(p) until it finds a live hull
// vertex, step 1.
func (h *hull) findSeedVertex(p arith.Vec) int {
	key := h.hashKey(p)
	for j := 0; j < h.hashSize; j++ {
		v := h.hash[(key+j)%h.hashSize]
		if v != -1 && h.isLive(v) {
			return v
		}
	}
	return h.start
}
