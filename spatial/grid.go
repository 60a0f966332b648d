// Package spatial provides the uniform spatial hash grid used to accelerate
// nearest-neighbor queries over arith.Vec coordinates and integer vertex
// ids.
package spatial

import (
	"math"

	"github.com/trimesh2d/cdt/arith"
)

// Grid is a uniform bucket grid over 2D points, sized so that a point cloud
// of n entries lands roughly one point per cell (⌈√n⌉ buckets along each
// axis), matching the hull-hash sizing convention.
type Grid struct {
	cellSize float64
	cells    map[[2]int][]int
}

// NewGrid builds a grid sized for n points spread over the given bounding
// box. A degenerate (zero-area) box or n<=0 falls back to a unit cell size.
func NewGrid(n int, minX, minY, maxX, maxY float64) *Grid {
	side := math.Ceil(math.Sqrt(float64(n)))
	if side < 1 {
		side = 1
	}
	width := math.Max(maxX-minX, maxY-minY)
	cellSize := width / side
	if !(cellSize > 0) {
		cellSize = 1
	}
	return &Grid{cellSize: cellSize, cells: make(map[[2]int][]int, n)}
}

func (g *Grid) cell(p arith.Vec) [2]int {
	return [2]int{
		int(math.Floor(p.X / g.cellSize)),
		int(math.Floor(p.Y / g.cellSize)),
	}
}

// Insert adds id at point p.
func (g *Grid) Insert(id int, p arith.Vec) {
	c := g.cell(p)
	g.cells[c] = append(g.cells[c], id)
}

// Near returns every previously inserted id whose cell overlaps a
// radius-sized box around p (every cell the box [p-radius, p+radius]
// touches, which is always a superset of points within radius of p —
// callers apply their own exact distance test to the returned candidates).
func (g *Grid) Near(p arith.Vec, radius float64) []int {
	if radius < 0 {
		radius = 0
	}
	min := g.cell(arith.Vec{X: p.X - radius, Y: p.Y - radius})
	max := g.cell(arith.Vec{X: p.X + radius, Y: p.Y + radius})

	var out []int
	for cy := min[1]; cy <= max[1]; cy++ {
		for cx := min[0]; cx <= max[0]; cx++ {
			out = append(out, g.cells[[2]int{cx, cy}]...)
		}
	}
	return out
}
