// Package rasterize renders a triangulate.Result to an RGBA image for visual
// debugging, walking a Result's flat halfedge arrays directly. Perimeter and
// hole boundaries have no separate polygon-loop layer here (a Result only
// carries per-halfedge constraint state, not loop collections); instead
// ConstrainedAndHoleBoundary edges are colored distinctly from plain
// Constrained edges using separate palette-derived colors.
package rasterize

import (
	"image"
	"image/color"
	"math"

	"github.com/trimesh2d/cdt/arith"
	"github.com/trimesh2d/cdt/halfedge"
	"github.com/trimesh2d/cdt/triangulate"
)

// PNG renders r to an RGBA image using cfg, layered back to front: fills,
// then edges (plain and constrained together, in halfedge order), then
// vertices.
func PNG(r triangulate.Result, opts ...Option) (*image.RGBA, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	fillBackground(img, cfg.Background)

	transform := computeTransform(r.Bounds, cfg.Width, cfg.Height)

	if cfg.FillTriangles {
		renderTriangleFills(img, r, transform, cfg.TriangleColor, cfg.FillPalette)
	}
	if cfg.DrawEdges || cfg.DrawConstrained {
		renderEdges(img, r, transform, cfg)
	}
	if cfg.DrawVertices {
		renderVertices(img, r, transform, cfg.VertexColor, cfg.SteinerColor)
	}

	return img, nil
}

// Transform converts triangulation coordinates to image pixel coordinates.
type Transform struct {
	scale   float64
	offsetX float64
	offsetY float64
}

// Apply converts a point to image pixel coordinates.
func (t Transform) Apply(p arith.Vec) (int, int) {
	x := int(math.Round((p.X + t.offsetX) * t.scale))
	y := int(math.Round((p.Y + t.offsetY) * t.scale))
	return x, y
}

// computeTransform derives scale/offset from the already-computed
// Result.Bounds instead of re-scanning every vertex.
func computeTransform(bounds [2]arith.Vec, width, height int) Transform {
	minX, minY := bounds[0].X, bounds[0].Y
	maxX, maxY := bounds[1].X, bounds[1].Y

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	paddingX := rangeX * 0.1
	paddingY := rangeY * 0.1

	minX -= paddingX
	minY -= paddingY
	maxX += paddingX
	maxY += paddingY

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	scaleX := float64(width-1) / spanX
	scaleY := float64(height-1) / spanY
	scale := math.Min(scaleX, scaleY)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}

	return Transform{scale: scale, offsetX: -minX, offsetY: -minY}
}

func fillBackground(img *image.RGBA, col color.Color) {
	if col == nil {
		col = color.RGBA{}
	}
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			img.Set(x, y, col)
		}
	}
}

// renderTriangleFills fills each triangle with col, or with the next color
// from palette (cycling) when palette is non-nil.
func renderTriangleFills(img *image.RGBA, r triangulate.Result, transform Transform, col color.Color, palette *Palette) {
	if palette != nil && palette.Size() == 0 {
		palette = nil // an empty caller-supplied palette falls back to the flat color
	}
	if col == nil && palette == nil {
		return
	}
	if palette != nil {
		palette.Reset()
	}
	for i := 0; i < r.NumTriangles(); i++ {
		a := r.Positions[r.Triangles[3*i]]
		b := r.Positions[r.Triangles[3*i+1]]
		c := r.Positions[r.Triangles[3*i+2]]
		ax, ay := transform.Apply(a)
		bx, by := transform.Apply(b)
		cx, cy := transform.Apply(c)
		fillCol := col
		if palette != nil {
			fillCol = palette.Next()
		}
		FillTriangleAlpha(img, ax, ay, bx, by, cx, cy, fillCol)
	}
}

// renderEdges walks every halfedge once (skipping the twin side of an
// interior edge so it is not drawn twice) and draws it in the color for its
// constraint state: cfg.EdgeColor for Unconstrained, cfg.ConstrainedColor
// for Constrained, cfg.HoleBoundaryColor for ConstrainedAndHoleBoundary.
func renderEdges(img *image.RGBA, r triangulate.Result, transform Transform, cfg Config) {
	for h := 0; h < len(r.Triangles); h++ {
		twin := r.Halfedges[h]
		if twin != halfedge.NilHalfedge && twin < h {
			continue // interior edge already drawn from its other side
		}

		var col color.Color
		thick := false
		switch r.Constrained[h] {
		case halfedge.Unconstrained:
			if !cfg.DrawEdges {
				continue
			}
			col = cfg.EdgeColor
		case halfedge.Constrained:
			if !cfg.DrawConstrained {
				continue
			}
			col = cfg.ConstrainedColor
			thick = true
		case halfedge.ConstrainedAndHoleBoundary:
			if !cfg.DrawConstrained {
				continue
			}
			col = cfg.HoleBoundaryColor
			thick = true
		}
		if col == nil {
			continue
		}

		origin := r.Triangles[h]
		dest := r.Triangles[next(h)]
		x1, y1 := transform.Apply(r.Positions[origin])
		x2, y2 := transform.Apply(r.Positions[dest])
		if thick {
			DrawLineThickAlpha(img, x1, y1, x2, y2, col, 2)
		} else {
			DrawLineAlpha(img, x1, y1, x2, y2, col)
		}
	}
}

func renderVertices(img *image.RGBA, r triangulate.Result, transform Transform, inputCol, steinerCol color.Color) {
	for v, p := range r.Positions {
		col := inputCol
		if v < len(r.VertexOrigin) && r.VertexOrigin[v] == halfedge.Steiner {
			col = steinerCol
		}
		if col == nil {
			continue
		}
		x, y := transform.Apply(p)
		DrawPointAlpha(img, x, y, col)
	}
}

func next(h int) int {
	tri := h - h%3
	return tri + (h-tri+1)%3
}

// edgeFunction is twice the signed area of pixel triangle (a, b, c).
func edgeFunction(ax, ay, bx, by, cx, cy int) int {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

func clampInt(v, lo, hi int) int { return max(lo, min(v, hi)) }

func min3(a, b, c int) int { return min(a, b, c) }

func max3(a, b, c int) int { return max(a, b, c) }
