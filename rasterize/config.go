package rasterize

import "image/color"

// Config holds options for rendering a triangulate.Result to an image.
// Perimeter/hole polygon-loop colors are replaced by a ConstrainedColor for
// plain constraint edges and a HoleBoundaryColor for edges marked
// ConstrainedAndHoleBoundary (triangulate.Result carries per-halfedge
// constraint state, not separate loop collections), and a SteinerColor
// distinguishes inserted refinement vertices from the caller's own input
// points.
type Config struct {
	Width  int
	Height int

	Background        color.Color
	VertexColor       color.Color
	SteinerColor      color.Color
	EdgeColor         color.Color
	TriangleColor     color.Color
	ConstrainedColor  color.Color
	HoleBoundaryColor color.Color

	// FillPalette, when non-nil, cycles a distinct fill color per triangle
	// instead of the flat TriangleColor.
	FillPalette *Palette

	FillTriangles   bool
	DrawVertices    bool
	DrawEdges       bool
	DrawConstrained bool
}

// DefaultConfig returns sensible default rendering settings.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		Background:        color.RGBA{R: 255, G: 255, B: 255, A: 255}, // White
		VertexColor:       color.RGBA{R: 0, G: 0, B: 0, A: 255},       // Black
		SteinerColor:      color.RGBA{R: 255, G: 140, B: 0, A: 255},   // Orange
		EdgeColor:         color.RGBA{R: 64, G: 64, B: 64, A: 255},    // Dark gray
		TriangleColor:     TrianglePalette().Get(2),                   // Semi-transparent blue
		ConstrainedColor:  PerimeterPalette().Get(1),                  // Green
		HoleBoundaryColor: HolePalette().Get(0),                       // Dark red

		FillTriangles:   true,
		DrawVertices:    true,
		DrawEdges:       true,
		DrawConstrained: true,
	}
}
