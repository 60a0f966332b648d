package rasterize

// Option configures rendering, following the same functional-option shape
// as triangulate.Option.
type Option func(*Config)

// WithDimensions sets the output image dimensions. A non-positive width or
// height leaves that dimension unchanged.
func WithDimensions(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithFillTriangles enables or disables triangle fills.
func WithFillTriangles(enable bool) Option {
	return func(c *Config) {
		c.FillTriangles = enable
	}
}

// WithDrawVertices enables or disables vertex markers.
func WithDrawVertices(enable bool) Option {
	return func(c *Config) {
		c.DrawVertices = enable
	}
}

// WithDrawEdges enables or disables unconstrained edge rendering.
func WithDrawEdges(enable bool) Option {
	return func(c *Config) {
		c.DrawEdges = enable
	}
}

// WithDrawConstrained enables or disables constrained-edge rendering.
func WithDrawConstrained(enable bool) Option {
	return func(c *Config) {
		c.DrawConstrained = enable
	}
}

// WithTrianglePalette cycles a distinct fill color per triangle from p
// instead of the flat TriangleColor. Passing nil restores the flat color.
func WithTrianglePalette(p *Palette) Option {
	return func(c *Config) {
		c.FillPalette = p
	}
}
