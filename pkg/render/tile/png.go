package tile

import (
	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/render"
)

// PNGOption configures PNG tile rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []Option
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...Option) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the tile as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(elements []compose.Element, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(elements, r.svgOpts...)
	return render.ToPNG(svg, r.scale)
}
