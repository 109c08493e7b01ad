// Package tile serializes placed element lists into repeatable SVG tiles.
//
// The serializer is a pure structural transform: it knows nothing about
// variants, seeds, or themes, only how to turn a []compose.Element into
// markup. Serialization is byte-identical for identical input, so the
// determinism of the compositor extends through this stage.
package tile

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/shapes"
)

// DefaultSize is the default tile side length, matching the compositor's
// coordinate space.
const DefaultSize = int(compose.TileSize)

// Option configures SVG tile rendering.
type Option func(*renderer)

type renderer struct {
	size int
}

// WithSize overrides the tile side length declared in the viewBox. The
// element coordinates are not rescaled; callers that change the size are
// expected to composite against the same coordinate space.
func WithSize(n int) Option {
	return func(r *renderer) { r.size = n }
}

// RenderSVG serializes elements into one self-contained SVG tile.
//
// Each element becomes a single <path> node. The transform chain anchors the
// shape at (x, y), applies rotation and scale around the shape's visual
// center, and re-centers the native 24x24 box with a trailing
// translate(-12 -12) so the pivot is the center rather than the corner.
// Paint is mutually exclusive: filled elements carry no stroke, stroked
// elements no fill. Strokes always use round caps and joins.
func RenderSVG(elements []compose.Element, opts ...Option) []byte {
	r := renderer{size: DefaultSize}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.size, r.size, r.size, r.size)

	half := shapes.BoxSize / 2
	for _, e := range elements {
		fmt.Fprintf(&buf, `<path d="%s" transform="translate(%.2f %.2f) rotate(%.2f) scale(%.3f) translate(-%g -%g)"`,
			e.Path, e.X, e.Y, e.Rotation, e.Scale, half, half)
		if e.Fill {
			fmt.Fprintf(&buf, ` fill="%s" stroke="none"`, e.Color)
		} else {
			fmt.Fprintf(&buf, ` fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round"`,
				e.Color, e.StrokeWidth)
		}
		fmt.Fprintf(&buf, ` opacity="%.3f"/>`+"\n", e.Opacity)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
