package pipeline

import (
	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/errors"
	"github.com/matzehuels/doodle/pkg/render"
	"github.com/matzehuels/doodle/pkg/render/tile"
)

// Serialize generates output artifacts in the requested formats from a
// composed element list.
func Serialize(elements []compose.Element, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	svgOpts := []tile.Option{tile.WithSize(opts.TileSize)}
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = tile.RenderSVG(elements, svgOpts...)
		case FormatPNG:
			data, err = tile.RenderPNG(elements,
				tile.WithPNGSVGOptions(svgOpts...),
				tile.WithScale(opts.Scale))
		case FormatPDF:
			data, err = render.ToPDF(tile.RenderSVG(elements, svgOpts...))
		case FormatJSON:
			data, err = tile.MarshalJSON(elements, opts.TileSize)
		case FormatDataURI:
			data = []byte(tile.DataURI(tile.RenderSVG(elements, svgOpts...)))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
