// Package pkg provides the core libraries for doodle tile generation.
//
// # Overview
//
// Doodle generates seamless decorative background tiles from themed icon
// pools. Every tile is a pure function of its variant and color mode: a
// deterministic noise function drives shape selection and placement, so the
// same inputs always produce the same artwork. The pkg directory is
// organized into three main areas:
//
//  1. Generation - The placement engine and its inputs
//  2. Rendering - Serialization of placed elements into output formats
//  3. Infrastructure - Caching, errors, observability, orchestration
//
// # Architecture
//
// The typical data flow through doodle:
//
//	Variant + Color Mode
//	         ↓
//	    [pool] package (weighted shape pool)
//	         ↓
//	    [compose] package (seeded layer-by-layer placement)
//	         ↓
//	    [render/tile] package (SVG, PNG, JSON, data URI output)
//
// # Quick Start
//
// Compose a tile and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/doodle/pkg/compose"
//	    "github.com/matzehuels/doodle/pkg/pool"
//	    "github.com/matzehuels/doodle/pkg/render/tile"
//	)
//
//	elements := compose.Composite(pool.Tech, compose.ModeDark)
//	svg := tile.RenderSVG(elements)
//	uri := tile.DataURI(svg)
//
// # Main Packages
//
// ## Generation
//
// [shapes] - The icon library: eight thematic catalogs of 24x24 path data
// plus the palettes and accent colors shared by all variants.
//
// [noise] - The deterministic pseudo-random kernel. A seeded sine-fract
// function maps any seed to [0, 1) with no internal state.
//
// [pool] - Variant definitions. Each variant owns a seed offset and a
// weighted shape pool biased toward its thematic catalog.
//
// [compose] - The placement engine. Walks the seven-layer stack back to
// front and derives every element attribute from its own sub-seed.
//
// [theme] - Optional TOML tuning files overriding accents, layer bands,
// and emphasis weights.
//
// ## Rendering
//
// [render] - Generic SVG format conversion (PDF, PNG via rsvg-convert).
//
// [render/tile] - Tile serialization: SVG documents, CSS data URIs, JSON
// export, and PNG rasterization.
//
// ## Infrastructure
//
// [cache] - Pluggable caching for composed tiles and artifacts. File and
// memory backends for the CLI, Redis and MongoDB for the server.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Pluggable hooks for pipeline, cache, and HTTP events.
//
// [pipeline] - Complete compose → serialize pipeline used by CLI and API.
// Ensures consistent behavior across all entry points.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/compose/...  # Specific package
//
// [shapes]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/shapes
// [noise]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/noise
// [pool]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/pool
// [compose]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/compose
// [theme]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/theme
// [render]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/render
// [render/tile]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/render/tile
// [cache]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/doodle/pkg/pipeline
package pkg
