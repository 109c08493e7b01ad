// Package pipeline provides the core tile generation pipeline for doodle.
//
// This package implements the complete compose → serialize pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Compose: Run the seeded placement engine for a variant and color mode
//  2. Serialize: Generate output in various formats (SVG, PNG, PDF, JSON, data URI)
//
// Each stage can be run independently or as part of the complete pipeline.
// Both stages cache their results: the composed element list is keyed by
// (variant, mode, tile size, theme hash), and each artifact is keyed by the
// element-list hash plus its format options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Variant: "tech",
//	    Mode:    "dark",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/doodle/pkg/cache"
	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/errors"
	"github.com/matzehuels/doodle/pkg/pool"
	"github.com/matzehuels/doodle/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultTileSize is the rendered tile side length in pixels. It matches
	// the composition coordinate space, so elements map 1:1 by default.
	DefaultTileSize = int(compose.TileSize)

	// DefaultScale is the default PNG rasterization scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatPDF     = "pdf"
	FormatJSON    = "json"
	FormatDataURI = "datauri"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:     true,
	FormatPNG:     true,
	FormatPDF:     true,
	FormatJSON:    true,
	FormatDataURI: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the tile pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Compose options
	Variant   string `json:"variant,omitempty"`
	Mode      string `json:"mode,omitempty"`
	TileSize  int    `json:"tile_size,omitempty"`
	ThemePath string `json:"theme,omitempty"`
	Refresh   bool   `json:"refresh,omitempty"`

	// Serialize options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG rasterization scale

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// Resolved during validation.
	variant   pool.Variant
	mode      compose.ColorMode
	config    compose.Config
	themeHash string

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Elements is the ordered composed element list, back to front.
	Elements []compose.Element

	// ElementsHash is the content hash of the composed element list.
	ElementsHash string

	// Artifacts contains serialized outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount  int
	ComposeTime   time.Duration
	SerializeTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ComposeHit   bool // Whether the element list came from cache
	SerializeHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, datauri)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields, applies defaults, and resolves
// the variant, color mode, and theme. This method is idempotent - calling it
// multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	v, err := pool.Parse(o.Variant)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidVariant, err, "invalid variant %q", o.Variant)
	}
	o.variant = v
	o.Variant = string(v)

	m, err := compose.ParseMode(o.Mode)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid mode %q", o.Mode)
	}
	o.mode = m
	o.Mode = string(m)

	if o.TileSize == 0 {
		o.TileSize = DefaultTileSize
	}
	if o.TileSize < 1 || o.TileSize > 10000 {
		return errors.New(errors.ErrCodeInvalidInput, "tile size %d outside [1, 10000]", o.TileSize)
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0.1 || o.Scale > 16 {
		return errors.New(errors.ErrCodeInvalidInput, "scale %v outside [0.1, 16]", o.Scale)
	}

	o.config = compose.DefaultConfig()
	if o.ThemePath != "" {
		t, hash, err := theme.Load(o.ThemePath)
		if err != nil {
			return err
		}
		cfg, err := t.Apply(o.config)
		if err != nil {
			return err
		}
		o.config = cfg
		o.themeHash = hash
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// ParsedVariant returns the resolved variant. Only valid after
// ValidateAndSetDefaults.
func (o *Options) ParsedVariant() pool.Variant { return o.variant }

// ParsedMode returns the resolved color mode. Only valid after
// ValidateAndSetDefaults.
func (o *Options) ParsedMode() compose.ColorMode { return o.mode }

// Config returns the resolved composition config (defaults plus theme).
// Only valid after ValidateAndSetDefaults.
func (o *Options) Config() compose.Config { return o.config }

// ThemeHash returns the content hash of the applied theme file, or the
// empty string when no theme is set.
func (o *Options) ThemeHash() string { return o.themeHash }

// NeedsRaster returns true if any requested format requires rasterization
// via an external converter.
func (o *Options) NeedsRaster() bool {
	for _, f := range o.Formats {
		if f == FormatPNG || f == FormatPDF {
			return true
		}
	}
	return false
}

// TileKeyOpts returns cache key options for the compose stage.
func (o *Options) TileKeyOpts() cache.TileKeyOpts {
	return cache.TileKeyOpts{
		TileSize:  o.TileSize,
		ThemeHash: o.themeHash,
	}
}

// ArtifactKeyOpts returns cache key options for one serialized artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:   format,
		TileSize: o.TileSize,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
